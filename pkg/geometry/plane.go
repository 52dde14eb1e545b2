package geometry

import (
	"math"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point         core.Vec3 // A point on the plane
	Normal        core.Vec3 // Normal vector (normalized by the constructor)
	MaterialIndex int
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, materialIndex int) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), MaterialIndex: materialIndex}
}

// Hit tests if a ray intersects the plane within [tMin, tMax]
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		DidHit:        true,
		T:             t,
		Point:         ray.At(t),
		Normal:        p.Normal,
		MaterialIndex: p.MaterialIndex,
	}, true
}
