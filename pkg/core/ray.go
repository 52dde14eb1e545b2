package core

import "math"

// Ray represents a ray with an origin, a direction, and the scalar interval
// [TMin, TMax] bounding valid hit distances along it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// Default valid-distance interval for primary rays.
const (
	DefaultTMin = 1e-4
)

// NewRay creates a new ray with the default valid-distance interval
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      DefaultTMin,
		TMax:      math.Inf(1),
	}
}

// NewBoundedRay creates a new ray with an explicit valid-distance interval
func NewBoundedRay(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
