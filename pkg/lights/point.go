package lights

import (
	"github.com/davh/go-direct-raytracer/pkg/core"
)

// PointLight radiates uniformly from a single position; incident radiance
// falls off with the squared distance to the lit point.
type PointLight struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color, intensity float64) *PointLight {
	return &PointLight{Position: position, Color: color, Intensity: intensity}
}

// DirectionToLight implements core.Light
func (l *PointLight) DirectionToLight(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point)
}

// Radiance implements core.Light
func (l *PointLight) Radiance(point core.Vec3) core.Color {
	distanceSquared := l.Position.Subtract(point).LengthSquared()
	return l.Color.Scale(l.Intensity / distanceSquared)
}
