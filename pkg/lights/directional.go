package lights

import (
	"github.com/davh/go-direct-raytracer/pkg/core"
)

// Shadow rays toward a directional light use this as their far bound; the
// light sits at infinity, so any occluder along the direction counts.
const directionalLightDistance = 1e7

// DirectionalLight lights the scene from a fixed direction with constant
// radiance, like a distant sun.
type DirectionalLight struct {
	Direction core.Vec3 // travel direction of the light, normalized by the constructor
	Color     core.Color
	Intensity float64
}

// NewDirectionalLight creates a new directional light. direction is the
// direction the light travels, not the direction toward it.
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Color: color, Intensity: intensity}
}

// DirectionToLight implements core.Light
func (l *DirectionalLight) DirectionToLight(point core.Vec3) core.Vec3 {
	return l.Direction.Negate().Multiply(directionalLightDistance)
}

// Radiance implements core.Light
func (l *DirectionalLight) Radiance(point core.Vec3) core.Color {
	return l.Color.Scale(l.Intensity)
}
