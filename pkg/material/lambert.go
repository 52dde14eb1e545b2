package material

import (
	"math"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

// Lambert is a perfectly diffuse material with a constant BRDF of
// albedo·kd/π, independent of the light and view directions.
type Lambert struct {
	Albedo             core.Color
	DiffuseReflectance float64
}

// NewLambert creates a new diffuse material
func NewLambert(albedo core.Color, diffuseReflectance float64) *Lambert {
	return &Lambert{Albedo: albedo, DiffuseReflectance: diffuseReflectance}
}

// Shade implements core.Material
func (l *Lambert) Shade(hit core.HitRecord, lightDir, viewDir core.Vec3) core.Color {
	return l.Albedo.Scale(l.DiffuseReflectance / math.Pi)
}
