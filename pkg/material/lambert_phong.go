package material

import (
	"math"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

// LambertPhong combines a diffuse Lambert term with a Phong specular lobe.
// The specular term is the only consumer of the view direction.
type LambertPhong struct {
	Albedo              core.Color
	DiffuseReflectance  float64
	SpecularReflectance float64
	PhongExponent       float64
}

// NewLambertPhong creates a new diffuse+specular material
func NewLambertPhong(albedo core.Color, kd, ks, exponent float64) *LambertPhong {
	return &LambertPhong{
		Albedo:              albedo,
		DiffuseReflectance:  kd,
		SpecularReflectance: ks,
		PhongExponent:       exponent,
	}
}

// Shade implements core.Material
func (m *LambertPhong) Shade(hit core.HitRecord, lightDir, viewDir core.Vec3) core.Color {
	diffuse := m.Albedo.Scale(m.DiffuseReflectance / math.Pi)

	// Mirror the light direction around the normal and compare against the
	// view direction.
	reflected := lightDir.Subtract(hit.Normal.Multiply(2 * hit.Normal.Dot(lightDir))).Negate()
	cosAlpha := math.Max(0, reflected.Dot(viewDir))
	specular := m.SpecularReflectance * math.Pow(cosAlpha, m.PhongExponent)

	return diffuse.Add(core.White().Scale(specular))
}
