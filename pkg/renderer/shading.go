package renderer

import (
	"github.com/davh/go-direct-raytracer/pkg/core"
)

// LightingMode selects which term of the direct-lighting estimate is
// visualized. The set is closed; modes cycle ObservedArea → Radiance →
// BRDF → Combined → ObservedArea.
type LightingMode int

const (
	// ObservedArea visualizes the geometric cosine term only
	ObservedArea LightingMode = iota
	// Radiance visualizes incident light only
	Radiance
	// BRDF visualizes the material response only
	BRDF
	// Combined is the physically motivated direct-lighting estimate
	Combined
)

// Next returns the lighting mode that follows in the cycle
func (m LightingMode) Next() LightingMode {
	switch m {
	case ObservedArea:
		return Radiance
	case Radiance:
		return BRDF
	case BRDF:
		return Combined
	default:
		return ObservedArea
	}
}

func (m LightingMode) String() string {
	switch m {
	case ObservedArea:
		return "observed_area"
	case Radiance:
		return "radiance"
	case BRDF:
		return "brdf"
	case Combined:
		return "combined"
	default:
		return "unknown"
	}
}

// Shadow rays start this far along the light direction to avoid
// re-intersecting the surface they leave.
const shadowRayEpsilon = 0.01

// shadePixel evaluates direct illumination for a resolved hit. A miss
// shades to black. For each light a fresh shadow ray is built, back-facing
// lights are rejected before any occlusion test, and the occlusion test
// itself runs only when shadows are enabled. Contributions accumulate per
// the active lighting mode; the result is clamped with MaxToOne.
func shadePixel(hit core.HitRecord, geometry core.Geometry, materials []core.Material, lights []core.Light, viewDir core.Vec3, config RenderConfig) core.Color {
	finalColor := core.Black()
	if !hit.DidHit {
		return finalColor
	}

	material := materials[hit.MaterialIndex]

	for _, light := range lights {
		toLight := light.DirectionToLight(hit.Point)
		distance := toLight.Length()
		lightDir := toLight.Normalize()

		cosTheta := hit.Normal.Dot(lightDir)
		if cosTheta <= 0 {
			continue
		}

		if config.ShadowsEnabled {
			shadowRay := core.NewBoundedRay(
				hit.Point.Add(lightDir.Multiply(shadowRayEpsilon)),
				lightDir,
				shadowRayEpsilon,
				distance,
			)
			if geometry.DoesHit(shadowRay) {
				continue
			}
		}

		switch config.LightingMode {
		case ObservedArea:
			finalColor = finalColor.Add(core.White().Scale(cosTheta))
		case Radiance:
			finalColor = finalColor.Add(light.Radiance(hit.Point))
		case BRDF:
			finalColor = finalColor.Add(material.Shade(hit, lightDir, viewDir))
		case Combined:
			radiance := light.Radiance(hit.Point)
			brdf := material.Shade(hit, lightDir, viewDir)
			finalColor = finalColor.Add(radiance.MultiplyColor(brdf).Scale(cosTheta))
		}
	}

	return finalColor.MaxToOne()
}
