package geometry

import (
	"github.com/davh/go-direct-raytracer/pkg/core"
)

// Shape is anything a ray can intersect
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
}

// Scene holds shapes, materials and lights, and answers intersection
// queries with a linear scan over its shapes. It implements core.Geometry.
// A scene is read-only while a frame is being rendered.
type Scene struct {
	shapes    []Shape
	materials []core.Material
	lights    []core.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddShape adds a shape to the scene
func (s *Scene) AddShape(shape Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddMaterial adds a material and returns its index for shapes to reference
func (s *Scene) AddMaterial(material core.Material) int {
	s.materials = append(s.materials, material)
	return len(s.materials) - 1
}

// AddLight adds a light to the scene
func (s *Scene) AddLight(light core.Light) {
	s.lights = append(s.lights, light)
}

// Materials returns the scene's materials, indexed by HitRecord.MaterialIndex
func (s *Scene) Materials() []core.Material {
	return s.materials
}

// Lights returns the scene's lights in scene order
func (s *Scene) Lights() []core.Light {
	return s.lights
}

// GetClosestHit returns the nearest intersection within the ray's interval,
// or a record with DidHit=false if nothing is hit
func (s *Scene) GetClosestHit(ray core.Ray) core.HitRecord {
	closest := core.HitRecord{}
	closestSoFar := ray.TMax

	for _, shape := range s.shapes {
		if hit, didHit := shape.Hit(ray, ray.TMin, closestSoFar); didHit {
			closest = hit
			closestSoFar = hit.T
		}
	}
	return closest
}

// DoesHit reports whether anything intersects within the ray's interval.
// Any hit suffices, so the scan stops at the first one.
func (s *Scene) DoesHit(ray core.Ray) bool {
	for _, shape := range s.shapes {
		if _, didHit := shape.Hit(ray, ray.TMin, ray.TMax); didHit {
			return true
		}
	}
	return false
}
