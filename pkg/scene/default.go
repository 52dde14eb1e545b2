package scene

import (
	"github.com/davh/go-direct-raytracer/pkg/core"
	"github.com/davh/go-direct-raytracer/pkg/geometry"
	"github.com/davh/go-direct-raytracer/pkg/lights"
	"github.com/davh/go-direct-raytracer/pkg/material"
	"github.com/davh/go-direct-raytracer/pkg/renderer"
)

// Default builds the reference scene: two rows of spheres over a gray
// ground plane lit by point lights, with a camera looking at the rows.
func Default() (*geometry.Scene, renderer.CameraConfig) {
	s := geometry.NewScene()

	grayBlue := s.AddMaterial(material.NewLambert(core.NewColor(0.49, 0.57, 0.57), 1.0))
	matteRed := s.AddMaterial(material.NewLambert(core.NewColor(0.75, 0.25, 0.25), 1.0))
	shinyGray := s.AddMaterial(material.NewLambertPhong(core.NewColor(0.75, 0.75, 0.75), 0.8, 0.5, 60))

	// Ground and back wall
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), grayBlue))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), grayBlue))

	// Front row of matte spheres, back row of shiny ones
	s.AddShape(geometry.NewSphere(core.NewVec3(-1.75, 1, 0), 0.75, matteRed))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1, 0), 0.75, matteRed))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.75, 1, 0), 0.75, matteRed))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1.75, 3, 0), 0.75, shinyGray))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 3, 0), 0.75, shinyGray))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.75, 3, 0), 0.75, shinyGray))

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 5), core.NewColor(1, 0.61, 0.45), 50))
	s.AddLight(lights.NewPointLight(core.NewVec3(-2.5, 5, -5), core.NewColor(1, 0.8, 0.45), 70))
	s.AddLight(lights.NewPointLight(core.NewVec3(2.5, 2.5, -5), core.NewColor(0.34, 0.47, 0.68), 50))

	camera := renderer.CameraConfig{
		Origin:   core.NewVec3(0, 3, -9),
		LookAt:   core.NewVec3(0, 3, 0),
		FovAngle: 45,
	}
	return s, camera
}
