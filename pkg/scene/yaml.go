package scene

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/davh/go-direct-raytracer/pkg/core"
	"github.com/davh/go-direct-raytracer/pkg/geometry"
	"github.com/davh/go-direct-raytracer/pkg/lights"
	"github.com/davh/go-direct-raytracer/pkg/material"
	"github.com/davh/go-direct-raytracer/pkg/renderer"
)

// File-level schema for YAML scene descriptions. Vectors and colors are
// 3-element sequences.
type sceneFile struct {
	Camera struct {
		Origin   [3]float64 `yaml:"origin"`
		LookAt   [3]float64 `yaml:"look_at"`
		FovAngle float64    `yaml:"fov"`
	} `yaml:"camera"`
	Materials []struct {
		Type     string     `yaml:"type"` // "lambert" or "lambert_phong"
		Albedo   [3]float64 `yaml:"albedo"`
		Kd       float64    `yaml:"kd"`
		Ks       float64    `yaml:"ks"`
		Exponent float64    `yaml:"exponent"`
	} `yaml:"materials"`
	Spheres []struct {
		Center   [3]float64 `yaml:"center"`
		Radius   float64    `yaml:"radius"`
		Material int        `yaml:"material"`
	} `yaml:"spheres"`
	Planes []struct {
		Point    [3]float64 `yaml:"point"`
		Normal   [3]float64 `yaml:"normal"`
		Material int        `yaml:"material"`
	} `yaml:"planes"`
	Lights []struct {
		Type      string     `yaml:"type"` // "point" or "directional"
		Position  [3]float64 `yaml:"position"`
		Direction [3]float64 `yaml:"direction"`
		Color     [3]float64 `yaml:"color"`
		Intensity float64    `yaml:"intensity"`
	} `yaml:"lights"`
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func col(v [3]float64) core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

// FromYAML builds a scene and camera configuration from YAML scene data
func FromYAML(data []byte) (*geometry.Scene, renderer.CameraConfig, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, renderer.CameraConfig{}, errors.Wrap(err, "parsing scene")
	}

	s := geometry.NewScene()

	for i, m := range file.Materials {
		switch m.Type {
		case "lambert":
			s.AddMaterial(material.NewLambert(col(m.Albedo), m.Kd))
		case "lambert_phong":
			s.AddMaterial(material.NewLambertPhong(col(m.Albedo), m.Kd, m.Ks, m.Exponent))
		default:
			return nil, renderer.CameraConfig{}, errors.Errorf("material %d: unknown type %q", i, m.Type)
		}
	}

	numMaterials := len(file.Materials)
	for i, sphere := range file.Spheres {
		if sphere.Material < 0 || sphere.Material >= numMaterials {
			return nil, renderer.CameraConfig{}, errors.Errorf("sphere %d: material index %d out of range", i, sphere.Material)
		}
		s.AddShape(geometry.NewSphere(vec(sphere.Center), sphere.Radius, sphere.Material))
	}
	for i, plane := range file.Planes {
		if plane.Material < 0 || plane.Material >= numMaterials {
			return nil, renderer.CameraConfig{}, errors.Errorf("plane %d: material index %d out of range", i, plane.Material)
		}
		s.AddShape(geometry.NewPlane(vec(plane.Point), vec(plane.Normal), plane.Material))
	}

	for i, light := range file.Lights {
		switch light.Type {
		case "point":
			s.AddLight(lights.NewPointLight(vec(light.Position), col(light.Color), light.Intensity))
		case "directional":
			s.AddLight(lights.NewDirectionalLight(vec(light.Direction), col(light.Color), light.Intensity))
		default:
			return nil, renderer.CameraConfig{}, errors.Errorf("light %d: unknown type %q", i, light.Type)
		}
	}

	camera := renderer.CameraConfig{
		Origin:   vec(file.Camera.Origin),
		LookAt:   vec(file.Camera.LookAt),
		FovAngle: file.Camera.FovAngle,
	}
	if camera.FovAngle == 0 {
		camera.FovAngle = 45
	}
	return s, camera, nil
}

// Load reads a scene file from disk
func Load(path string) (*geometry.Scene, renderer.CameraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, renderer.CameraConfig{}, errors.Wrapf(err, "reading scene %s", path)
	}
	return FromYAML(data)
}
