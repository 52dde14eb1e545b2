package renderer

import (
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"pgregory.net/rand"

	"github.com/davh/go-direct-raytracer/pkg/core"
	"github.com/davh/go-direct-raytracer/pkg/geometry"
	"github.com/davh/go-direct-raytracer/pkg/lights"
	"github.com/davh/go-direct-raytracer/pkg/material"
)

var allStrategies = []Strategy{Sequential, FixedPartition, ParallelFor}

// Every index in [0, numPixels) must be visited exactly once, whatever the
// strategy and however the range divides across workers.
func TestDispatchPixels_Bijection(t *testing.T) {
	sizes := []int{0, 1, 7, 64, 1000, parallelForSpanSize, parallelForSpanSize*3 + 17}

	for _, strategy := range allStrategies {
		for _, numPixels := range sizes {
			counts := make([]int32, numPixels)
			err := dispatchPixels(strategy, numPixels, func(index int) error {
				atomic.AddInt32(&counts[index], 1)
				return nil
			})
			if err != nil {
				t.Fatalf("%v / %d pixels: unexpected error %v", strategy, numPixels, err)
			}
			for index, count := range counts {
				if count != 1 {
					t.Fatalf("%v / %d pixels: index %d visited %d times", strategy, numPixels, index, count)
				}
			}
		}
	}
}

func TestDispatchPixels_PropagatesError(t *testing.T) {
	boom := errors.New("oracle failure")

	for _, strategy := range allStrategies {
		err := dispatchPixels(strategy, 10000, func(index int) error {
			if index == 4321 {
				return boom
			}
			return nil
		})
		if err == nil {
			t.Errorf("%v: expected error to propagate", strategy)
		}
	}
}

// randomTestScene builds a deterministic pseudo-random scene for the
// strategy-equivalence property.
func randomTestScene(seed uint64) (*geometry.Scene, CameraConfig) {
	rng := rand.New(seed)
	s := geometry.NewScene()

	matte := s.AddMaterial(material.NewLambert(core.NewColor(rng.Float64(), rng.Float64(), rng.Float64()), 1.0))
	shiny := s.AddMaterial(material.NewLambertPhong(core.NewColor(rng.Float64(), rng.Float64(), rng.Float64()), 0.7, 0.4, 30))

	s.AddShape(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), matte))
	for i := 0; i < 8; i++ {
		materialIndex := matte
		if i%2 == 0 {
			materialIndex = shiny
		}
		center := core.NewVec3(rng.Float64()*8-4, rng.Float64()*3+0.5, rng.Float64()*4)
		s.AddShape(geometry.NewSphere(center, rng.Float64()*0.8+0.2, materialIndex))
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(rng.Float64()*4-2, 6, -2), core.White(), 40+rng.Float64()*30))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-0.3, -1, 0.2), core.NewColor(1, 0.9, 0.8), rng.Float64()))

	camera := CameraConfig{
		Origin:   core.NewVec3(0, 2, -8),
		LookAt:   core.NewVec3(0, 1.5, 0),
		FovAngle: 50,
	}
	return s, camera
}

// All three strategies must produce bit-identical buffers for the same
// deterministic scene, for every lighting mode and shadow setting.
func TestRender_StrategiesAreEquivalent(t *testing.T) {
	scene, cameraConfig := randomTestScene(42)

	for _, mode := range []LightingMode{ObservedArea, Radiance, BRDF, Combined} {
		for _, shadows := range []bool{false, true} {
			var reference []uint32

			for _, strategy := range allStrategies {
				camera := NewCamera(cameraConfig)
				fb := NewFramebuffer(96, 54)
				config := RenderConfig{
					Strategy:       strategy,
					ShadowsEnabled: shadows,
					LightingMode:   mode,
				}
				r, err := NewRenderer(scene, camera, fb, config)
				if err != nil {
					t.Fatalf("NewRenderer: %v", err)
				}
				if err := r.Render(); err != nil {
					t.Fatalf("%v: render failed: %v", strategy, err)
				}

				if reference == nil {
					reference = fb.Pixels()
					continue
				}
				if diff := cmp.Diff(reference, fb.Pixels()); diff != "" {
					t.Errorf("mode=%v shadows=%v: %v buffer differs from sequential (-want +got):\n%s",
						mode, shadows, strategy, diff)
				}
			}
		}
	}
}
