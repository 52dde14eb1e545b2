package renderer

import (
	"github.com/pkg/errors"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

// Scene is what the renderer needs from a scene: an intersection oracle plus
// read-only material and light lists. Declared here to avoid depending on a
// concrete scene implementation.
type Scene interface {
	core.Geometry
	Materials() []core.Material
	Lights() []core.Light
}

// Presenter receives the completed framebuffer at the end of a frame.
type Presenter interface {
	Present(fb *Framebuffer) error
}

// Renderer drives one frame at a time: it snapshots per-frame constants,
// dispatches the per-pixel pipeline, and publishes the finished buffer. The
// scene, camera, and framebuffer are borrowed, not owned, and must not be
// mutated while Render is in flight.
type Renderer struct {
	scene     Scene
	camera    *Camera
	fb        *Framebuffer
	config    RenderConfig
	presenter Presenter
	logger    core.Logger
}

// NewRenderer creates a renderer for the given scene, camera and framebuffer
func NewRenderer(scene Scene, camera *Camera, fb *Framebuffer, config RenderConfig) (*Renderer, error) {
	if fb == nil || fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, errors.Errorf("renderer requires a framebuffer with positive dimensions")
	}
	return &Renderer{
		scene:  scene,
		camera: camera,
		fb:     fb,
		config: config,
	}, nil
}

// SetPresenter attaches a presentation surface that is flushed after each
// completed frame
func (r *Renderer) SetPresenter(presenter Presenter) {
	r.presenter = presenter
}

// SetLogger attaches an optional logger
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// Config returns the current render configuration
func (r *Renderer) Config() RenderConfig {
	return r.config
}

// CycleLightingMode advances the lighting mode. It takes effect at the next
// Render call; it must not be invoked while a frame is in flight.
func (r *Renderer) CycleLightingMode() {
	r.config.LightingMode = r.config.LightingMode.Next()
	if r.logger != nil {
		r.logger.Printf("lighting mode: %s", r.config.LightingMode)
	}
}

// SetShadowsEnabled toggles shadow testing for subsequent frames
func (r *Renderer) SetShadowsEnabled(enabled bool) {
	r.config.ShadowsEnabled = enabled
}

// SetStrategy selects the dispatch strategy for subsequent frames
func (r *Renderer) SetStrategy(strategy Strategy) {
	r.config.Strategy = strategy
}

// Render produces one full frame. The camera-to-world transform, fov scalar
// and aspect ratio are recomputed once, every pixel is dispatched exactly
// once under the configured strategy, and the buffer is flushed to the
// presenter. An error aborts the frame; no partial frame is presented.
func (r *Renderer) Render() error {
	width, height := r.fb.Width(), r.fb.Height()
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	r.camera.CalculateCameraToWorld()
	fc := newFrameConstants(r.camera, width, height)

	materials := r.scene.Materials()
	lights := r.scene.Lights()
	config := r.config

	numPixels := width * height
	err := dispatchPixels(config.Strategy, numPixels, func(index int) error {
		return r.renderPixel(index, fc, materials, lights, config)
	})
	if err != nil {
		return errors.Wrap(err, "rendering frame")
	}

	if r.presenter != nil {
		if err := r.presenter.Present(r.fb); err != nil {
			return errors.Wrap(err, "presenting frame")
		}
	}
	return nil
}

// renderPixel runs the full pipeline for one pixel: primary ray, closest
// hit, shading, buffer write.
func (r *Renderer) renderPixel(index int, fc frameConstants, materials []core.Material, lights []core.Light, config RenderConfig) error {
	viewRay := fc.rayForPixel(index)
	hit := r.scene.GetClosestHit(viewRay)

	finalColor := core.Black()
	if hit.DidHit {
		if hit.MaterialIndex < 0 || hit.MaterialIndex >= len(materials) {
			return errors.Errorf("pixel %d: material index %d out of range [0, %d)", index, hit.MaterialIndex, len(materials))
		}
		// Direction from the hit point back to the camera.
		viewDir := fc.camera.origin.Subtract(hit.Point).Normalize()
		finalColor = shadePixel(hit, r.scene, materials, lights, viewDir, config)
	}

	r.fb.Set(index, finalColor)
	return nil
}
