package renderer

import (
	"math"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

// CameraConfig holds camera configuration
type CameraConfig struct {
	Origin   core.Vec3 // Camera position in world space
	LookAt   core.Vec3 // Point the camera is aimed at
	Up       core.Vec3 // World up hint for building the basis (defaults to +Y)
	FovAngle float64   // Vertical field of view in degrees
}

// Camera generates primary rays for rendering. The camera looks down +Z in
// its own space; CalculateCameraToWorld rebuilds the world-space basis from
// the current configuration.
type Camera struct {
	config  CameraConfig
	origin  core.Vec3
	right   core.Vec3
	up      core.Vec3
	forward core.Vec3
}

// NewCamera creates a camera and computes its initial camera-to-world basis
func NewCamera(config CameraConfig) *Camera {
	if config.Up.LengthSquared() == 0 {
		config.Up = core.NewVec3(0, 1, 0)
	}
	camera := &Camera{config: config}
	camera.CalculateCameraToWorld()
	return camera
}

// Config returns the current camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// SetConfig replaces the camera configuration. The basis is rebuilt on the
// next CalculateCameraToWorld call, which the frame driver issues once per
// frame before any ray is generated.
func (c *Camera) SetConfig(config CameraConfig) {
	if config.Up.LengthSquared() == 0 {
		config.Up = core.NewVec3(0, 1, 0)
	}
	c.config = config
}

// CalculateCameraToWorld recomputes the orthonormal camera-to-world basis
// from the camera's current position and orientation
func (c *Camera) CalculateCameraToWorld() {
	c.origin = c.config.Origin
	c.forward = c.config.LookAt.Subtract(c.config.Origin).Normalize()
	c.right = c.config.Up.Cross(c.forward).Normalize()
	c.up = c.forward.Cross(c.right)
}

// transformVector applies the camera-to-world basis to a camera-space
// vector. Direction-only: no translation.
func (c *Camera) transformVector(v core.Vec3) core.Vec3 {
	return c.right.Multiply(v.X).
		Add(c.up.Multiply(v.Y)).
		Add(c.forward.Multiply(v.Z))
}

// frameConstants is the read-only per-frame snapshot shared by every pixel
// task. It is built once per frame, after CalculateCameraToWorld.
type frameConstants struct {
	width       int
	height      int
	fov         float64 // tan(fovAngle/2)
	aspectRatio float64
	camera      *Camera
}

func newFrameConstants(camera *Camera, width, height int) frameConstants {
	fovAngle := camera.config.FovAngle * math.Pi / 180
	return frameConstants{
		width:       width,
		height:      height,
		fov:         math.Tan(fovAngle / 2),
		aspectRatio: float64(width) / float64(height),
		camera:      camera,
	}
}

// rayForPixel maps a pixel index to a world-space primary ray through the
// pixel's center. Row 0 is the top of the image.
func (fc frameConstants) rayForPixel(index int) core.Ray {
	px := index % fc.width
	py := index / fc.width

	rx := float64(px) + 0.5
	ry := float64(py) + 0.5

	x := (2*(rx/float64(fc.width)) - 1) * fc.aspectRatio * fc.fov
	y := (1 - 2*(ry/float64(fc.height))) * fc.fov

	cameraSpaceDir := core.NewVec3(x, y, 1)
	direction := fc.camera.transformVector(cameraSpaceDir).Normalize()

	return core.NewRay(fc.camera.origin, direction)
}
