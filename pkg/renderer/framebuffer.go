package renderer

import (
	"image"
	"image/color"

	"github.com/davh/go-direct-raytracer/pkg/core"
)

// PackRGBFunc packs 8-bit channels into a platform pixel format.
type PackRGBFunc func(r, g, b uint8) uint32

// PackRGB888 is the default packed layout: 0x00RRGGBB.
func PackRGB888(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Framebuffer is a row-major buffer of packed RGB pixels, one uint32 per
// pixel. Pixel slots are written independently, one per pixel task, so the
// buffer needs no locking during a dispatch.
type Framebuffer struct {
	width  int
	height int
	pack   PackRGBFunc
	pixels []uint32
}

// NewFramebuffer creates a framebuffer using the default RGB888 packing
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pack:   PackRGB888,
		pixels: make([]uint32, width*height),
	}
}

// SetPacking replaces the color-packing function. Platform surfaces with a
// different channel order inject their own packer here.
func (fb *Framebuffer) SetPacking(pack PackRGBFunc) {
	fb.pack = pack
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Set writes a clamped color into the pixel slot for index
func (fb *Framebuffer) Set(index int, c core.Color) {
	r, g, b := c.RGBA8()
	fb.pixels[index] = fb.pack(r, g, b)
}

// Pixel returns the packed pixel at (x, y)
func (fb *Framebuffer) Pixel(x, y int) uint32 {
	return fb.pixels[y*fb.width+x]
}

// Pixels returns the underlying row-major pixel slice
func (fb *Framebuffer) Pixels() []uint32 {
	return fb.pixels
}

// ToImage converts the buffer to an image. It decodes the default RGB888
// layout; buffers written with a custom packer should be decoded by the
// surface that owns the format.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			p := fb.pixels[y*fb.width+x]
			img.Set(x, y, color.RGBA{
				R: uint8(p >> 16),
				G: uint8(p >> 8),
				B: uint8(p),
				A: 255,
			})
		}
	}
	return img
}
