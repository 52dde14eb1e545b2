package core

// Color is an RGB color with non-negative float channels. Channels have no
// upper bound until MaxToOne is applied.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// White returns the unit white color
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MaxToOne rescales the color so its maximum channel is at most 1, scaling
// all channels proportionally to preserve hue. Colors already inside the
// unit cube are returned unchanged, which makes the operation idempotent.
func (c Color) MaxToOne() Color {
	maxChannel := c.R
	if c.G > maxChannel {
		maxChannel = c.G
	}
	if c.B > maxChannel {
		maxChannel = c.B
	}
	if maxChannel <= 1 {
		return c
	}
	return c.Scale(1 / maxChannel)
}

// RGBA8 converts the color to 8-bit channels. Channels are expected to be in
// [0, 1]; callers clamp with MaxToOne first.
func (c Color) RGBA8() (r, g, b uint8) {
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)
}
