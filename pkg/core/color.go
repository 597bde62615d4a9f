package core

// Color represents an RGB color with channels normalized to [0, 1].
// Arithmetic on colors does not clamp; out-of-range values are clamped
// only when converting to or from 8-bit channel bytes.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color, clamping each channel to [0, 1]
func NewColor(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// NewColorFromBytes creates a new Color from 8-bit channel values
func NewColorFromBytes(r, g, b uint8) Color {
	return Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color{R: s * c.R, G: s * c.G, B: s * c.B}
}

// Blend returns the color multiplied component-wise by a light's color
// and scaled by the given intensity
func (c Color) Blend(light Color, intensity float64) Color {
	return Color{
		R: c.R * light.R * intensity,
		G: c.G * light.G * intensity,
		B: c.B * light.B * intensity,
	}
}

// RGB returns the three color channels as bytes in [0, 255], clamping
// out-of-range channel values
func (c Color) RGB() (uint8, uint8, uint8) {
	return uint8(255 * clamp01(c.R)), uint8(255 * clamp01(c.G)), uint8(255 * clamp01(c.B))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
