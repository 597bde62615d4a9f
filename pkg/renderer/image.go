package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Image is a row-major pixel buffer of colors. The buffer length is
// always Width*Height.
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage allocates a black image with the given dimensions
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}, nil
}

// At returns the color of the pixel at (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Set assigns the color of the pixel at (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}

// Row returns the sub-slice of the buffer holding scanline y. Rows are
// disjoint views into the shared buffer, so separate rows can be written
// concurrently without synchronization.
func (img *Image) Row(y int) []core.Color {
	return img.Pixels[y*img.Width : (y+1)*img.Width]
}

// ToRGBA converts the buffer to a standard library RGBA image, clamping
// channels to the 8-bit range
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y).RGB()
			rgba.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return rgba
}
