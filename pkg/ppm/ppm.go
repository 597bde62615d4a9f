// Package ppm encodes rendered images as binary portable-pixmap (P6)
// files readable by standard netpbm tools.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Encode writes the image to w in the P6 format: the fixed header
// "P6\n{width} {height}\n255\n" followed by three bytes (R, G, B) per
// pixel in row-major order.
func Encode(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for _, pixel := range img.Pixels {
		r, g, b := pixel.RGB()
		bw.WriteByte(r)
		bw.WriteByte(g)
		bw.WriteByte(b)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing PPM pixels: %w", err)
	}
	return nil
}
