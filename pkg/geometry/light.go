package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Light represents a single point light. Intensity is an unclamped
// multiplier applied to the diffuse contribution.
type Light struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, color core.Color, intensity float64) Light {
	return Light{Position: position, Color: color, Intensity: intensity}
}
