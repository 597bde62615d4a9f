package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// NewDefaultScene creates a scene with three spheres and a single white
// point light above and behind the camera
func NewDefaultScene() *Scene {
	s := &Scene{
		Camera:       geometry.NewCamera(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1)),
		Screen:       geometry.NewScreen(480, 240, 10),
		Light:        geometry.NewLight(core.NewVec3(30, 40, -30), core.NewColor(1, 1, 1), 1.0),
		AmbientLight: 0.05,
	}

	s.AddSphere(geometry.NewSphere("center", core.NewVec3(0, 0, 0), 15, core.NewColor(0.8, 0.25, 0.2)))
	s.AddSphere(geometry.NewSphere("left", core.NewVec3(-40, 5, 15), 12, core.NewColor(0.2, 0.35, 0.8)))
	s.AddSphere(geometry.NewSphere("right", core.NewVec3(40, -5, 15), 12, core.NewColor(0.8, 0.6, 0.2)))

	return s
}

// NewShowcaseScene creates a scene with a row of small spheres in front
// of a large backdrop sphere, lit by a warm light from the upper left.
// The small spheres cast shadows onto the backdrop.
func NewShowcaseScene() *Scene {
	s := &Scene{
		Camera:       geometry.NewCamera(core.NewVec3(0, 0, -30), core.NewVec3(0, 0, 1)),
		Screen:       geometry.NewScreen(640, 360, 12),
		Light:        geometry.NewLight(core.NewVec3(-50, 60, -40), core.NewColor(1, 0.95, 0.85), 1.2),
		AmbientLight: 0.08,
	}

	s.AddSphere(geometry.NewSphere("backdrop", core.NewVec3(0, 0, 90), 60, core.NewColor(0.35, 0.4, 0.45)))

	colors := []core.Color{
		core.NewColor(0.85, 0.2, 0.2),
		core.NewColor(0.85, 0.55, 0.15),
		core.NewColor(0.8, 0.8, 0.2),
		core.NewColor(0.2, 0.7, 0.3),
		core.NewColor(0.25, 0.4, 0.85),
	}
	for i, color := range colors {
		x := float64(i-2) * 18
		s.AddSphere(geometry.NewSphere(fmt.Sprintf("row-%d", i), core.NewVec3(x, -4, 5), 7, color))
	}

	return s
}
