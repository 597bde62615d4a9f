package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering: the camera and
// its projection screen, a single point light, a global ambient level,
// the antialiasing switch, and the sphere collection.
type Scene struct {
	Camera       geometry.Camera
	Screen       geometry.Screen
	Light        geometry.Light
	AmbientLight float64
	Antialias    bool
	Spheres      []geometry.Sphere
}

// AddSphere appends a sphere to the scene. Sphere names must be unique
// within a scene; Validate enforces this before rendering.
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// Validate checks the scene invariants: positive screen dimensions and
// focal distance, a non-degenerate camera direction, positive sphere
// radii, and pairwise-distinct sphere names.
func (s *Scene) Validate() error {
	if s.Screen.Width < 1 || s.Screen.Height < 1 {
		return fmt.Errorf("screen dimensions must be at least 1x1, got %vx%v", s.Screen.Width, s.Screen.Height)
	}
	if s.Screen.FocalDistance <= 0 {
		return fmt.Errorf("focal distance must be positive, got %v", s.Screen.FocalDistance)
	}
	if s.Camera.Direction.LengthSquared() == 0 {
		return fmt.Errorf("camera direction must not be the zero vector")
	}

	names := make(map[string]bool, len(s.Spheres))
	for _, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			return fmt.Errorf("sphere %q: radius must be positive, got %v", sphere.Name, sphere.Radius)
		}
		if names[sphere.Name] {
			return fmt.Errorf("duplicate sphere name %q", sphere.Name)
		}
		names[sphere.Name] = true
	}

	return nil
}
