package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// The screen plane is aligned to fixed world axes: it can pan with the
// camera but cannot roll or tilt independently of these basis vectors.
var (
	screenRight = core.NewVec3(1, 0, 0)
	screenUp    = core.NewVec3(0, 1, 0)
)

// Camera represents the ray origin and its forward-facing direction.
// The direction is used as supplied; callers provide a unit vector.
type Camera struct {
	Position  core.Vec3
	Direction core.Vec3
}

// NewCamera creates a new camera
func NewCamera(position, direction core.Vec3) Camera {
	return Camera{Position: position, Direction: direction}
}

// Screen represents the projection plane the camera casts rays through
type Screen struct {
	Width         float64 // Horizontal pixel count
	Height        float64 // Vertical pixel count
	FocalDistance float64 // Distance from camera to the projection plane
}

// NewScreen creates a new screen
func NewScreen(width, height, focalDistance float64) Screen {
	return Screen{Width: width, Height: height, FocalDistance: focalDistance}
}

// RayThrough generates the unit ray from the camera through pixel (x, y)
// on the screen. Coordinates are floating point so antialiasing can
// request sub-pixel offsets. Image row 0 is the top of the screen, so y
// is flipped into a world Y that increases upward.
func (c Camera) RayThrough(x, y float64, screen Screen) core.Ray {
	xWorld := x - screen.Width/2
	yWorld := screen.Height/2 - y

	center := c.Position.Add(c.Direction.Multiply(screen.FocalDistance))
	pixel := center.
		Add(screenRight.Multiply(xWorld)).
		Add(screenUp.Multiply(yWorld))

	return core.NewRay(c.Position, pixel.Subtract(c.Position).Normalize())
}
