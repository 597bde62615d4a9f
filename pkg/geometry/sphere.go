package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// NoHit is the sentinel intersection distance returned when a ray does
// not intersect a sphere. Valid intersection distances are always positive.
const NoHit = -1.0

// Sphere represents a sphere with a scene-unique name used to exclude
// self-intersection during shadow tests
type Sphere struct {
	Name   string
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(name string, center core.Vec3, radius float64, color core.Color) Sphere {
	return Sphere{
		Name:   name,
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Intersect tests the ray against the sphere and returns the distance to
// the closest intersection in front of the ray origin, or NoHit if the
// ray misses the sphere or the sphere lies entirely behind the origin.
func (s Sphere) Intersect(ray core.Ray) float64 {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NoHit
	}

	// Prefer the nearer root; fall back to the farther one when the
	// origin is inside the sphere.
	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	if t0 > 0 {
		return t0
	}
	t1 := (-b + sqrtD) / (2 * a)
	if t1 > 0 {
		return t1
	}

	return NoHit
}

// NormalAt returns the unit surface normal at a point on the sphere
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
