package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// aaOffsets are the four sub-pixel sample positions used alongside the
// pixel center when antialiasing is enabled.
var aaOffsets = [4][2]float64{
	{-0.25, -0.25},
	{-0.25, 0.25},
	{0.25, -0.25},
	{0.25, 0.25},
}

// Renderer casts rays through every pixel of the scene's screen and
// shades the closest sphere hit. Rows are rendered in parallel on a
// worker pool; each row task owns a disjoint sub-slice of the output
// buffer, so row tasks never synchronize with each other.
type Renderer struct {
	scene  *scene.Scene
	pool   *WorkerPool
	logger core.Logger

	primaryRays int64
	shadowRays  int64
}

// NewRenderer creates a renderer for the given scene. numWorkers <= 0
// selects the detected core count. A nil logger writes to stdout.
//
// The renderer owns a one-shot worker pool, so a single Renderer supports
// a single Render call; a second call fails with ErrPoolClosed.
func NewRenderer(s *scene.Scene, numWorkers int, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NewStdoutLogger()
	}

	return &Renderer{
		scene:  s,
		pool:   NewWorkerPool(numWorkers, int(s.Screen.Height)),
		logger: logger,
	}
}

// Render produces the full image for the scene. It validates the scene,
// partitions the image into one task per scanline row, submits all rows
// to the pool, and blocks until every row has been written.
func (r *Renderer) Render() (*Image, RenderStats, error) {
	start := time.Now()

	if err := r.scene.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}

	width := int(r.scene.Screen.Width)
	height := int(r.scene.Screen.Height)

	img, err := NewImage(width, height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	r.logger.Printf("Rendering %dx%d with %d workers (antialiasing: %t)...\n",
		width, height, r.pool.GetNumWorkers(), r.scene.Antialias)

	r.pool.Start()
	for y := 0; y < height; y++ {
		row := img.Row(y)
		rowY := y
		if err := r.pool.Submit(func() { r.renderRow(rowY, row) }); err != nil {
			r.pool.Wait()
			return nil, RenderStats{}, fmt.Errorf("submitting row %d: %w", rowY, err)
		}
	}
	r.pool.Wait()

	stats := RenderStats{
		TotalPixels: width * height,
		Rows:        height,
		PrimaryRays: atomic.LoadInt64(&r.primaryRays),
		ShadowRays:  atomic.LoadInt64(&r.shadowRays),
		Workers:     r.pool.GetNumWorkers(),
		Elapsed:     time.Since(start),
	}

	r.logger.Printf("Render completed in %v (%d primary rays, %d shadow rays)\n",
		stats.Elapsed, stats.PrimaryRays, stats.ShadowRays)

	return img, stats, nil
}

// renderRow samples every pixel of scanline y into the row slice
func (r *Renderer) renderRow(y int, row []core.Color) {
	for x := range row {
		row[x] = r.samplePixel(x, y)
	}
}

// samplePixel computes the final color for pixel (x, y). With
// antialiasing enabled the center sample and four offset samples are
// averaged; otherwise the center sample alone decides the pixel.
func (r *Renderer) samplePixel(x, y int) core.Color {
	center := r.sample(float64(x), float64(y))
	if !r.scene.Antialias {
		return center
	}

	sum := center
	for _, offset := range aaOffsets {
		sum = sum.Add(r.sample(float64(x)+offset[0], float64(y)+offset[1]))
	}
	return sum.Scale(1.0 / 5.0)
}

// sample casts a single primary ray through screen coordinates (x, y)
// and returns the shaded color of the closest hit, or the black
// background when no sphere lies along the ray.
func (r *Renderer) sample(x, y float64) core.Color {
	ray := r.scene.Camera.RayThrough(x, y, r.scene.Screen)
	atomic.AddInt64(&r.primaryRays, 1)

	sphere, dist := r.closestHit(ray)
	if sphere == nil {
		return core.Color{}
	}

	return r.shade(sphere, ray.At(dist))
}

// closestHit returns the sphere with the smallest positive intersection
// distance along the ray, or nil when nothing is hit. On exactly equal
// distances the first sphere in iteration order wins.
func (r *Renderer) closestHit(ray core.Ray) (*geometry.Sphere, float64) {
	var nearest *geometry.Sphere
	nearestDist := 0.0

	for i := range r.scene.Spheres {
		sphere := &r.scene.Spheres[i]
		if dist := sphere.Intersect(ray); dist != geometry.NoHit {
			if nearest == nil || dist < nearestDist {
				nearest = sphere
				nearestDist = dist
			}
		}
	}

	return nearest, nearestDist
}

// shade computes the color at a hit point using ambient plus diffuse
// lighting with a hard shadow test. The diffuse term is not clamped at
// zero: a surface facing away from the light can drive the intensity
// negative, which clamps at color conversion.
func (r *Renderer) shade(sphere *geometry.Sphere, point core.Vec3) core.Color {
	light := r.scene.Light
	lightDir := light.Position.Subtract(point).Normalize()
	lightDist := point.Distance(light.Position)

	intensity := r.scene.AmbientLight
	if !r.occluded(sphere, point, lightDir, lightDist) {
		normal := sphere.NormalAt(point)
		intensity += lightDir.Dot(normal) * light.Intensity
	}

	return sphere.Color.Blend(light.Color, intensity)
}

// occluded reports whether any other sphere blocks the segment from the
// hit point to the light. The hit sphere excludes itself by name.
func (r *Renderer) occluded(hit *geometry.Sphere, point, lightDir core.Vec3, lightDist float64) bool {
	shadowRay := core.NewRay(point, lightDir)

	for i := range r.scene.Spheres {
		other := &r.scene.Spheres[i]
		if other.Name == hit.Name {
			continue
		}

		atomic.AddInt64(&r.shadowRays, 1)
		if dist := other.Intersect(shadowRay); dist != geometry.NoHit && dist < lightDist {
			return true
		}
	}

	return false
}
