package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// renderScene runs a fresh renderer over the scene with a silent logger
func renderScene(t *testing.T, s *scene.Scene) (*Image, RenderStats) {
	t.Helper()
	img, stats, err := NewRenderer(s, 4, core.NewSilentLogger()).Render()
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	return img, stats
}

func colorsClose(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func TestRenderer_EmptySceneIsBackground(t *testing.T) {
	s := &scene.Scene{
		Camera:       geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		Screen:       geometry.NewScreen(8, 8, 10),
		Light:        geometry.NewLight(core.NewVec3(0, 50, 0), core.NewColor(1, 1, 1), 1.0),
		AmbientLight: 0.1,
	}

	img, stats := renderScene(t, s)

	for i, pixel := range img.Pixels {
		if pixel != (core.Color{}) {
			t.Fatalf("Expected background at pixel %d, got %v", i, pixel)
		}
	}
	if stats.TotalPixels != 64 || stats.Rows != 8 {
		t.Errorf("Expected 64 pixels over 8 rows, got %d over %d", stats.TotalPixels, stats.Rows)
	}
}

func TestRenderer_EndToEndCenterHitCornersMiss(t *testing.T) {
	s := &scene.Scene{
		Camera:       geometry.NewCamera(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1)),
		Screen:       geometry.NewScreen(480, 240, 10),
		Light:        geometry.NewLight(core.NewVec3(0, 0, -40), core.NewColor(1, 1, 1), 1.0),
		AmbientLight: 0,
	}
	s.AddSphere(geometry.NewSphere("big", core.NewVec3(0, 0, 0), 19, core.NewColor(0.8, 0.3, 0.3)))

	img, _ := renderScene(t, s)

	if img.At(240, 120) == (core.Color{}) {
		t.Error("Expected center pixel to hit the sphere, got background")
	}

	corners := [][2]int{{0, 0}, {479, 0}, {0, 239}, {479, 239}}
	for _, c := range corners {
		if img.At(c[0], c[1]) != (core.Color{}) {
			t.Errorf("Expected background at corner (%d, %d), got %v", c[0], c[1], img.At(c[0], c[1]))
		}
	}
}

func TestRenderer_ClosestHitOrderIndependent(t *testing.T) {
	red := core.NewColor(0.8, 0.25, 0.2)
	blue := core.NewColor(0.2, 0.35, 0.8)

	near := geometry.NewSphere("near", core.NewVec3(0, 0, 0), 1, red)
	far := geometry.NewSphere("far", core.NewVec3(0, 0, 1), 1.5, blue)

	build := func(spheres ...geometry.Sphere) *scene.Scene {
		s := &scene.Scene{
			Camera:       geometry.NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			Screen:       geometry.NewScreen(40, 40, 5),
			Light:        geometry.NewLight(core.NewVec3(0, 0, -10), core.NewColor(1, 1, 1), 1.0),
			AmbientLight: 0.1,
		}
		for _, sphere := range spheres {
			s.AddSphere(sphere)
		}
		return s
	}

	imgA, _ := renderScene(t, build(near, far))
	imgB, _ := renderScene(t, build(far, near))

	center := imgA.At(20, 20)

	// The nearer sphere owns the pixel regardless of insertion order.
	// Ambient 0.1 plus a head-on diffuse term of 1.0 scales its color.
	expected := red.Blend(core.NewColor(1, 1, 1), 1.1)
	if !colorsClose(center, expected, 1e-9) {
		t.Errorf("Expected nearer sphere color %v, got %v", expected, center)
	}

	if imgB.At(20, 20) != center {
		t.Errorf("Closest-hit should be order independent: %v vs %v", center, imgB.At(20, 20))
	}
}

func TestRenderer_EqualDistanceTieBreak(t *testing.T) {
	red := core.NewColor(0.8, 0.25, 0.2)
	blue := core.NewColor(0.2, 0.35, 0.8)

	build := func(first, second core.Color) *scene.Scene {
		s := &scene.Scene{
			Camera:       geometry.NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			Screen:       geometry.NewScreen(40, 40, 5),
			Light:        geometry.NewLight(core.NewVec3(0, 0, -10), core.NewColor(1, 1, 1), 1.0),
			AmbientLight: 0.1,
		}
		s.AddSphere(geometry.NewSphere("first", core.NewVec3(0, 0, 0), 1, first))
		s.AddSphere(geometry.NewSphere("second", core.NewVec3(0, 0, 0), 1, second))
		return s
	}

	imgA, _ := renderScene(t, build(red, blue))
	imgB, _ := renderScene(t, build(blue, red))

	// On exactly equal intersection distances the first sphere in
	// iteration order wins
	expectedA := red.Blend(core.NewColor(1, 1, 1), 1.1)
	if !colorsClose(imgA.At(20, 20), expectedA, 1e-9) {
		t.Errorf("Expected first sphere to win tie, got %v", imgA.At(20, 20))
	}

	expectedB := blue.Blend(core.NewColor(1, 1, 1), 1.1)
	if !colorsClose(imgB.At(20, 20), expectedB, 1e-9) {
		t.Errorf("Expected first sphere to win tie after reorder, got %v", imgB.At(20, 20))
	}
}

func TestRenderer_ShadowZeroesDiffuseTerm(t *testing.T) {
	red := core.NewColor(0.8, 0.25, 0.2)
	white := core.NewColor(1, 1, 1)

	build := func(withBlocker bool) *scene.Scene {
		s := &scene.Scene{
			Camera:       geometry.NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			Screen:       geometry.NewScreen(40, 40, 5),
			Light:        geometry.NewLight(core.NewVec3(0, 3, -4), white, 1.0),
			AmbientLight: 0.2,
		}
		s.AddSphere(geometry.NewSphere("subject", core.NewVec3(0, 0, 0), 1, red))
		if withBlocker {
			// Centered on the segment from the hit point (0,0,-1) to
			// the light, off the camera axis
			s.AddSphere(geometry.NewSphere("blocker", core.NewVec3(0, 1.5, -2.5), 0.5, white))
		}
		return s
	}

	shadowed, _ := renderScene(t, build(true))
	lit, _ := renderScene(t, build(false))

	// Fully occluded: the pixel receives the ambient term only
	expected := red.Blend(white, 0.2)
	if !colorsClose(shadowed.At(20, 20), expected, 1e-9) {
		t.Errorf("Expected ambient-only color %v in shadow, got %v", expected, shadowed.At(20, 20))
	}

	if lit.At(20, 20).R <= shadowed.At(20, 20).R {
		t.Errorf("Expected lit pixel brighter than shadowed: %v vs %v",
			lit.At(20, 20), shadowed.At(20, 20))
	}
}

func TestRenderer_AntialiasingBlendsEdges(t *testing.T) {
	build := func(antialias bool) *scene.Scene {
		s := &scene.Scene{
			Camera:       geometry.NewCamera(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, 1)),
			Screen:       geometry.NewScreen(100, 100, 10),
			Light:        geometry.NewLight(core.NewVec3(0, 0, -50), core.NewColor(1, 1, 1), 1.0),
			AmbientLight: 0.3,
			Antialias:    antialias,
		}
		s.AddSphere(geometry.NewSphere("ball", core.NewVec3(0, 0, 0), 10, core.NewColor(0.8, 0.3, 0.3)))
		return s
	}

	aliased, _ := renderScene(t, build(false))
	smoothed, _ := renderScene(t, build(true))

	// Pixel (56, 50) straddles the sphere's silhouette: its center
	// sample misses but two of the offset samples hit
	if aliased.At(56, 50) != (core.Color{}) {
		t.Fatalf("Expected aliased edge pixel to be background, got %v", aliased.At(56, 50))
	}

	inside := aliased.At(55, 50)
	if inside == (core.Color{}) {
		t.Fatal("Expected pixel (55, 50) fully on the sphere")
	}

	edge := smoothed.At(56, 50)
	if edge.R <= 0 || edge.R >= inside.R {
		t.Errorf("Expected edge pixel strictly between background and sphere color, got %v (inside %v)",
			edge, inside)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	build := func() *scene.Scene {
		s := scene.NewDefaultScene()
		s.Antialias = true
		return s
	}

	imgA, statsA := renderScene(t, build())
	imgB, _ := renderScene(t, build())

	for i := range imgA.Pixels {
		if imgA.Pixels[i] != imgB.Pixels[i] {
			t.Fatalf("Renders should be byte-identical, pixel %d differs: %v vs %v",
				i, imgA.Pixels[i], imgB.Pixels[i])
		}
	}

	// Five samples per pixel with antialiasing enabled
	expectedRays := int64(5 * statsA.TotalPixels)
	if statsA.PrimaryRays != expectedRays {
		t.Errorf("Expected %d primary rays, got %d", expectedRays, statsA.PrimaryRays)
	}
}

func TestRenderer_PrimaryRayCountWithoutAntialiasing(t *testing.T) {
	s := scene.NewDefaultScene()
	_, stats := renderScene(t, s)

	if stats.PrimaryRays != int64(stats.TotalPixels) {
		t.Errorf("Expected one primary ray per pixel, got %d for %d pixels",
			stats.PrimaryRays, stats.TotalPixels)
	}
	if stats.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", stats.Workers)
	}
}

func TestRenderer_SecondRenderFails(t *testing.T) {
	r := NewRenderer(scene.NewDefaultScene(), 2, core.NewSilentLogger())

	if _, _, err := r.Render(); err != nil {
		t.Fatalf("Unexpected first render error: %v", err)
	}

	_, _, err := r.Render()
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Expected ErrPoolClosed on reused renderer, got %v", err)
	}
}

func TestRenderer_InvalidSceneFails(t *testing.T) {
	s := scene.NewDefaultScene()
	s.AddSphere(geometry.NewSphere("center", core.NewVec3(5, 5, 5), 1, core.Color{}))

	_, _, err := NewRenderer(s, 2, core.NewSilentLogger()).Render()
	if err == nil {
		t.Fatal("Expected validation error for duplicate sphere name")
	}
}
