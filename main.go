package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/ppm"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// createScene builds a scene from a scene type name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "showcase":
		return scene.NewShowcaseScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// writeImage saves the image as PNG when the filename ends in .png,
// otherwise as a binary P6 portable pixmap
func writeImage(filename string, img *renderer.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.HasSuffix(filename, ".png") {
		return png.Encode(file, img.ToRGBA())
	}
	return ppm.Encode(file, img)
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'showcase'")
	output := flag.String("output", "", "Output file (.ppm or .png)")
	antialias := flag.Bool("aa", false, "Enable supersampled antialiasing")
	workers := flag.Int("workers", 0, "Number of render workers (0 = detected core count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Tracer")
		fmt.Println("Usage: sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Three spheres under a single white light")
		fmt.Println("  showcase - A row of spheres casting shadows onto a backdrop sphere")
		fmt.Println()
		fmt.Println("Without -output, renders are saved to output/<scene_type>/render_<timestamp>.ppm")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	selectedScene.Antialias = *antialias

	// Resolve the output filename, creating the per-scene directory if needed
	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			return
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp))
	}

	fmt.Println("Starting Sphere Tracer...")

	img, stats, err := renderer.NewRenderer(selectedScene, *workers, nil).Render()
	if err != nil {
		fmt.Printf("Error rendering scene: %v\n", err)
		return
	}

	fmt.Printf("Rendered %d pixels across %d rows in %v\n", stats.TotalPixels, stats.Rows, stats.Elapsed)

	if err := writeImage(filename, img); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
