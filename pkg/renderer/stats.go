package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Number of row tasks executed
	PrimaryRays int64         // Rays cast from the camera (includes antialiasing samples)
	ShadowRays  int64         // Occlusion rays cast toward the light
	Workers     int           // Number of pool workers used
	Elapsed     time.Duration // Wall-clock render time
}
