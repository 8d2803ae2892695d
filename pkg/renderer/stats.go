package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Pixels delivered to the writer
	Duration    time.Duration // Wall time spent in Render
}

// Complete reports whether every pixel of the image was delivered
func (s RenderStats) Complete() bool {
	return s.TotalPixels == s.Width*s.Height
}
