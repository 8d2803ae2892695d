package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-gradient-raytracer/pkg/core"
)

// ImageConfig describes the output raster
type ImageConfig struct {
	Width       int     // Image width in pixels
	AspectRatio float64 // Width / height; height is derived
}

// DefaultImageConfig returns a 400 pixel wide 16:9 image
func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		Width:       400,
		AspectRatio: 16.0 / 9.0,
	}
}

// Height returns the image height, truncating width / aspect ratio
func (c ImageConfig) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// PixelWriter receives the rendered image in scan order
type PixelWriter interface {
	WriteHeader(width, height int) error
	WritePixel(color core.Color) error
}

// Raytracer casts one camera ray per pixel and shades it with a gradient
type Raytracer struct {
	camera   *Camera
	gradient Gradient
	width    int
	height   int
}

// NewRaytracer creates a new raytracer
func NewRaytracer(image ImageConfig, camera *Camera, gradient Gradient) *Raytracer {
	return &Raytracer{
		camera:   camera,
		gradient: gradient,
		width:    image.Width,
		height:   image.Height(),
	}
}

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.height }

// Render streams the image to out, top row first and left to right within
// a row. Degenerate arithmetic (NaN, Inf) is passed through to out; only
// write errors stop the loop.
func (rt *Raytracer) Render(out PixelWriter) (RenderStats, error) {
	stats := RenderStats{Width: rt.width, Height: rt.height}
	startTime := time.Now()

	if err := out.WriteHeader(rt.width, rt.height); err != nil {
		stats.Duration = time.Since(startTime)
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	// Row 0 is the bottom of the viewport, so scan from the top down
	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			u := float64(i) / float64(rt.width-1)
			v := float64(j) / float64(rt.height-1)

			ray := rt.camera.GetRay(u, v)
			if err := out.WritePixel(rt.gradient.Color(ray)); err != nil {
				stats.Duration = time.Since(startTime)
				return stats, fmt.Errorf("failed to write pixel (%d, %d): %w", i, j, err)
			}
			stats.TotalPixels++
		}
	}

	stats.Duration = time.Since(startTime)
	return stats, nil
}
