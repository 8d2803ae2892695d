package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/df07/go-gradient-raytracer/pkg/ppm"
	"github.com/df07/go-gradient-raytracer/pkg/renderer"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if _, err := render(os.Stdout); err != nil {
		log.Printf("Error rendering image: %v", err)
		os.Exit(1)
	}

	log.Println("Done.")
}

// render writes the fixed gradient scene to w as a plain PPM
func render(w io.Writer) (renderer.RenderStats, error) {
	camera := renderer.NewCamera(renderer.DefaultCameraConfig())
	raytracer := renderer.NewRaytracer(renderer.DefaultImageConfig(), camera, renderer.DefaultGradient())

	out := ppm.NewWriter(w)
	stats, err := raytracer.Render(out)
	if err != nil {
		return stats, err
	}
	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}
	return stats, nil
}
