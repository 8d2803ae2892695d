package renderer

import (
	"github.com/df07/go-gradient-raytracer/pkg/core"
)

// CameraConfig contains the fixed pinhole camera parameters
type CameraConfig struct {
	Origin         core.Point3 // Camera position
	AspectRatio    float64     // Viewport width / height
	ViewportHeight float64     // Viewport height in world units
	FocalLength    float64     // Distance from origin to the viewport plane along -Z
}

// DefaultCameraConfig returns the 16:9 camera at the world origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera derives the viewport geometry once from config
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1.
// The direction is left unnormalized.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

func (c *Camera) Origin() core.Point3          { return c.origin }
func (c *Camera) Horizontal() core.Vec3        { return c.horizontal }
func (c *Camera) Vertical() core.Vec3          { return c.vertical }
func (c *Camera) LowerLeftCorner() core.Point3 { return c.lowerLeftCorner }
func (c *Camera) ViewportWidth() float64       { return c.horizontal.X }
