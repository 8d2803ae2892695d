package renderer

import "github.com/df07/go-gradient-raytracer/pkg/core"

// Gradient shades a ray by blending two colors on its vertical direction
type Gradient struct {
	Bottom core.Color // Color for straight-down rays (t = 0)
	Top    core.Color // Color for straight-up rays (t = 1)
}

// DefaultGradient returns the white-to-sky-blue background
func DefaultGradient() Gradient {
	return Gradient{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for r. Only the direction's Y component
// after normalization matters.
func (g Gradient) Color(r core.Ray) core.Color {
	unitDirection := r.Direction.UnitVector()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Scale(1.0-t, g.Bottom).Add(core.Scale(t, g.Top))
}
