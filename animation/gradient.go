package animation

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glyphstream/terminal"
)

// Gradient is a precomputed color ramp between ordered stops. Blending
// happens in Lab space so the ramp stays perceptually even.
type Gradient struct {
	colors []terminal.RGB
}

// NewGradient builds a ramp with steps intermediate colors between each
// pair of consecutive stops. A single stop yields a one-color gradient.
func NewGradient(stops []terminal.RGB, steps int) Gradient {
	if len(stops) == 0 {
		return Gradient{colors: []terminal.RGB{{R: 255, G: 255, B: 255}}}
	}
	if steps < 1 {
		steps = 1
	}
	colors := []terminal.RGB{stops[0]}
	for i := 1; i < len(stops); i++ {
		from := toColorful(stops[i-1])
		to := toColorful(stops[i])
		for step := 1; step <= steps; step++ {
			t := float64(step) / float64(steps)
			colors = append(colors, fromColorful(from.BlendLab(to, t).Clamped()))
		}
	}
	return Gradient{colors: colors}
}

// Colors returns the full ramp in order
func (g Gradient) Colors() []terminal.RGB {
	return g.colors
}

// At returns the ramp color for index i, clamping at the ends
func (g Gradient) At(i int) terminal.RGB {
	if i < 0 {
		i = 0
	}
	if i >= len(g.colors) {
		i = len(g.colors) - 1
	}
	return g.colors[i]
}

// Len returns the number of colors in the ramp
func (g Gradient) Len() int {
	return len(g.colors)
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}
