package effects

import (
	"github.com/lixenwraith/glyphstream/animation"
	"github.com/lixenwraith/glyphstream/engine"
	"github.com/lixenwraith/glyphstream/terminal"
)

// sweepStops is the default rainbow ramp
var sweepStops = []terminal.RGB{
	{R: 0xe8, G: 0x14, B: 0x16},
	{R: 0xff, G: 0xa5, B: 0x00},
	{R: 0xfa, G: 0xeb, B: 0x36},
	{R: 0x79, G: 0xc3, B: 0x14},
	{R: 0x48, G: 0x7d, B: 0xe7},
	{R: 0x4b, G: 0x36, B: 0x9d},
	{R: 0x70, G: 0x36, B: 0x9d},
}

// Sweep lights the canvas up column by column, cycling each column's
// characters through a gradient before settling on its final color
type Sweep struct {
	stage *engine.Stage

	// Gap is the number of ticks between successive column activations
	Gap int
}

// NewSweep creates the effect for stage
func NewSweep(stage *engine.Stage) *Sweep {
	return &Sweep{stage: stage, Gap: 2}
}

// Run plays the effect to completion
func (e *Sweep) Run(w *terminal.Writer) error {
	gap := e.Gap
	if gap < 1 {
		gap = 1
	}
	noColor := e.stage.Config().NoColor
	gradient := animation.NewGradient(sweepStops, 4)

	groups := e.stage.CharactersGrouped(engine.GroupColumnLeftToRight, engine.Selection{Input: true})
	scenes := make([][]*animation.Scene, len(groups))
	for gi, group := range groups {
		for _, ch := range group {
			scene := animation.NewScene(ch, noColor)
			scene.ApplyGradient(gradient, ch.InputSymbol, 1)
			scenes[gi] = append(scenes[gi], scene)
		}
	}

	var active []*animation.Scene
	activated := 0
	for tick := 0; activated < len(groups) || len(active) > 0; tick++ {
		if activated < len(groups) && tick%gap == 0 {
			for _, ch := range groups[activated] {
				e.stage.SetVisible(ch, true)
			}
			active = append(active, scenes[activated]...)
			activated++
		}
		remaining := active[:0]
		for _, scene := range active {
			scene.Step()
			if !scene.Complete() {
				remaining = append(remaining, scene)
			}
		}
		active = remaining
		if err := w.Print(e.stage.Frame(), true); err != nil {
			return err
		}
	}
	return nil
}
