package effects

import (
	"github.com/lixenwraith/glyphstream/animation"
	"github.com/lixenwraith/glyphstream/engine"
	"github.com/lixenwraith/glyphstream/terminal"
)

// sequenceStops is the default reveal ramp, violet to white
var sequenceStops = []terminal.RGB{
	{R: 0x8a, G: 0x00, B: 0x8a},
	{R: 0x00, G: 0xd1, B: 0xff},
	{R: 0xff, G: 0xff, B: 0xff},
}

// RandomSequence reveals the characters one by one in random order, tinted
// by a horizontal gradient across the canvas
type RandomSequence struct {
	stage *engine.Stage

	// PerTick is the number of characters revealed each frame
	PerTick int
}

// NewRandomSequence creates the effect for stage
func NewRandomSequence(stage *engine.Stage) *RandomSequence {
	return &RandomSequence{stage: stage, PerTick: 1}
}

// Run plays the effect to completion
func (e *RandomSequence) Run(w *terminal.Writer) error {
	perTick := e.PerTick
	if perTick < 1 {
		perTick = 1
	}
	noColor := e.stage.Config().NoColor
	gradient := animation.NewGradient(sequenceStops, 12)
	right := e.stage.Canvas.Right

	chars := e.stage.Characters(engine.Selection{Input: true}, engine.SortRandom)
	for len(chars) > 0 {
		n := perTick
		if n > len(chars) {
			n = len(chars)
		}
		for _, ch := range chars[:n] {
			if !noColor {
				idx := (ch.InputCoord.Column - 1) * gradient.Len() / right
				ch.Symbol = terminal.FormatFg(ch.InputSymbol, gradient.At(idx))
			}
			e.stage.SetVisible(ch, true)
		}
		chars = chars[n:]
		if err := w.Print(e.stage.Frame(), true); err != nil {
			return err
		}
	}
	return nil
}
