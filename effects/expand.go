package effects

import (
	"github.com/lixenwraith/glyphstream/animation"
	"github.com/lixenwraith/glyphstream/engine"
	"github.com/lixenwraith/glyphstream/terminal"
)

// Expand moves every character from the canvas center out to its home
// position
type Expand struct {
	stage *engine.Stage

	// Speed is the travel speed in cells per tick
	Speed float64
}

// NewExpand creates the effect for stage
func NewExpand(stage *engine.Stage) *Expand {
	return &Expand{stage: stage, Speed: 0.5}
}

// Run plays the effect to completion
func (e *Expand) Run(w *terminal.Writer) error {
	center := e.stage.Canvas.Center()
	chars := e.stage.Characters(engine.Selection{Input: true}, engine.SortTopToBottomLeftToRight)

	active := make([]*animation.Motion, 0, len(chars))
	for _, ch := range chars {
		m := animation.NewMotion(ch)
		m.SetCoord(center)
		m.MoveTo(ch.InputCoord, e.Speed, animation.InOutQuart)
		e.stage.SetVisible(ch, true)
		active = append(active, m)
	}

	if err := w.Print(e.stage.Frame(), true); err != nil {
		return err
	}
	for len(active) > 0 {
		remaining := active[:0]
		for _, m := range active {
			m.Step()
			if !m.Complete() {
				remaining = append(remaining, m)
			}
		}
		active = remaining
		if err := w.Print(e.stage.Frame(), true); err != nil {
			return err
		}
	}
	return nil
}
