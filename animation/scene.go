package animation

import (
	"github.com/lixenwraith/glyphstream/engine"
	"github.com/lixenwraith/glyphstream/terminal"
)

// SceneFrame is one step of a scene: a symbol shown for Duration ticks,
// optionally colored
type SceneFrame struct {
	Symbol   string
	Color    terminal.RGB
	HasColor bool
	Duration int
}

// Scene plays a sequence of timed symbol/color frames on one character,
// rewriting its display symbol each tick
type Scene struct {
	char    *engine.EffectCharacter
	noColor bool

	frames []SceneFrame
	index  int
	ticks  int
}

// NewScene creates an empty scene for ch. noColor suppresses color
// formatting while keeping frame timing identical.
func NewScene(ch *engine.EffectCharacter, noColor bool) *Scene {
	return &Scene{char: ch, noColor: noColor}
}

// AddFrame appends a plain frame
func (s *Scene) AddFrame(symbol string, duration int) {
	if duration < 1 {
		duration = 1
	}
	s.frames = append(s.frames, SceneFrame{Symbol: symbol, Duration: duration})
}

// AddColorFrame appends a colored frame
func (s *Scene) AddColorFrame(symbol string, color terminal.RGB, duration int) {
	if duration < 1 {
		duration = 1
	}
	s.frames = append(s.frames, SceneFrame{Symbol: symbol, Color: color, HasColor: true, Duration: duration})
}

// ApplyGradient appends one colored frame per gradient color, each shown
// for duration ticks
func (s *Scene) ApplyGradient(g Gradient, symbol string, duration int) {
	for _, c := range g.Colors() {
		s.AddColorFrame(symbol, c, duration)
	}
}

// Step applies the current frame to the character and advances the clock
func (s *Scene) Step() {
	if s.index >= len(s.frames) {
		return
	}
	frame := s.frames[s.index]
	if frame.HasColor && !s.noColor {
		s.char.Symbol = terminal.FormatFg(frame.Symbol, frame.Color)
	} else {
		s.char.Symbol = frame.Symbol
	}
	s.ticks++
	if s.ticks >= frame.Duration {
		s.ticks = 0
		s.index++
	}
}

// Complete reports whether every frame has played out
func (s *Scene) Complete() bool {
	return s.index >= len(s.frames)
}

// Reset rewinds the scene to its first frame
func (s *Scene) Reset() {
	s.index = 0
	s.ticks = 0
}
