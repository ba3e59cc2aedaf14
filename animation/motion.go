package animation

import (
	"math"

	"github.com/lixenwraith/glyphstream/core"
	"github.com/lixenwraith/glyphstream/engine"
)

// Motion drives one character's current coordinate toward a waypoint, one
// step per tick, with optional easing. The character's coordinate may pass
// outside the canvas during transit; the compositor simply skips it there.
type Motion struct {
	char *engine.EffectCharacter

	originColumn float64
	originRow    float64
	target       core.Coord
	ease         EaseFunc

	step   int
	steps  int
	moving bool
}

// NewMotion creates a motion stepper for ch
func NewMotion(ch *engine.EffectCharacter) *Motion {
	return &Motion{char: ch}
}

// Character returns the character this motion drives
func (m *Motion) Character() *engine.EffectCharacter {
	return m.char
}

// SetCoord teleports the character, cancelling any active waypoint
func (m *Motion) SetCoord(c core.Coord) {
	m.char.CurrentCoord = c
	m.moving = false
}

// MoveTo starts movement from the current coordinate to dst. speed is in
// cells per tick; ease may be nil for linear progress.
func (m *Motion) MoveTo(dst core.Coord, speed float64, ease EaseFunc) {
	if ease == nil {
		ease = Linear
	}
	m.originColumn = float64(m.char.CurrentCoord.Column)
	m.originRow = float64(m.char.CurrentCoord.Row)
	m.target = dst
	m.ease = ease

	dc := float64(dst.Column) - m.originColumn
	dr := float64(dst.Row) - m.originRow
	distance := math.Hypot(dc, dr)
	if speed <= 0 {
		speed = 1
	}
	m.steps = int(math.Ceil(distance / speed))
	if m.steps < 1 {
		m.steps = 1
	}
	m.step = 0
	m.moving = true
}

// Step advances the character one tick along the active waypoint
func (m *Motion) Step() {
	if !m.moving {
		return
	}
	m.step++
	if m.step >= m.steps {
		m.char.CurrentCoord = m.target
		m.moving = false
		return
	}
	p := m.ease(float64(m.step) / float64(m.steps))
	dc := float64(m.target.Column) - m.originColumn
	dr := float64(m.target.Row) - m.originRow
	m.char.CurrentCoord = core.Coord{
		Column: int(math.Round(m.originColumn + p*dc)),
		Row:    int(math.Round(m.originRow + p*dr)),
	}
}

// Complete reports whether the character has reached its waypoint
func (m *Motion) Complete() bool {
	return !m.moving
}
