package engine

import (
	"slices"
	"strings"
)

// Frame composites the visible characters into a row-major string, top row
// first. Visible characters draw in ascending layer order with creation
// order breaking ties, so on a shared cell the highest layer wins and
// within a layer the most recently created character wins. Characters whose
// current coordinate falls outside the canvas are skipped, not errors; they
// are simply not drawn this frame.
func (s *Stage) Frame() string {
	top, right := s.Canvas.Top, s.Canvas.Right

	grid := make([][]*EffectCharacter, top)
	for i := range grid {
		grid[i] = make([]*EffectCharacter, right)
	}

	drawn := make([]*EffectCharacter, 0, len(s.visible))
	for ch := range s.visible {
		drawn = append(drawn, ch)
	}
	slices.SortFunc(drawn, func(a, b *EffectCharacter) int {
		if a.Layer != b.Layer {
			return a.Layer - b.Layer
		}
		return a.ID - b.ID
	})

	for _, ch := range drawn {
		row := ch.CurrentCoord.Row - 1
		column := ch.CurrentCoord.Column - 1
		if row < 0 || row >= top || column < 0 || column >= right {
			continue
		}
		grid[row][column] = ch
	}

	var b strings.Builder
	b.Grow(top * (right + 1))
	for row := top - 1; row >= 0; row-- {
		column := 0
		for column < right {
			ch := grid[row][column]
			if ch == nil {
				b.WriteByte(' ')
				column++
				continue
			}
			b.WriteString(ch.Symbol)
			// a wide glyph covers the following cell
			w := ch.width
			if w < 1 {
				w = 1
			}
			column += w
		}
		if row > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
