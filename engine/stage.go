package engine

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/glyphstream/core"
	"github.com/lixenwraith/glyphstream/terminal"
)

// placeholder substitutes empty or whitespace-only input
const placeholder = "No Input."

// Stage owns every character of an effect run: the characters decomposed
// from the input text, the blank fill characters covering the rest of the
// canvas, and any characters added at runtime. It resolves canvas sizing,
// answers grouped/sorted character queries, tracks visibility, and
// composites frames.
type Stage struct {
	cfg    Config
	Canvas core.Canvas

	rng    *core.Rand
	nextID int

	input []*EffectCharacter
	fill  []*EffectCharacter
	added []*EffectCharacter

	// byInputCoord maps every canvas cell to its input-or-fill character.
	// A wide glyph claims each cell it covers. Added characters are never
	// entered here so they can stack on occupied cells.
	byInputCoord map[core.Coord]*EffectCharacter

	visible map[*EffectCharacter]struct{}
}

// cell is one grapheme cluster of a processed input line
type cell struct {
	symbol string
	width  int
}

// NewStage decomposes input and builds the canvas. Empty or whitespace-only
// input is replaced with a placeholder rather than failing.
func NewStage(input string, cfg Config) *Stage {
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 1
	}
	if strings.TrimSpace(input) == "" {
		input = placeholder
	}
	input = strings.ReplaceAll(input, "\t", strings.Repeat(" ", cfg.TabWidth))

	width, height := cfg.CanvasWidth, cfg.CanvasHeight
	if cfg.IgnoreTerminalDimensions {
		width, height = inputBounds(input)
	} else if width == 0 || height == 0 {
		tw, th := terminal.DetectSize()
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}

	s := &Stage{
		cfg:          cfg,
		rng:          core.NewRand(cfg.Seed),
		byInputCoord: make(map[core.Coord]*EffectCharacter),
		visible:      make(map[*EffectCharacter]struct{}),
	}

	s.decompose(input, width)

	inputWidth, inputHeight := 1, 1
	for _, ch := range s.input {
		if right := ch.InputCoord.Column + ch.width - 1; right > inputWidth {
			inputWidth = right
		}
		if ch.InputCoord.Row > inputHeight {
			inputHeight = ch.InputCoord.Row
		}
	}
	if height < 1 {
		height = 1
	}
	if height > inputHeight {
		height = inputHeight
	}
	s.Canvas = core.NewCanvas(height, inputWidth)

	// Height clamping truncates long inputs by discarding characters that
	// landed outside the canvas
	kept := s.input[:0]
	for _, ch := range s.input {
		if ch.InputCoord.Row <= s.Canvas.Top && ch.InputCoord.Column <= s.Canvas.Right {
			kept = append(kept, ch)
		}
	}
	s.input = kept

	for _, ch := range s.input {
		for i := 0; i < ch.width; i++ {
			s.byInputCoord[core.Coord{Column: ch.InputCoord.Column + i, Row: ch.InputCoord.Row}] = ch
		}
	}
	s.makeFillCharacters()
	return s
}

// inputBounds returns the display width and line count of the raw input
func inputBounds(input string) (width, height int) {
	lines := strings.Split(input, "\n")
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines) + 1
}

// decompose splits input into positioned characters. Row 1 is the bottom
// line; spaces are not materialized, they are covered by fill characters.
func (s *Stage) decompose(input string, width int) {
	lines := splitCells(input)
	if s.cfg.WrapText {
		lines = wrapLines(lines, width)
	} else {
		for i, line := range lines {
			lines[i] = truncateLine(line, width)
		}
	}
	total := len(lines)
	for row, line := range lines {
		column := 1
		for _, c := range line {
			if strings.TrimSpace(c.symbol) != "" {
				ch := s.newCharacter(c.symbol, core.Coord{Column: column, Row: total - row}, c.width)
				s.input = append(s.input, ch)
			}
			column += c.width
		}
	}
}

// splitCells breaks each input line into grapheme clusters with display
// widths. Zero-width clusters are dropped.
func splitCells(input string) [][]cell {
	rawLines := strings.Split(input, "\n")
	lines := make([][]cell, 0, len(rawLines))
	for _, raw := range rawLines {
		var line []cell
		gr := uniseg.NewGraphemes(raw)
		for gr.Next() {
			symbol := gr.Str()
			w := runewidth.StringWidth(symbol)
			if w < 1 {
				continue
			}
			line = append(line, cell{symbol: symbol, width: w})
		}
		lines = append(lines, line)
	}
	return lines
}

// wrapLines hard-wraps lines wider than width by display width
func wrapLines(lines [][]cell, width int) [][]cell {
	if width < 1 {
		return lines
	}
	var wrapped [][]cell
	for _, line := range lines {
		current := make([]cell, 0, len(line))
		used := 0
		for _, c := range line {
			if used+c.width > width && used > 0 {
				wrapped = append(wrapped, current)
				current = nil
				used = 0
			}
			current = append(current, c)
			used += c.width
		}
		wrapped = append(wrapped, current)
	}
	return wrapped
}

// truncateLine cuts a line to width by display width
func truncateLine(line []cell, width int) []cell {
	if width < 1 {
		return line
	}
	used := 0
	for i, c := range line {
		if used+c.width > width {
			return line[:i]
		}
		used += c.width
	}
	return line
}

// newCharacter allocates a character with a fresh identity
func (s *Stage) newCharacter(symbol string, coord core.Coord, width int) *EffectCharacter {
	ch := &EffectCharacter{
		ID:           s.nextID,
		Symbol:       symbol,
		InputSymbol:  symbol,
		InputCoord:   coord,
		CurrentCoord: coord,
		width:        width,
	}
	s.nextID++
	return ch
}

// makeFillCharacters synthesizes a space character for every canvas cell
// not claimed by an input character, completing the coordinate map
func (s *Stage) makeFillCharacters() {
	for row := 1; row <= s.Canvas.Top; row++ {
		for column := 1; column <= s.Canvas.Right; column++ {
			coord := core.Coord{Column: column, Row: row}
			if _, ok := s.byInputCoord[coord]; ok {
				continue
			}
			ch := s.newCharacter(" ", coord, 1)
			s.fill = append(s.fill, ch)
			s.byInputCoord[coord] = ch
		}
	}
}

// AddCharacter creates a character outside the input data, for decorative
// use by effects. Added characters do not enter the coordinate map, so they
// may overlap input and fill characters freely.
func (s *Stage) AddCharacter(symbol string, coord core.Coord) *EffectCharacter {
	w := runewidth.StringWidth(symbol)
	if w < 1 {
		w = 1
	}
	ch := s.newCharacter(symbol, coord, w)
	s.added = append(s.added, ch)
	return ch
}

// CharacterAt returns the input-or-fill character mapped to coord.
// Added characters are not part of the map.
func (s *Stage) CharacterAt(coord core.Coord) (*EffectCharacter, bool) {
	ch, ok := s.byInputCoord[coord]
	return ch, ok
}

// SetVisible adds or removes a character from the visible set
func (s *Stage) SetVisible(ch *EffectCharacter, visible bool) {
	ch.IsVisible = visible
	if visible {
		s.visible[ch] = struct{}{}
	} else {
		delete(s.visible, ch)
	}
}

// VisibleCount returns the number of currently visible characters
func (s *Stage) VisibleCount() int {
	return len(s.visible)
}

// Config returns the configuration the stage was built with
func (s *Stage) Config() Config {
	return s.cfg
}

// Rand returns the stage RNG, shared with effects for reproducible runs
func (s *Stage) Rand() *core.Rand {
	return s.rng
}
