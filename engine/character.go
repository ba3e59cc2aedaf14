package engine

import "github.com/lixenwraith/glyphstream/core"

// EffectCharacter is a single glyph unit on the stage. The stage hands out
// stable pointers; every collection (input/fill/added lists, visible set,
// group views) shares the same instances, so a mutation made through one
// view is seen by all of them.
//
// Symbol, CurrentCoord, Layer and IsVisible are the animation surface:
// an external stepper advances them once per tick. ID, InputSymbol,
// InputCoord and the display width are fixed at creation.
type EffectCharacter struct {
	// ID is a monotonic identity assigned at creation. Draw-order ties
	// within a layer resolve by ascending ID (creation order).
	ID int

	// Symbol is the glyph currently displayed. Effects may substitute
	// alternate glyphs or wrap the symbol in ANSI color formatting.
	Symbol string

	// InputSymbol is the glyph as decomposed from the input text
	InputSymbol string

	// InputCoord is the character's home position in the input text
	InputCoord core.Coord

	// CurrentCoord is the position used when compositing a frame.
	// May lie outside the canvas while the character is in transit.
	CurrentCoord core.Coord

	// Layer is the draw priority. Higher layers overwrite lower ones
	// at the same cell.
	Layer int

	// IsVisible mirrors membership in the stage's visible set. Toggle
	// through Stage.SetVisible, not directly.
	IsVisible bool

	// width is the terminal display width of InputSymbol in cells
	width int
}

// Width returns the display width of the character in terminal cells.
// Wide glyphs (CJK, some emoji) occupy two cells.
func (c *EffectCharacter) Width() int {
	return c.width
}
