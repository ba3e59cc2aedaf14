package core

// Canvas is the bounded grid the effect draws into. Bounds are inclusive;
// Bottom and Left are always 1. Immutable after construction.
type Canvas struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewCanvas creates a canvas with the given top row and right column.
// Degenerate dimensions clamp to a minimum of 1x1.
func NewCanvas(top, right int) Canvas {
	if top < 1 {
		top = 1
	}
	if right < 1 {
		right = 1
	}
	return Canvas{Top: top, Right: right, Bottom: 1, Left: 1}
}

// Width returns the number of columns
func (c Canvas) Width() int {
	return c.Right - c.Left + 1
}

// Height returns the number of rows
func (c Canvas) Height() int {
	return c.Top - c.Bottom + 1
}

// Center returns the center cell, floored, never below (1,1)
func (c Canvas) Center() Coord {
	col := c.Right / 2
	if col < 1 {
		col = 1
	}
	row := c.Top / 2
	if row < 1 {
		row = 1
	}
	return Coord{Column: col, Row: row}
}

// Contains reports whether coord lies within the canvas bounds
func (c Canvas) Contains(coord Coord) bool {
	return c.Left <= coord.Column && coord.Column <= c.Right &&
		c.Bottom <= coord.Row && coord.Row <= c.Top
}

// RandomColumn returns a column in [1, Right]
func (c Canvas) RandomColumn(rng *Rand) int {
	return rng.IntRange(1, c.Right)
}

// RandomRow returns a row in [1, Top]
func (c Canvas) RandomRow(rng *Rand) int {
	return rng.IntRange(1, c.Top)
}

// RandomCoord returns a uniform random cell inside the canvas
func (c Canvas) RandomCoord(rng *Rand) Coord {
	return Coord{Column: c.RandomColumn(rng), Row: c.RandomRow(rng)}
}

// RandomCoordOutside returns a cell guaranteed to be outside the canvas.
// One of the four bands hugging the edges is chosen uniformly, paired with
// a random position along the perpendicular axis. Effects use this to
// animate characters entering from off-screen.
func (c Canvas) RandomCoordOutside(rng *Rand) Coord {
	switch rng.Intn(4) {
	case 0: // one row above the top edge
		return Coord{Column: c.RandomColumn(rng), Row: c.Top + 1}
	case 1: // below the bottom edge
		return Coord{Column: c.RandomColumn(rng), Row: -1}
	case 2: // left of the left edge
		return Coord{Column: -1, Row: c.RandomRow(rng)}
	default: // right of the right edge
		return Coord{Column: c.Right + 1, Row: c.RandomRow(rng)}
	}
}
