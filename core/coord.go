package core

// Coord is a cell position on the canvas. Columns and rows are 1-indexed
// with rows increasing upward; (1,1) is the bottom-left cell.
type Coord struct {
	Column int
	Row    int
}

// ManhattanDistance returns the taxicab distance between two coordinates
func ManhattanDistance(a, b Coord) int {
	dc := a.Column - b.Column
	if dc < 0 {
		dc = -dc
	}
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}
