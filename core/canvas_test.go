package core

import "testing"

func TestNewCanvasClampsDegenerateBounds(t *testing.T) {
	tests := []struct {
		name       string
		top, right int
		wantTop    int
		wantRight  int
	}{
		{"Normal", 5, 10, 5, 10},
		{"Zero dimensions", 0, 0, 1, 1},
		{"Negative dimensions", -3, -7, 1, 1},
		{"Single cell", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.top, tt.right)
			if c.Top != tt.wantTop || c.Right != tt.wantRight {
				t.Errorf("Expected bounds (%d,%d), got (%d,%d)", tt.wantTop, tt.wantRight, c.Top, c.Right)
			}
			if c.Bottom != 1 || c.Left != 1 {
				t.Errorf("Expected bottom/left of 1, got %d/%d", c.Bottom, c.Left)
			}
		})
	}
}

func TestCanvasContains(t *testing.T) {
	c := NewCanvas(5, 5)
	for column := -1; column <= 7; column++ {
		for row := -1; row <= 7; row++ {
			want := column >= 1 && column <= 5 && row >= 1 && row <= 5
			got := c.Contains(Coord{Column: column, Row: row})
			if got != want {
				t.Errorf("Contains(%d,%d) = %v, want %v", column, row, got, want)
			}
		}
	}
}

func TestCanvasCenter(t *testing.T) {
	tests := []struct {
		name       string
		top, right int
		want       Coord
	}{
		{"Square", 5, 5, Coord{Column: 2, Row: 2}},
		{"Single cell", 1, 1, Coord{Column: 1, Row: 1}},
		{"Wide", 10, 20, Coord{Column: 10, Row: 5}},
		{"Tall", 24, 3, Coord{Column: 1, Row: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCanvas(tt.top, tt.right).Center(); got != tt.want {
				t.Errorf("Expected center %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRandomCoordInside(t *testing.T) {
	c := NewCanvas(7, 13)
	rng := NewRand(42)
	for i := 0; i < 1000; i++ {
		coord := c.RandomCoord(rng)
		if !c.Contains(coord) {
			t.Fatalf("RandomCoord returned %v outside canvas", coord)
		}
	}
}

func TestRandomCoordOutside(t *testing.T) {
	c := NewCanvas(7, 13)
	rng := NewRand(42)
	for i := 0; i < 1000; i++ {
		coord := c.RandomCoordOutside(rng)
		if c.Contains(coord) {
			t.Fatalf("RandomCoordOutside returned %v inside canvas", coord)
		}
	}
}

func TestRandomColumnRowRange(t *testing.T) {
	c := NewCanvas(4, 9)
	rng := NewRand(7)
	for i := 0; i < 500; i++ {
		if col := c.RandomColumn(rng); col < 1 || col > 9 {
			t.Fatalf("RandomColumn returned %d, want [1,9]", col)
		}
		if row := c.RandomRow(rng); row < 1 || row > 4 {
			t.Fatalf("RandomRow returned %d, want [1,4]", row)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want int
	}{
		{"Same point", Coord{1, 1}, Coord{1, 1}, 0},
		{"Horizontal", Coord{1, 1}, Coord{4, 1}, 3},
		{"Vertical", Coord{2, 5}, Coord{2, 1}, 4},
		{"Diagonal", Coord{1, 1}, Coord{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ManhattanDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected distance %d, got %d", tt.want, got)
			}
		})
	}
}
