package terminal

import (
	"os"
	"strconv"
)

// Fallback dimensions when the terminal size cannot be determined
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// envSize reads COLUMNS/LINES, falling back to the defaults. Detection
// failure is never fatal.
func envSize() (width, height int) {
	width, height = DefaultWidth, DefaultHeight
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		height = v
	}
	return width, height
}
