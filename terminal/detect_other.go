//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// DetectSize returns the terminal dimensions of stdout. Falls back to the
// environment, then to 80x24, when the device cannot be queried.
func DetectSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return envSize()
}
