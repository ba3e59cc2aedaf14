//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// DetectSize returns the terminal dimensions of stdout. Falls back to the
// environment, then to 80x24, when the device cannot be queried.
func DetectSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row)
	}
	return envSize()
}
