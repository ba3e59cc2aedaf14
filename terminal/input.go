package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PipedInput reads all of stdin when it is not an interactive terminal.
// Returns an empty string, not an error, when stdin is a tty.
func PipedInput() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("terminal: read piped input: %w", err)
	}
	return string(data), nil
}
