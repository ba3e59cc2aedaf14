package terminal

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// Writer prints successive full-canvas frames in place, pacing emission to
// a target frame rate. It reserves the canvas region below the cursor at
// Begin, then redraws it from the saved position on every Print, which
// keeps the run in the scrollback instead of an alternate screen.
type Writer struct {
	w         *bufio.Writer
	canvasTop int

	frameDelay time.Duration
	lastPrint  time.Time
}

// NewWriter wraps out for frame output. canvasTop is the canvas height in
// rows; frameRate is the target frames per second, 0 disables pacing.
func NewWriter(out io.Writer, canvasTop, frameRate int) *Writer {
	var delay time.Duration
	if frameRate > 0 {
		delay = time.Second / time.Duration(frameRate)
	}
	if canvasTop < 1 {
		canvasTop = 1
	}
	return &Writer{
		w:          bufio.NewWriterSize(out, 1<<17),
		canvasTop:  canvasTop,
		frameDelay: delay,
	}
}

// Begin hides the cursor, reserves vertical space for the canvas, and
// saves the cursor position the frames will redraw from
func (w *Writer) Begin() error {
	w.w.Write(csiCursorHide)
	for i := 0; i < w.canvasTop; i++ {
		w.w.WriteByte('\n')
	}
	w.w.Write(decSaveCursor)
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("terminal: begin: %w", err)
	}
	w.lastPrint = time.Now()
	return nil
}

// End restores cursor visibility and writes the trailer (a bare newline
// when empty). Safe to call after a failed Print.
func (w *Writer) End(trailer string) error {
	w.w.Write(csiCursorShow)
	if trailer == "" {
		trailer = "\n"
	}
	w.w.WriteString(trailer)
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("terminal: end: %w", err)
	}
	return nil
}

// Print redraws the canvas region with frame. When enforceRate is set it
// first blocks until the frame interval has elapsed since the previous
// print; a late frame is emitted immediately, never skipped.
func (w *Writer) Print(frame string, enforceRate bool) error {
	if enforceRate && w.frameDelay > 0 {
		if !w.lastPrint.IsZero() {
			if elapsed := time.Since(w.lastPrint); elapsed < w.frameDelay {
				time.Sleep(w.frameDelay - elapsed)
			}
		}
		w.lastPrint = time.Now()
	}
	w.w.Write(decRestoreCursor)
	writeCursorUp(w.w, w.canvasTop)
	w.w.WriteString(frame)
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("terminal: print: %w", err)
	}
	return nil
}
