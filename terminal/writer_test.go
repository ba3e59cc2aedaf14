package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriterSequences(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 3, 0)

	if err := w.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if got, want := buf.String(), "\x1b[?25l\n\n\n\x1b7"; got != want {
		t.Errorf("Expected begin sequence %q, got %q", want, got)
	}

	buf.Reset()
	if err := w.Print("ab\ncd\nef", false); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if got, want := buf.String(), "\x1b8\x1b[3Aab\ncd\nef"; got != want {
		t.Errorf("Expected print sequence %q, got %q", want, got)
	}

	buf.Reset()
	if err := w.End(""); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if got, want := buf.String(), "\x1b[?25h\n"; got != want {
		t.Errorf("Expected end sequence %q, got %q", want, got)
	}
}

func TestWriterEndCustomTrailer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 1, 0)
	if err := w.End("done\n"); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "done\n") {
		t.Errorf("Expected custom trailer, got %q", buf.String())
	}
}

func TestWriterEnforcesFrameRate(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 1, 10) // 100ms per frame

	if err := w.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := w.Print("a", true); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	start := time.Now()
	if err := w.Print("b", true); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	// scheduler tolerance: the sleep is computed from the previous print,
	// so allow a small margin below the nominal 100ms
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("Expected at least ~100ms between frames, got %v", elapsed)
	}
}

func TestWriterSkipsPacingWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 1, 10)

	if err := w.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	start := time.Now()
	for i := 0; i < 10; i++ {
		if err := w.Print("x", false); err != nil {
			t.Fatalf("Print failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Expected unpaced prints to be fast, took %v", elapsed)
	}
}

func TestFormatFg(t *testing.T) {
	got := FormatFg("X", RGB{R: 1, G: 2, B: 3})
	if got != "\x1b[38;2;1;2;3mX\x1b[0m" {
		t.Errorf("Expected truecolor sequence, got %q", got)
	}
}

func TestEnvSizeFallback(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	if w, h := envSize(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Expected %dx%d fallback, got %dx%d", DefaultWidth, DefaultHeight, w, h)
	}

	t.Setenv("COLUMNS", "120")
	t.Setenv("LINES", "40")
	if w, h := envSize(); w != 120 || h != 40 {
		t.Errorf("Expected 120x40 from environment, got %dx%d", w, h)
	}
}
