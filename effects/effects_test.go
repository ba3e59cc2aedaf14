package effects

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/glyphstream/engine"
	"github.com/lixenwraith/glyphstream/terminal"
)

func testStage(t *testing.T, input string) *engine.Stage {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.CanvasWidth = 20
	cfg.CanvasHeight = 20
	cfg.Seed = 1
	cfg.NoColor = true
	return engine.NewStage(input, cfg)
}

// unpacedWriter writes to buf without frame-rate delays so effect runs
// finish instantly under test
func unpacedWriter(buf *bytes.Buffer, stage *engine.Stage) *terminal.Writer {
	return terminal.NewWriter(buf, stage.Canvas.Top, 0)
}

func TestExpandSettlesEveryCharacterHome(t *testing.T) {
	stage := testStage(t, "AB\nCD")
	var buf bytes.Buffer
	w := unpacedWriter(&buf, stage)

	if err := NewExpand(stage).Run(w); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	chars := stage.Characters(engine.Selection{Input: true}, engine.SortTopToBottomLeftToRight)
	for _, ch := range chars {
		if !ch.IsVisible {
			t.Errorf("Expected %q visible after run", ch.InputSymbol)
		}
		if ch.CurrentCoord != ch.InputCoord {
			t.Errorf("Expected %q home at %v, got %v", ch.InputSymbol, ch.InputCoord, ch.CurrentCoord)
		}
	}
	if !strings.Contains(buf.String(), "AB\nCD") {
		t.Error("Expected final frame to show the settled input")
	}
}

func TestRandomSequenceRevealsEverything(t *testing.T) {
	stage := testStage(t, "HELLO\nWORLD")
	var buf bytes.Buffer
	w := unpacedWriter(&buf, stage)

	if err := NewRandomSequence(stage).Run(w); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	chars := stage.Characters(engine.Selection{Input: true}, engine.SortTopToBottomLeftToRight)
	if stage.VisibleCount() != len(chars) {
		t.Errorf("Expected all %d characters visible, got %d", len(chars), stage.VisibleCount())
	}
	// one reveal per frame means one frame per character
	frames := strings.Count(buf.String(), "\x1b8")
	if frames != len(chars) {
		t.Errorf("Expected %d frames, got %d", len(chars), frames)
	}
}

func TestSweepActivatesEveryColumn(t *testing.T) {
	stage := testStage(t, "ABC")
	var buf bytes.Buffer
	w := unpacedWriter(&buf, stage)

	if err := NewSweep(stage).Run(w); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	chars := stage.Characters(engine.Selection{Input: true}, engine.SortTopToBottomLeftToRight)
	for _, ch := range chars {
		if !ch.IsVisible {
			t.Errorf("Expected %q visible after sweep", ch.InputSymbol)
		}
		// NoColor keeps the settled symbol plain
		if ch.Symbol != ch.InputSymbol {
			t.Errorf("Expected %q to settle on its input symbol, got %q", ch.InputSymbol, ch.Symbol)
		}
	}
}
