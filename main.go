package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/glyphstream/effects"
	"github.com/lixenwraith/glyphstream/engine"
	"github.com/lixenwraith/glyphstream/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "glyphstream:", err)
		os.Exit(1)
	}
}

func run() error {
	input, err := terminal.PipedInput()
	if err != nil {
		return err
	}
	stage := engine.NewStage(input, engine.DefaultConfig())

	name := "expand"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	var effect effects.Effect
	switch name {
	case "expand":
		effect = effects.NewExpand(stage)
	case "randomsequence":
		effect = effects.NewRandomSequence(stage)
	case "sweep":
		effect = effects.NewSweep(stage)
	default:
		return fmt.Errorf("unknown effect %q (available: expand, randomsequence, sweep)", name)
	}

	w := terminal.NewWriter(os.Stdout, stage.Canvas.Top, stage.Config().FrameRate)
	if err := w.Begin(); err != nil {
		return err
	}
	runErr := effect.Run(w)
	// always restore the cursor, even after a failed print
	if endErr := w.End("\n"); runErr == nil {
		runErr = endErr
	}
	return runErr
}
