package engine

// Config controls stage construction. Build one with DefaultConfig, adjust
// fields, then pass to NewStage. The stage keeps a private copy; nothing
// reads the config after construction, so mid-run mutation has no effect.
type Config struct {
	// TabWidth is the number of spaces a tab expands to
	TabWidth int

	// WrapText hard-wraps input lines wider than the canvas instead of
	// truncating them
	WrapText bool

	// FrameRate is the target frames per second for paced output.
	// Zero disables pacing.
	FrameRate int

	// CanvasWidth and CanvasHeight bound the canvas. Zero means detect
	// from the terminal device.
	CanvasWidth  int
	CanvasHeight int

	// IgnoreTerminalDimensions sizes the canvas from the input text's
	// bounding box instead of the terminal device
	IgnoreTerminalDimensions bool

	// NoColor strips color formatting from animation output
	NoColor bool

	// Seed seeds the stage RNG. Zero selects a time-based seed.
	Seed uint64
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		TabWidth:  4,
		FrameRate: 100,
	}
}
