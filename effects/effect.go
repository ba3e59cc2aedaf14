// Package effects contains animation orchestrators. An effect prepares the
// stage's characters, steps their motion and scenes once per tick, and
// prints the composited frame until every character has settled.
package effects

import "github.com/lixenwraith/glyphstream/terminal"

// Effect runs one animation from start to completion
type Effect interface {
	Run(w *terminal.Writer) error
}
