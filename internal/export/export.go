// Package export defines the handoff contract between the generator and
// map-format writers. The binary game-format writer lives outside this
// repository; it consumes a Result through the Writer interface.
package export

import (
	"bufio"
	"io"

	"github.com/samdwyer/tunnelgen/internal/gen"
	"github.com/samdwyer/tunnelgen/internal/world"
)

// Writer consumes a finished generation result and produces an artifact.
// The generator core never performs file I/O itself; callers pick a Writer.
type Writer interface {
	Write(res *gen.Result) error
}

// TextWriter renders the composite grid as one rune per tile, row by row.
// It is the debugging/stdout form of the handoff contract.
type TextWriter struct {
	out io.Writer
}

var _ Writer = (*TextWriter)(nil)

// NewTextWriter creates a TextWriter targeting the given destination.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: out}
}

// Write dumps the result's grid to the destination.
func (w *TextWriter) Write(res *gen.Result) error {
	buf := bufio.NewWriter(w.out)
	for y := 0; y < res.Grid.Height; y++ {
		for x := 0; x < res.Grid.Width; x++ {
			if _, err := buf.WriteRune(res.Grid.At(world.Position{X: x, Y: y}).Rune()); err != nil {
				return err
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}
