package board

import (
	"io"

	"github.com/mkeane/daft2trello/internal/trello"
)

// Writer defines the interface for board snapshot output.
// Implementations render the board in various formats.
//
// Design decision: We use an interface so the board command can write
// to stdout or a file in either format with the same call site.
type Writer interface {
	// Write renders the board to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(b *trello.Board) (int, error)
}

// baseWriter holds the output destination shared by all writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
