package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkeane/daft2trello/internal/trello"
)

// TextWriter outputs a human-readable board snapshot.
// This format is designed for terminal display: board header, then each
// list indented with its cards.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the board snapshot as indented plain text.
func (w *TextWriter) Write(b *trello.Board) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Id: %s\n", b.ID)
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)

	cardsByList := b.CardsByList()
	for _, list := range b.Lists {
		fmt.Fprintf(&sb, "    %s %s\n", list.ID, list.Name)
		for _, card := range cardsByList[list.ID] {
			fmt.Fprintf(&sb, "        %s %s\n", card.ID, card.Name)
		}
	}

	return io.WriteString(w.output, sb.String())
}
