package board

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/mkeane/daft2trello/internal/trello"
)

// MarkdownWriter outputs a board snapshot in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation instead of string concatenation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the board snapshot as Markdown: board name as the top
// heading, a summary table, then one section per list with its cards as
// a bullet list.
func (w *MarkdownWriter) Write(b *trello.Board) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(b.Name)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Board ID", "`" + b.ID + "`"},
			{"Lists", strconv.Itoa(len(b.Lists))},
			{"Cards", strconv.Itoa(len(b.Cards))},
		},
	})
	md.PlainText("")

	cardsByList := b.CardsByList()
	for _, list := range b.Lists {
		md.H2(list.Name)

		cards := cardsByList[list.ID]
		if len(cards) == 0 {
			md.PlainText("_No cards._")
			md.PlainText("")
			continue
		}

		names := make([]string, 0, len(cards))
		for _, card := range cards {
			names = append(names, card.Name)
		}
		md.BulletList(names...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}
