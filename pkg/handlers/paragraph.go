package handlers

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// ParagraphHandler renders running text. The trailing separation depends on
// the mode: block paragraphs end with a blank line, list-item paragraphs
// with a single break, footnote paragraphs with none, and paragraphs inside
// a note become blockquote lines.
type ParagraphHandler struct{}

// Kind returns the node kind this handler formats.
func (ParagraphHandler) Kind() string {
	return "paragraph"
}

// Description returns a human-readable description of the handler's output.
func (ParagraphHandler) Description() string {
	return "Running text with mode-dependent separation"
}

// Render emits the paragraph's inline content.
func (ParagraphHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	switch st.Mode {
	case render.ModeBody, render.ModeSection:
		renderInline(st, n, sink, opts)
		sink.Append("\n\n")

	case render.ModeBulletListItem:
		renderInline(st, n, sink, opts)
		sink.Append("\n")

	case render.ModeNote:
		for _, chunk := range n.Content() {
			if chunk.IsText() {
				sink.AppendLine("> " + chunk.Text)
				sink.AppendLine("")
			}
		}

	case render.ModeFootnote:
		renderInline(st, n, sink, opts)
	}

	return render.Handled()
}

func init() {
	render.Register(ParagraphHandler{})
}
