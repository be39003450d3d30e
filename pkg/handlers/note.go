package handlers

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// NoteHandler opens a note scope. Paragraphs below it render as Markdown
// blockquotes; the caller's state is untouched afterwards.
type NoteHandler struct{}

// Kind returns the node kind this handler formats.
func (NoteHandler) Kind() string {
	return "note"
}

// Description returns a human-readable description of the handler's output.
func (NoteHandler) Description() string {
	return "Note admonition rendered as a blockquote"
}

// Render dispatches the note's children in note mode.
func (NoteHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	sub := st.Copy()
	sub.Mode = render.ModeNote

	dispatchChildren(sub, n, sink, opts)

	return render.Handled()
}

func init() {
	render.Register(NoteHandler{})
}
