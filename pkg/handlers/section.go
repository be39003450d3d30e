package handlers

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// SectionHandler opens a nested section scope: one level deeper, section
// mode. Children render with a copy of the state, so the caller's mode and
// depth are untouched once the section is done.
type SectionHandler struct{}

// Kind returns the node kind this handler formats.
func (SectionHandler) Kind() string {
	return "section"
}

// Description returns a human-readable description of the handler's output.
func (SectionHandler) Description() string {
	return "Nested section scope driving heading levels"
}

// Render dispatches the section's children one level deeper.
func (SectionHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	sub := st.Copy()
	sub.Mode = render.ModeSection
	sub.Right()

	dispatchChildren(sub, n, sink, opts)

	return render.Handled()
}

func init() {
	render.Register(SectionHandler{})
}
