package handlers

import (
	"strings"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// StrongHandler renders bold emphasis.
type StrongHandler struct{}

// Kind returns the node kind this handler formats.
func (StrongHandler) Kind() string {
	return "strong"
}

// Description returns a human-readable description of the handler's output.
func (StrongHandler) Description() string {
	return "Bold inline emphasis"
}

// Render emits the bold span with surrounding spaces.
func (StrongHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	sink.Append(" **" + n.Text() + "** ")
	return render.Handled()
}

// EmphasisHandler renders italic emphasis.
type EmphasisHandler struct{}

// Kind returns the node kind this handler formats.
func (EmphasisHandler) Kind() string {
	return "emphasis"
}

// Description returns a human-readable description of the handler's output.
func (EmphasisHandler) Description() string {
	return "Italic inline emphasis"
}

// Render emits the italic span with surrounding spaces.
func (EmphasisHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	sink.Append(" *" + n.Text() + "* ")
	return render.Handled()
}

// GeneratedHandler renders parser-generated text such as section numbers,
// with internal spaces stripped. Inside a section heading the number gets
// a dot separator so "2.1" reads as "2.1. Heading".
type GeneratedHandler struct{}

// Kind returns the node kind this handler formats.
func (GeneratedHandler) Kind() string {
	return "generated"
}

// Description returns a human-readable description of the handler's output.
func (GeneratedHandler) Description() string {
	return "Generated text such as section numbers"
}

// Render emits the space-stripped text.
func (GeneratedHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	text := strings.ReplaceAll(n.Text(), " ", "")
	if st.Mode == render.ModeSection {
		sink.Append(text + ". ")
	} else {
		sink.Append(text)
	}
	return render.Handled()
}

func init() {
	render.Register(StrongHandler{})
	render.Register(EmphasisHandler{})
	render.Register(GeneratedHandler{})
}
