package handlers

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// renderInline emits a node's mixed content in order: character data
// verbatim, element children through the dispatcher with the same state so
// nested markup stays inline.
func renderInline(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) {
	for _, chunk := range n.Content() {
		if chunk.IsText() {
			sink.Append(chunk.Text)
			continue
		}
		render.Dispatch(st, chunk.Node, sink, opts)
	}
}

// dispatchChildren runs every element child through the dispatcher with the
// given state.
func dispatchChildren(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) {
	for _, child := range n.Children() {
		render.Dispatch(st, child, sink, opts)
	}
}
