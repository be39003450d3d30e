package handlers

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// TopicHandler unwraps topic containers (abstracts, dedications) by
// rendering their children in place with the current state.
type TopicHandler struct{}

// Kind returns the node kind this handler formats.
func (TopicHandler) Kind() string {
	return "topic"
}

// Description returns a human-readable description of the handler's output.
func (TopicHandler) Description() string {
	return "Topic container, rendered in place"
}

// Render dispatches the topic's children with the current state.
func (TopicHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	if st.Mode == render.ModeBody {
		dispatchChildren(st, n, sink, opts)
	}
	return render.Handled()
}

func init() {
	render.Register(TopicHandler{})
}
