package handlers

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/logging"
	"github.com/arthur-debert/docmd/pkg/render"
)

// DocumentHandler is the root wrapper: it emits nothing itself and hands
// the whole child list to the driver.
type DocumentHandler struct{}

// Kind returns the node kind this handler formats.
func (DocumentHandler) Kind() string {
	return "document"
}

// Description returns a human-readable description of the handler's output.
func (DocumentHandler) Description() string {
	return "Document root, delegates to the driver"
}

// Render defers recursion to the driver.
func (DocumentHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	return render.ContinueInto(n.Children())
}

// SystemMessageHandler routes parser diagnostics to the log instead of the
// converted output.
type SystemMessageHandler struct{}

// Kind returns the node kind this handler formats.
func (SystemMessageHandler) Kind() string {
	return "system_message"
}

// Description returns a human-readable description of the handler's output.
func (SystemMessageHandler) Description() string {
	return "Parser diagnostic, logged and never emitted"
}

// Render logs each child's text; nothing reaches the sink.
func (SystemMessageHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	logger := logging.GetLogger("handlers.system_message")
	for _, child := range n.Children() {
		logger.Warn().
			Str("source", n.Attr("source")).
			Str("line", n.Attr("line")).
			Str("message", child.Text()).
			Msg("document parser diagnostic")
	}
	return render.Handled()
}

func init() {
	render.Register(DocumentHandler{})
	render.Register(SystemMessageHandler{})
}
