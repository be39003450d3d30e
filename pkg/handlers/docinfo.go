package handlers

import (
	"fmt"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// DocInfoHandler renders the document's bibliographic field list (author,
// date, version and friends) as a two-column table, one row per field. It
// only fires in header mode, right after the document title, and moves the
// traversal into body mode.
type DocInfoHandler struct{}

// Kind returns the node kind this handler formats.
func (DocInfoHandler) Kind() string {
	return "docinfo"
}

// Description returns a human-readable description of the handler's output.
func (DocInfoHandler) Description() string {
	return "Bibliographic fields as a two-column table"
}

// Render emits one table row per bibliographic child.
func (DocInfoHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	if st.Mode != render.ModeHeader {
		return render.Handled()
	}

	for _, child := range n.Children() {
		sink.AppendLine(fmt.Sprintf("| %s | %s |", child.Kind(), child.Text()))
	}
	// Terminate the table block so following body content starts fresh
	sink.AppendLine("")

	st.Mode = render.ModeBody
	return render.Handled()
}

func init() {
	render.Register(DocInfoHandler{})
}
