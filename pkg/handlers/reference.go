package handlers

import (
	"fmt"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// ReferenceHandler renders hyperlinks. Target resolution, in priority
// order: an explicit URI wins, then an internal id paired with a target
// name, then the id alone (linking to the slug of the reference text).
type ReferenceHandler struct{}

// Kind returns the node kind this handler formats.
func (ReferenceHandler) Kind() string {
	return "reference"
}

// Description returns a human-readable description of the handler's output.
func (ReferenceHandler) Description() string {
	return "External and internal hyperlinks"
}

// Render emits the resolved link for the current mode.
func (ReferenceHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	link := resolveLink(n)

	switch st.Mode {
	case render.ModeBulletListItem:
		for _, child := range n.Children() {
			render.Dispatch(st, child, sink, opts)
		}
		sink.Append(" " + link + " ")
		sink.Append("\n")

	case render.ModeBody, render.ModeSection:
		sink.Append(" " + link + " ")

	case render.ModeFootnote:
		sink.Append(" " + link + " ")
		sink.Append("\n")
	}

	return render.Handled()
}

func resolveLink(n *doctree.Node) string {
	text := n.Text()

	if n.HasAttr("refuri") {
		uri := n.Attr("refuri")
		label := text
		if label == "" {
			label = uri
		}
		return fmt.Sprintf("[%s](%s)", label, uri)
	}

	if n.HasAttr("refid") && n.HasAttr("name") {
		return fmt.Sprintf("[%s](#%s)", text, render.Slug(n.Attr("name")))
	}

	return fmt.Sprintf("[%s](#%s)", text, render.Slug(text))
}

// TargetHandler swallows hyperlink target nodes; anchors come from the
// titles and labels themselves, so targets produce no output.
type TargetHandler struct{}

// Kind returns the node kind this handler formats.
func (TargetHandler) Kind() string {
	return "target"
}

// Description returns a human-readable description of the handler's output.
func (TargetHandler) Description() string {
	return "Hyperlink target, no output"
}

// Render emits nothing.
func (TargetHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	return render.Handled()
}

func init() {
	render.Register(ReferenceHandler{})
	render.Register(TargetHandler{})
}
