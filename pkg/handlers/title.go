package handlers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// TitleHandler renders headings. What a title becomes depends entirely on
// where the traversal is: the document title gets a setext-style underline,
// a body title becomes a level-one heading, and section titles repeat the
// heading marker once per nesting level.
type TitleHandler struct{}

// Kind returns the node kind this handler formats.
func (TitleHandler) Kind() string {
	return "title"
}

// Description returns a human-readable description of the handler's output.
func (TitleHandler) Description() string {
	return "Document, topic and section headings"
}

// Render formats the title for the current mode.
func (TitleHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	switch st.Mode {
	case render.ModeTop:
		sink.AppendLine(n.Text())
		sink.AppendLine("---")
		st.Mode = render.ModeHeader

	case render.ModeBody:
		sink.AppendLine("")
		sink.AppendLine("# " + n.Text())
		sink.AppendLine("")

	case render.ModeSection:
		sink.Append(strings.Repeat("#", st.Depth) + " ")

		// Nested inline markup inside the heading renders inline, with the
		// same state as the heading itself.
		for _, child := range n.Children() {
			render.Dispatch(st, child, sink, opts)
		}

		text := n.Text()
		if opts.Anchors {
			sink.AppendLine(fmt.Sprintf("<a name=%q>%s</a>", render.Slug(text), text))
		} else {
			sink.AppendLine(text)
		}
		sink.AppendLine("")
	}

	return render.Handled()
}

func init() {
	render.Register(TitleHandler{})
}
