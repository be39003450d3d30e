package handlers

import (
	"fmt"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// FigureHandler renders a figure as a Markdown image, pulling the URI from
// the figure's image child and the alt text from its caption child.
type FigureHandler struct{}

// Kind returns the node kind this handler formats.
func (FigureHandler) Kind() string {
	return "figure"
}

// Description returns a human-readable description of the handler's output.
func (FigureHandler) Description() string {
	return "Captioned image"
}

// Render emits the image line, independent of mode.
func (FigureHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	var uri, caption string
	if img := n.ChildByKind("image"); img != nil {
		uri = img.Attr("uri")
	}
	if cap := n.ChildByKind("caption"); cap != nil {
		caption = cap.Text()
	}

	sink.AppendLine(fmt.Sprintf("![%s](%s)", caption, uri))
	sink.AppendLine("")

	return render.Handled()
}

// ImageHandler swallows bare image nodes. Figures read their image child
// directly, so a standalone image has nothing to add; registering the kind
// keeps it from tripping the unknown-kind diagnostic.
type ImageHandler struct{}

// Kind returns the node kind this handler formats.
func (ImageHandler) Kind() string {
	return "image"
}

// Description returns a human-readable description of the handler's output.
func (ImageHandler) Description() string {
	return "Bare image, consumed by its figure"
}

// Render emits nothing.
func (ImageHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	return render.Handled()
}

func init() {
	render.Register(FigureHandler{})
	render.Register(ImageHandler{})
}
