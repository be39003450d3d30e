package handlers

import (
	"strings"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// lineNumberClass marks generated line-number children inside highlighted
// code blocks; their text must not leak into the fenced output.
const lineNumberClass = "ln"

// LiteralHandler renders inline code spans.
type LiteralHandler struct{}

// Kind returns the node kind this handler formats.
func (LiteralHandler) Kind() string {
	return "literal"
}

// Description returns a human-readable description of the handler's output.
func (LiteralHandler) Description() string {
	return "Inline code span"
}

// Render emits the backticked text with surrounding spaces.
func (LiteralHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	sink.Append(" `" + n.Text() + "` ")
	return render.Handled()
}

// LiteralBlockHandler renders code blocks as fenced Markdown. The fence is
// annotated with the last token of the block's classes attribute, which is
// where the highlighting language ends up.
type LiteralBlockHandler struct{}

// Kind returns the node kind this handler formats.
func (LiteralBlockHandler) Kind() string {
	return "literal_block"
}

// Description returns a human-readable description of the handler's output.
func (LiteralBlockHandler) Description() string {
	return "Fenced code block with language annotation"
}

// Render emits the fenced block, skipping line-number children.
func (LiteralBlockHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	lang := ""
	if classes := n.Attr("classes"); classes != "" {
		fields := strings.Fields(classes)
		lang = fields[len(fields)-1]
	}

	sink.AppendLine("```" + lang)

	for _, chunk := range n.Content() {
		if chunk.IsText() {
			sink.Append(chunk.Text)
			continue
		}
		if chunk.Node.Attr("classes") == lineNumberClass {
			continue
		}
		sink.Append(chunk.Node.Text())
	}

	sink.AppendLine("")
	sink.AppendLine("```")
	sink.AppendLine("")

	return render.Handled()
}

func init() {
	render.Register(LiteralHandler{})
	render.Register(LiteralBlockHandler{})
}
