package handlers

import (
	"fmt"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// FootnoteHandler switches a section into footnote mode and hands its
// children back to the driver; the label and paragraph handlers do the
// actual formatting.
type FootnoteHandler struct{}

// Kind returns the node kind this handler formats.
func (FootnoteHandler) Kind() string {
	return "footnote"
}

// Description returns a human-readable description of the handler's output.
func (FootnoteHandler) Description() string {
	return "Footnote body, rendered as a labeled list entry"
}

// Render switches to footnote mode and defers recursion to the driver.
func (FootnoteHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	if st.Mode == render.ModeSection {
		st.Mode = render.ModeFootnote
	}
	return render.ContinueInto(n.Children())
}

// FootnoteReferenceHandler renders the in-text marker pointing at a
// footnote's anchor.
type FootnoteReferenceHandler struct{}

// Kind returns the node kind this handler formats.
func (FootnoteReferenceHandler) Kind() string {
	return "footnote_reference"
}

// Description returns a human-readable description of the handler's output.
func (FootnoteReferenceHandler) Description() string {
	return "In-text footnote marker"
}

// Render emits the bracketed marker linked to the footnote anchor.
func (FootnoteReferenceHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	label := n.Text()
	sink.Append(fmt.Sprintf("[[%s]](#footnote_%s)", label, label))
	return render.Handled()
}

// LabelHandler renders a footnote's label as the anchored bullet that
// starts the footnote entry.
type LabelHandler struct{}

// Kind returns the node kind this handler formats.
func (LabelHandler) Kind() string {
	return "label"
}

// Description returns a human-readable description of the handler's output.
func (LabelHandler) Description() string {
	return "Footnote label with its anchor"
}

// Render emits the anchored label when inside a footnote.
func (LabelHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	if st.Mode == render.ModeFootnote {
		label := n.Text()
		sink.Append(fmt.Sprintf("- <a name=\"footnote_%s\">[%s]</a> ", label, label))
	}
	return render.Handled()
}

func init() {
	render.Register(FootnoteHandler{})
	render.Register(FootnoteReferenceHandler{})
	render.Register(LabelHandler{})
}
