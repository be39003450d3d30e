package handlers

import (
	"testing"

	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestFootnote_RendersLabeledEntry(t *testing.T) {
	xml := "<section><footnote><label>1</label><paragraph>the note body</paragraph></footnote></section>"

	out := renderXML(t, xml, bodyState(), render.DefaultOptions())

	assert.Equal(t, "- <a name=\"footnote_1\">[1]</a> the note body", out)
}

func TestFootnote_OutsideSectionKeepsMode(t *testing.T) {
	st := bodyState()

	renderXML(t, "<footnote><label>1</label><paragraph>text</paragraph></footnote>", st, render.DefaultOptions())

	assert.Equal(t, render.ModeBody, st.Mode)
}

func TestFootnoteReference_EmitsAnchoredMarker(t *testing.T) {
	out := renderXML(t, "<footnote_reference>1</footnote_reference>", sectionState(1), render.DefaultOptions())

	assert.Equal(t, "[[1]](#footnote_1)", out)
}

func TestLabel_OnlyRendersInFootnoteMode(t *testing.T) {
	t.Run("footnote mode", func(t *testing.T) {
		st := &render.State{Mode: render.ModeFootnote}
		out := renderXML(t, "<label>2</label>", st, render.DefaultOptions())
		assert.Equal(t, "- <a name=\"footnote_2\">[2]</a> ", out)
	})

	t.Run("body mode", func(t *testing.T) {
		out := renderXML(t, "<label>2</label>", bodyState(), render.DefaultOptions())
		assert.Empty(t, out)
	})
}
