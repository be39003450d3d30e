package handlers

import (
	"testing"

	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestParagraph_BodyAndSectionModes(t *testing.T) {
	tests := []struct {
		name string
		st   *render.State
	}{
		{"body", bodyState()},
		{"section", sectionState(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderXML(t, "<paragraph>plain text</paragraph>", tt.st, render.DefaultOptions())
			assert.Equal(t, "plain text\n\n", out)
		})
	}
}

func TestParagraph_InlineMarkupStaysInOrder(t *testing.T) {
	xml := "<paragraph>see <strong>bold</strong> and <emphasis>slanted</emphasis> words</paragraph>"

	out := renderXML(t, xml, bodyState(), render.DefaultOptions())

	assert.Equal(t, "see  **bold**  and  *slanted*  words\n\n", out)
}

func TestParagraph_BulletListItemMode(t *testing.T) {
	st := &render.State{Mode: render.ModeBulletListItem}

	out := renderXML(t, "<paragraph>item text</paragraph>", st, render.DefaultOptions())

	assert.Equal(t, "item text\n", out)
}

func TestParagraph_NoteModeBecomesBlockquote(t *testing.T) {
	st := &render.State{Mode: render.ModeNote}

	out := renderXML(t, "<paragraph>be careful</paragraph>", st, render.DefaultOptions())

	assert.Equal(t, "> be careful\n\n", out)
}

func TestParagraph_FootnoteModeHasNoTrailingBreak(t *testing.T) {
	st := &render.State{Mode: render.ModeFootnote}

	out := renderXML(t, "<paragraph>the note body</paragraph>", st, render.DefaultOptions())

	assert.Equal(t, "the note body", out)
}

func TestParagraph_HeaderModeEmitsNothing(t *testing.T) {
	st := &render.State{Mode: render.ModeHeader}

	out := renderXML(t, "<paragraph>early text</paragraph>", st, render.DefaultOptions())

	assert.Empty(t, out)
}
