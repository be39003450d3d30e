package handlers

import (
	"testing"

	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestReference_URIInSectionMode(t *testing.T) {
	out := renderXML(t, `<reference refuri="http://x">X</reference>`, sectionState(1), render.DefaultOptions())

	assert.Equal(t, " [X](http://x) ", out)
}

func TestReference_URIWinsOverID(t *testing.T) {
	xml := `<reference refuri="http://example.com" refid="target" name="Target">label</reference>`

	out := renderXML(t, xml, bodyState(), render.DefaultOptions())

	assert.Equal(t, " [label](http://example.com) ", out)
}

func TestReference_URIWithoutTextUsesURIAsLabel(t *testing.T) {
	out := renderXML(t, `<reference refuri="http://example.com"/>`, bodyState(), render.DefaultOptions())

	assert.Equal(t, " [http://example.com](http://example.com) ", out)
}

func TestReference_IDWithNameSlugsTheName(t *testing.T) {
	xml := `<reference refid="intro" name="Intro Section">see intro</reference>`

	out := renderXML(t, xml, sectionState(1), render.DefaultOptions())

	assert.Equal(t, " [see intro](#intro-section) ", out)
}

func TestReference_IDAloneSlugsTheText(t *testing.T) {
	xml := `<reference refid="x">My Target</reference>`

	out := renderXML(t, xml, bodyState(), render.DefaultOptions())

	assert.Equal(t, " [My Target](#my-target) ", out)
}

func TestReference_BulletListItemModeAddsLineBreak(t *testing.T) {
	st := &render.State{Mode: render.ModeBulletListItem}

	out := renderXML(t, `<reference refuri="http://x">X</reference>`, st, render.DefaultOptions())

	assert.Equal(t, " [X](http://x) \n", out)
}

func TestReference_FootnoteModeAddsLineBreak(t *testing.T) {
	st := &render.State{Mode: render.ModeFootnote}

	out := renderXML(t, `<reference refuri="http://x">X</reference>`, st, render.DefaultOptions())

	assert.Equal(t, " [X](http://x) \n", out)
}

func TestReference_OtherModesEmitNothing(t *testing.T) {
	st := &render.State{Mode: render.ModeNote}

	out := renderXML(t, `<reference refuri="http://x">X</reference>`, st, render.DefaultOptions())

	assert.Empty(t, out)
}

func TestTarget_NoOutput(t *testing.T) {
	out := renderXML(t, `<target ids="x" names="x"/>`, bodyState(), render.DefaultOptions())

	assert.Empty(t, out)
}
