package handlers

import (
	"testing"

	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestDocInfo_HeaderMode(t *testing.T) {
	st := &render.State{Mode: render.ModeHeader}
	xml := "<docinfo><author>Jane Doe</author><date>2021-06-01</date></docinfo>"

	out := renderXML(t, xml, st, render.DefaultOptions())

	assert.Equal(t, "| author | Jane Doe |\n| date | 2021-06-01 |\n\n", out)
	assert.Equal(t, render.ModeBody, st.Mode, "docinfo moves the document into body mode")
}

func TestDocInfo_IgnoredOutsideHeaderMode(t *testing.T) {
	st := bodyState()

	out := renderXML(t, "<docinfo><author>Jane</author></docinfo>", st, render.DefaultOptions())

	assert.Empty(t, out)
	assert.Equal(t, render.ModeBody, st.Mode)
}
