package handlers

import (
	"strings"
	"testing"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/stretchr/testify/require"
)

// renderXML parses a single-root fragment and dispatches it with the given
// state, returning everything the handlers emitted.
func renderXML(t *testing.T, xml string, st *render.State, opts render.Options) string {
	t.Helper()
	tree, err := doctree.Parse(strings.NewReader(xml))
	require.NoError(t, err)

	sink := &render.BufferSink{}
	render.Dispatch(st, tree.Root, sink, opts)
	return sink.String()
}

func bodyState() *render.State {
	return &render.State{Mode: render.ModeBody}
}

func sectionState(depth int) *render.State {
	return &render.State{Mode: render.ModeSection, Depth: depth}
}
