package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubContainer defers child recursion back to the driver.
type stubContainer struct{}

func (stubContainer) Kind() string        { return "stub_container" }
func (stubContainer) Description() string { return "test container" }
func (stubContainer) Render(st *State, n *doctree.Node, sink Sink, opts Options) Result {
	return ContinueInto(n.Children())
}

// stubLeaf emits its kind name and handles itself fully.
type stubLeaf struct{}

func (stubLeaf) Kind() string        { return "stub_leaf" }
func (stubLeaf) Description() string { return "test leaf" }
func (stubLeaf) Render(st *State, n *doctree.Node, sink Sink, opts Options) Result {
	sink.AppendLine("leaf")
	return Handled()
}

func init() {
	Register(stubContainer{})
	Register(stubLeaf{})
}

func parseTree(t *testing.T, xml string) *doctree.Tree {
	t.Helper()
	tree, err := doctree.Parse(strings.NewReader(xml))
	require.NoError(t, err)
	return tree
}

func captureDiagnostics(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	t.Cleanup(func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(origLevel)
	})
	return &buf
}

func TestDispatch_ContinuesIntoChildren(t *testing.T) {
	tree := parseTree(t, "<stub_container><stub_leaf/><stub_leaf/></stub_container>")

	sink := &BufferSink{}
	Dispatch(NewState(), tree.Root, sink, DefaultOptions())

	assert.Equal(t, "leaf\nleaf\n", sink.String())
}

func TestDispatch_UnknownKindSkipsAndContinues(t *testing.T) {
	buf := captureDiagnostics(t)
	tree := parseTree(t, "<stub_container><mystery><stub_leaf/></mystery><stub_leaf/></stub_container>")

	sink := &BufferSink{}
	Dispatch(NewState(), tree.Root, sink, DefaultOptions())

	// The unknown node and its subtree emit nothing, the later sibling runs
	assert.Equal(t, "leaf\n", sink.String())

	// Exactly one diagnostic record for the unknown kind
	diags := strings.TrimSpace(buf.String())
	lines := strings.Split(diags, "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"kind":"mystery"`)
}

func TestDispatch_Deterministic(t *testing.T) {
	tree := parseTree(t, "<stub_container><stub_leaf/><stub_leaf/><stub_leaf/></stub_container>")

	first := &BufferSink{}
	Dispatch(NewState(), tree.Root, first, DefaultOptions())

	second := &BufferSink{}
	Dispatch(NewState(), tree.Root, second, DefaultOptions())

	assert.Equal(t, first.String(), second.String())
}

func TestResult_EmptyContinueIsNotHandled(t *testing.T) {
	assert.True(t, ContinueInto(nil).Continue())
	assert.False(t, Handled().Continue())
}

func TestKinds_IncludesRegisteredHandlers(t *testing.T) {
	kinds := Kinds()
	assert.Contains(t, kinds, "stub_container")
	assert.Contains(t, kinds, "stub_leaf")
}

func TestLookup_UnknownKind(t *testing.T) {
	_, err := Lookup("never_registered")
	assert.Error(t, err)
}
