// Package render holds the core of the converter: the dispatch driven,
// state-machine based transformation of a document tree into Markdown
// text. The traversal is single-threaded, synchronous and recursive; the
// whole tree is in memory before it starts and output is appended
// incrementally as handlers fire.
package render

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/logging"
)

// Dispatch resolves the node's kind to a handler, invokes it, and recurses
// into the children of a ContinueInto result with the same sink and
// options. An unrecognized kind is the single modeled error of the
// traversal: it is reported to the diagnostic channel, the node is treated
// as handled with no output, and its later siblings continue normally.
func Dispatch(st *State, n *doctree.Node, sink Sink, opts Options) {
	h, err := Lookup(n.Kind())
	if err != nil {
		logger := logging.GetLogger("render.dispatch")
		logger.Warn().
			Str("kind", n.Kind()).
			Str("mode", st.Mode.String()).
			Msg("no handler registered for node kind, skipping")
		return
	}

	res := h.Render(st, n, sink, opts)
	if !res.Continue() {
		return
	}
	for _, child := range res.Children() {
		Dispatch(st, child, sink, opts)
	}
}

// Render converts a whole parsed tree, starting from the root in top mode
// at depth zero.
func Render(tree *doctree.Tree, sink Sink, opts Options) {
	Dispatch(NewState(), tree.Root, sink, opts)
}
