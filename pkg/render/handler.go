package render

import (
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/registry"
)

// Handler is the formatting logic for one node kind. A handler either
// emits text to the sink and deals with its own children (Handled), or
// defers child recursion back to the dispatcher (ContinueInto). The two
// never overlap: the driver only descends into children the handler
// returned, so no subtree is rendered twice.
type Handler interface {
	// Kind returns the node kind this handler formats.
	Kind() string

	// Description returns a human-readable description of the handler's output.
	Description() string

	// Render formats the node. The state is owned by the caller's scope;
	// handlers take a Copy when their children need different context.
	Render(st *State, n *doctree.Node, sink Sink, opts Options) Result
}

// Result is the outcome of a handler invocation: either the node was fully
// handled, or the driver should continue into the returned children. The
// distinction is explicit so that an empty child list still means
// "continue", not "handled".
type Result struct {
	children []*doctree.Node
	cont     bool
}

// Handled reports that the handler fully dealt with the node and its subtree.
func Handled() Result {
	return Result{}
}

// ContinueInto asks the driver to recurse into the given children.
func ContinueInto(children []*doctree.Node) Result {
	return Result{children: children, cont: true}
}

// Continue reports whether the driver should recurse.
func (r Result) Continue() bool {
	return r.cont
}

// Children returns the nodes the driver should recurse into.
func (r Result) Children() []*doctree.Node {
	return r.children
}

var handlers = registry.New[Handler]()

// Register adds a handler for its node kind. Registration happens from
// init() functions of the handlers package; a duplicate kind is a
// programming error and panics.
func Register(h Handler) {
	registry.MustRegister(handlers, h.Kind(), h)
}

// Lookup resolves a node kind to its handler. An unknown kind yields a
// NOT_FOUND error, handled once at the dispatch site.
func Lookup(kind string) (Handler, error) {
	return handlers.Get(kind)
}

// Kinds returns all registered node kinds in sorted order.
func Kinds() []string {
	return handlers.List()
}
