package handlers

import (
	"strings"

	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/render"
)

// BulletListHandler opens a list scope. A list starting under body or
// section text begins a fresh scope at depth one, independent of whatever
// depth a preceding sibling list ended on; a list inside a list item nests
// one level deeper. Only the outermost list emits the trailing blank line
// that closes the whole block.
type BulletListHandler struct{}

// Kind returns the node kind this handler formats.
func (BulletListHandler) Kind() string {
	return "bullet_list"
}

// Description returns a human-readable description of the handler's output.
func (BulletListHandler) Description() string {
	return "Bullet list scope driving item indentation"
}

// Render dispatches the list's items with a list-scoped state.
func (BulletListHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	var sub *render.State

	switch st.Mode {
	case render.ModeBody, render.ModeSection:
		sub = &render.State{Mode: render.ModeBulletList}
	case render.ModeBulletListItem:
		sub = st.Copy()
		sub.Mode = render.ModeBulletList
	default:
		return render.Handled()
	}

	sub.Right()
	dispatchChildren(sub, n, sink, opts)
	sub.Left()

	if sub.Depth == 0 {
		sink.AppendLine("")
	}

	return render.Handled()
}

// ListItemHandler renders one bullet: two spaces of indentation per nesting
// level, then the marker, then the item's content in item mode.
type ListItemHandler struct{}

// Kind returns the node kind this handler formats.
func (ListItemHandler) Kind() string {
	return "list_item"
}

// Description returns a human-readable description of the handler's output.
func (ListItemHandler) Description() string {
	return "Bullet list item with depth-based indentation"
}

// Render emits the bullet marker and dispatches the item's content.
func (ListItemHandler) Render(st *render.State, n *doctree.Node, sink render.Sink, opts render.Options) render.Result {
	if st.Mode != render.ModeBulletList {
		return render.Handled()
	}

	sink.Append(strings.Repeat("  ", st.Depth) + "* ")

	sub := st.Copy()
	sub.Mode = render.ModeBulletListItem
	dispatchChildren(sub, n, sink, opts)

	return render.Handled()
}

func init() {
	render.Register(BulletListHandler{})
	render.Register(ListItemHandler{})
}
