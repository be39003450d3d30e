// Package doctree provides a read-only query API over the parsed document
// tree. The input dialect is an XML document produced by an external parser
// of rich structured text (sections, titles, lists, notes, footnotes,
// references, figures, inline markup). Rendering code only ever sees Node
// values; the underlying XML library never leaks out of this package.
package doctree

import (
	"io"
	"strings"

	"github.com/arthur-debert/docmd/pkg/errors"
	"github.com/beevik/etree"
)

// Node is one element of the parsed input tree: a kind name, optional text,
// attributes, and ordered children.
type Node struct {
	el *etree.Element
}

// Chunk is one piece of a node's ordered mixed content: character data when
// Node is nil, otherwise a child element.
type Chunk struct {
	Text string
	Node *Node
}

// IsText reports whether the chunk is character data rather than an element.
func (c Chunk) IsText() bool {
	return c.Node == nil
}

// Tree holds a fully parsed document, resident in memory before traversal.
type Tree struct {
	Root *Node
}

// Load reads and parses the document at the given path.
func Load(path string) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentLoad, "could not read document %s", path)
	}
	return fromDocument(doc)
}

// Parse reads and parses a document from the given reader.
func Parse(r io.Reader) (*Tree, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentParse, "could not parse document")
	}
	return fromDocument(doc)
}

func fromDocument(doc *etree.Document) (*Tree, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDocumentEmpty, "document has no root element")
	}
	return &Tree{Root: wrap(root)}, nil
}

func wrap(el *etree.Element) *Node {
	return &Node{el: el}
}

// Kind returns the node's kind name.
func (n *Node) Kind() string {
	return n.el.Tag
}

// Attr returns the value of the named attribute, or the empty string when
// the attribute is absent.
func (n *Node) Attr(name string) string {
	return n.el.SelectAttrValue(name, "")
}

// HasAttr reports whether the named attribute is present on the node.
func (n *Node) HasAttr(name string) bool {
	return n.el.SelectAttr(name) != nil
}

// Text returns the concatenated character data of the node and all of its
// descendants, in document order.
func (n *Node) Text() string {
	var b strings.Builder
	collectText(n.el, &b)
	return b.String()
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			collectText(t, b)
		}
	}
}

// Children returns the node's direct element children in document order.
func (n *Node) Children() []*Node {
	els := n.el.ChildElements()
	children := make([]*Node, 0, len(els))
	for _, el := range els {
		children = append(children, wrap(el))
	}
	return children
}

// Content returns the node's ordered mixed content: verbatim character data
// interleaved with direct element children. Inline rendering walks this to
// keep nested markup in place.
func (n *Node) Content() []Chunk {
	var chunks []Chunk
	for _, tok := range n.el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			chunks = append(chunks, Chunk{Text: t.Data})
		case *etree.Element:
			chunks = append(chunks, Chunk{Node: wrap(t)})
		}
	}
	return chunks
}

// ChildByKind returns the first direct element child with the given kind,
// or nil when there is none.
func (n *Node) ChildByKind(kind string) *Node {
	for _, el := range n.el.ChildElements() {
		if el.Tag == kind {
			return wrap(el)
		}
	}
	return nil
}

// Descendants returns every element below the node in document order.
func (n *Node) Descendants() []*Node {
	var nodes []*Node
	collectDescendants(n.el, &nodes)
	return nodes
}

func collectDescendants(el *etree.Element, nodes *[]*Node) {
	for _, child := range el.ChildElements() {
		*nodes = append(*nodes, wrap(child))
		collectDescendants(child, nodes)
	}
}
