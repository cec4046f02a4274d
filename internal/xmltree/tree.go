// =============================================================================
// sepagen - Ordered XML Tree Builder
// =============================================================================
//
// This package builds XML documents as an explicit node tree and serializes
// them with the exact parent-before-children, siblings-in-insertion-order
// sequence the tree was built in. Schema validators for regulatory wire
// formats are order-sensitive, so encoding/xml struct marshaling (which fixes
// the order at type-definition time) is deliberately not used; emission is
// hand-rolled the same way the document is assembled.
//
// Nodes are addressed by handles (indices into the tree's node slice), which
// lets an assembler create a block, keep the handle, and attach children to
// it later without exposing mutable node pointers.
//
// =============================================================================

package xmltree

import (
	"bytes"
	"fmt"
)

// NodeID is a handle to a node in a Tree.
type NodeID int

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

type node struct {
	name     string
	text     string
	attrs    []Attr
	children []NodeID
}

// Tree is a mutable XML document under construction. The zero value is not
// usable; create trees with New.
type Tree struct {
	nodes []node
}

// New creates a tree whose root element has the given name.
func New(rootName string) *Tree {
	return &Tree{nodes: []node{{name: rootName}}}
}

// Root returns the handle of the root element.
func (t *Tree) Root() NodeID {
	return 0
}

// Child appends a new element under parent and returns its handle. When text
// is non-empty the element carries it as character data. Siblings keep the
// order in which they were appended.
func (t *Tree) Child(parent NodeID, name, text string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{name: name, text: text})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// SetAttr adds an attribute to an existing node. Attributes are emitted in
// the order they were set.
func (t *Tree) SetAttr(id NodeID, name, value string) {
	t.nodes[id].attrs = append(t.nodes[id].attrs, Attr{Name: name, Value: value})
}

// Bytes serializes the tree as a UTF-8 XML document, including the XML
// declaration, indented with the given string per nesting level.
func (t *Tree) Bytes(indent string) []byte {
	var buffer bytes.Buffer
	buffer.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	t.writeNode(&buffer, t.Root(), indent, 0)
	return buffer.Bytes()
}

// writeNode writes one node and its subtree to the buffer.
func (t *Tree) writeNode(buffer *bytes.Buffer, id NodeID, indent string, level int) {
	n := t.nodes[id]

	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(n.name)
	for _, attr := range n.attrs {
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name, escape(attr.Value)))
	}

	if len(n.children) == 0 && n.text == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if len(n.children) == 0 {
		buffer.WriteString(escape(n.text))
	} else {
		buffer.WriteString("\n")
		for _, child := range n.children {
			t.writeNode(buffer, child, indent, level+1)
		}
		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(n.name)
	buffer.WriteString(">\n")
}

// escape escapes the five special characters for XML content and attributes.
func escape(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}
