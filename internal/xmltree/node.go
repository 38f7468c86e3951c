// Package xmltree decodes XML documents into a generic, loosely typed tree.
//
// The tree follows the conventions of the report documents this tool
// consumes: the document root element is stripped, attributes are merged
// into their parent as additional keys, a repeated element becomes a list
// while a single occurrence stays a scalar or map. Callers must coerce
// singletons explicitly via AsList.
package xmltree

import (
	"encoding/json"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	// Scalar is a plain text value.
	Scalar Kind = iota
	// List is an ordered sequence of nodes produced by a repeated element.
	List
	// Map holds named children: child elements and merged attributes,
	// indistinguishable by position.
	Map
)

// Node is one vertex of the decoded tree. The zero value is an empty
// scalar. All read accessors are nil-safe so fixed-path navigation can be
// chained without intermediate checks.
type Node struct {
	kind   Kind
	text   string
	items  []*Node
	fields map[string]*Node
	keys   []string // field insertion order, kept for deterministic traversal
}

// NewScalar returns a scalar node holding the given text.
func NewScalar(text string) *Node {
	return &Node{kind: Scalar, text: text}
}

// NewMap returns an empty map node.
func NewMap() *Node {
	return &Node{kind: Map, fields: make(map[string]*Node)}
}

// NewList returns a list node over the given items.
func NewList(items ...*Node) *Node {
	return &Node{kind: List, items: items}
}

// Kind reports the variant of the node. A nil node reports Scalar.
func (n *Node) Kind() Kind {
	if n == nil {
		return Scalar
	}
	return n.kind
}

// Text returns the scalar value, or "" for nil and non-scalar nodes.
func (n *Node) Text() string {
	if n == nil || n.kind != Scalar {
		return ""
	}
	return n.text
}

// IsEmptyScalar reports whether the node is nil or a scalar holding "".
// Heuristic key searches treat such values as not found.
func (n *Node) IsEmptyScalar() bool {
	return n == nil || (n.kind == Scalar && n.text == "")
}

// Get returns the named child of a map node, or nil when the node is nil,
// not a map, or the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != Map {
		return nil
	}
	return n.fields[key]
}

// Has reports whether a map node carries the given key.
func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Keys returns the field names of a map node in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.kind != Map {
		return nil
	}
	return n.keys
}

// Items returns the elements of a list node.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != List {
		return nil
	}
	return n.items
}

// AsList coerces the node into a list: a list node yields its items, a nil
// node yields nil, and any other node yields a one-element list. This is
// the explicit singleton coercion required by the decoding convention.
func (n *Node) AsList() []*Node {
	if n == nil {
		return nil
	}
	if n.kind == List {
		return n.items
	}
	return []*Node{n}
}

// First returns the first item of a list node, or the node itself
// otherwise.
func (n *Node) First() *Node {
	if n == nil {
		return nil
	}
	if n.kind == List {
		if len(n.items) == 0 {
			return nil
		}
		return n.items[0]
	}
	return n
}

// Len returns the number of items or fields, or 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case List:
		return len(n.items)
	case Map:
		return len(n.fields)
	default:
		return 0
	}
}

// Set inserts a child under the given key of a map node. Inserting a key
// that already exists promotes the existing value to a list and appends,
// which is how repeated elements become sequences during decoding.
func (n *Node) Set(key string, child *Node) {
	if n == nil || n.kind != Map {
		return
	}
	existing, ok := n.fields[key]
	if !ok {
		n.fields[key] = child
		n.keys = append(n.keys, key)
		return
	}
	if existing.kind == List {
		existing.items = append(existing.items, child)
		return
	}
	n.fields[key] = NewList(existing, child)
}

// Append adds an item to a list node.
func (n *Node) Append(item *Node) {
	if n == nil || n.kind != List {
		return
	}
	n.items = append(n.items, item)
}

// MarshalJSON renders the node as the natural JSON shape: scalars as
// strings, lists as arrays, maps as objects. Retained raw subtrees in the
// normalized report serialize through this.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	switch n.kind {
	case Scalar:
		return json.Marshal(n.text)
	case List:
		return json.Marshal(n.items)
	default:
		return json.Marshal(n.fields)
	}
}
