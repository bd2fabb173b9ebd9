package defn

import (
	"errors"
	"fmt"
	"strings"
)

type Shape int

const (
	Leaf Shape = iota
	ScalarHolder
	Container
)

func (s Shape) String() string {
	switch s {
	case Leaf:
		return "leaf"
	case ScalarHolder:
		return "scalar-holder"
	case Container:
		return "container"
	default:
		return fmt.Sprintf("<shape %d>", int(s))
	}
}

// Shape classifies n. A node with exactly one child that is a leaf is a
// scalar holder; any other node with children, and any root, is a
// container.
func (n *Node) Shape() Shape {
	switch {
	case n.root:
		return Container
	case len(n.children) == 1 && n.children[0].IsLeaf():
		return ScalarHolder
	case len(n.children) == 0:
		return Leaf
	default:
		return Container
	}
}

// Value returns the scalar held by a scalar holder.
func (n *Node) Value() (string, bool) {
	if n.Shape() != ScalarHolder {
		return "", false
	}
	return n.children[0].Label, true
}

var ErrShape = errors.New("shape violation")

// ShapeError locates a node that has a leaf child alongside other children.
type ShapeError struct {
	Path   []string
	Leaves []string
	Len    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %q has %d children, leaves %q", ErrShape, strings.Join(e.Path, "."), e.Len, e.Leaves)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// Validate checks that every node below n with a leaf child has exactly one
// child. Trees built from documents always pass; edited trees may not.
func (n *Node) Validate() []*ShapeError {
	var res []*ShapeError
	n.Walk(func(x *Node) bool {
		if len(x.children) < 2 || x.root {
			return true
		}
		var leaves []string
		for _, c := range x.children {
			if c.IsLeaf() {
				leaves = append(leaves, c.Label)
			}
		}
		if len(leaves) != 0 {
			res = append(res, &ShapeError{Path: x.Path(), Leaves: leaves, Len: len(x.children)})
		}
		return true
	})
	return res
}

// Walk visits n and its descendants depth first, parents before children.
// Returning false from fn skips the children of the node just visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// String renders the subtree as an indented outline.
func (n *Node) String() string {
	b := &strings.Builder{}
	n.Walk(func(x *Node) bool {
		b.WriteString(strings.Repeat("  ", x.Depth()-n.Depth()))
		b.WriteString(x.Label)
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
