package defn

import (
	"fmt"
	"strings"
)

// Ensure descends from n following labels like Find, appending a new child
// wherever a label is missing. It returns the last node.
func (n *Node) Ensure(labels ...string) *Node {
	res := n
	for i, l := range labels {
		next := res.Find(l)
		if next == nil {
			next = New(l)
			res.Add(next)
			for _, rest := range labels[i+1:] {
				c := New(rest)
				next.Add(c)
				next = c
			}
			return next
		}
		res = next
	}
	return res
}

// SetValue makes n hold value, adding a leaf when n has no children or
// relabelling the leaf of a scalar holder. Containers are left unchanged.
func (n *Node) SetValue(value string) error {
	switch n.Shape() {
	case Leaf:
		n.Add(New(value))
	case ScalarHolder:
		n.children[0].Label = value
	default:
		return fmt.Errorf("%w: %q is a container, cannot hold %q", ErrShape, strings.Join(n.Path(), "."), value)
	}
	return nil
}
