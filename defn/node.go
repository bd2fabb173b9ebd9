package defn

import (
	"slices"
	"strings"
)

type Node struct {
	Label string
	// Expanded is a display hint for tree widgets.
	Expanded bool

	root     bool
	parent   *Node
	children []*Node
}

func New(label string) *Node {
	return &Node{Label: label}
}

// NewRoot creates the synthetic top-level node of a tree.
func NewRoot(label string) *Node {
	return &Node{Label: label, root: true}
}

func (n *Node) IsRoot() bool {
	return n.root
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in order. The slice must not be
// modified; use Add, Insert and Remove.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Len() int {
	return len(n.children)
}

func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Index returns the position of n among its parent's children, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

func (n *Node) SetLabel(label string) *Node {
	n.Label = label
	return n
}

// Add appends children, detaching each from any previous parent.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		n.Insert(len(n.children), c)
	}
	return n
}

// Insert places child at position i, clamped to the valid range.
func (n *Node) Insert(i int, child *Node) *Node {
	if child == nil || child == n || child.isAncestorOf(n) {
		return n
	}
	if child.parent == n {
		if j := child.Index(); j < i {
			i--
		}
	}
	child.Detach()
	i = max(0, min(i, len(n.children)))
	n.children = slices.Insert(n.children, i, child)
	child.parent = n
	return n
}

func (n *Node) isAncestorOf(o *Node) bool {
	for p := o.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Remove detaches child from n, reporting whether it was a child of n.
func (n *Node) Remove(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	child.Detach()
	return true
}

// Detach removes n from its parent.
func (n *Node) Detach() *Node {
	p := n.parent
	if p == nil {
		return n
	}
	if i := slices.Index(p.children, n); i != -1 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
	return n
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Depth counts the edges between n and the top of its tree.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the labels from the top of the tree down to n, leaving out a
// synthetic root.
func (n *Node) Path() []string {
	var res []string
	for x := n; x != nil; x = x.parent {
		if x.root {
			continue
		}
		res = append(res, x.Label)
	}
	slices.Reverse(res)
	return res
}

// Key joins Path with sep.
func (n *Node) Key(sep string) string {
	return strings.Join(n.Path(), sep)
}

// Find descends from n following labels, taking the first child with each
// label.
func (n *Node) Find(labels ...string) *Node {
	res := n
	for _, l := range labels {
		var next *Node
		for _, c := range res.children {
			if c.Label == l {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		res = next
	}
	return res
}

// Clone copies the subtree rooted at n. The copy has no parent.
func (n *Node) Clone() *Node {
	res := &Node{Label: n.Label, Expanded: n.Expanded, root: n.root}
	if len(n.children) != 0 {
		res.children = make([]*Node, len(n.children))
	}
	for i, c := range n.children {
		cc := c.Clone()
		cc.parent = res
		res.children[i] = cc
	}
	return res
}

// Equal compares labels, root markers and structure.
func Equal(a, b *Node) bool {
	if a.Label != b.Label || a.root != b.root || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
