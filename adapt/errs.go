package adapt

import (
	"errors"
	"fmt"
)

var ErrStructuralAmbiguity = errors.New("structural ambiguity")

type AmbiguityKind int

const (
	// LeafCollision: several leaf children of one node were written under
	// that node's label.
	LeafCollision AmbiguityKind = iota
	// DuplicateKey: sibling key nodes share a label.
	DuplicateKey
)

func (k AmbiguityKind) String() string {
	switch k {
	case LeafCollision:
		return "leaf collision"
	case DuplicateKey:
		return "duplicate key"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Ambiguity describes a value that an export overwrote.
type Ambiguity struct {
	Kind AmbiguityKind
	// Path locates the object written to, as in ir.Node.Path.
	Path string
	Key  string
	Lost string
	Kept string
	// Tree is the label path of the tree node whose write replaced Lost.
	Tree []string
}

func (a *Ambiguity) Error() string {
	return fmt.Sprintf("%s: %s at %s key %q: %s replaced by %s", ErrStructuralAmbiguity, a.Kind, a.Path, a.Key, a.Lost, a.Kept)
}

func (a *Ambiguity) Unwrap() error { return ErrStructuralAmbiguity }
