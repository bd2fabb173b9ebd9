package adapt

import (
	"fmt"

	"github.com/keenwrite/definitions/debug"
	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/ir"
)

type Policy int

const (
	// PreserveCollisions lets the last write to a key win and reports the
	// overwritten values.
	PreserveCollisions Policy = iota
	// RejectCollisions fails the export when any value would be lost.
	RejectCollisions
)

type exportOpts struct {
	policy  Policy
	encOpts []encode.EncodeOption
}

type ExportOption func(*exportOpts)

func WithPolicy(p Policy) ExportOption {
	return func(o *exportOpts) { o.policy = p }
}

// ExportFormat sets the format Save writes, overriding the destination's
// extension.
func ExportFormat(f format.Format) ExportOption {
	return func(o *exportOpts) {
		o.encOpts = append(o.encOpts, encode.EncodeFormat(f))
	}
}

func ExportIndent(n int) ExportOption {
	return func(o *exportOpts) {
		o.encOpts = append(o.encOpts, encode.EncodeIndent(n))
	}
}

type exporter struct {
	ambiguities []Ambiguity
}

// Export builds a document from tree. For a root, only its children are
// exported; any other node is exported as the single field it forms.
//
// Values overwritten because of the tree's shape are returned as
// ambiguities. Under RejectCollisions a non-empty result also fails the
// export, with an error wrapping ErrStructuralAmbiguity and the first
// Ambiguity.
func Export(tree *defn.Node, opts ...ExportOption) (*ir.Node, []Ambiguity, error) {
	o := &exportOpts{}
	for _, opt := range opts {
		opt(o)
	}
	x := &exporter{}
	doc := ir.NewObject()
	if tree.IsRoot() {
		for _, child := range tree.Children() {
			x.export(child, doc)
		}
	} else {
		x.export(tree, doc)
	}
	if debug.Export() {
		for i := range x.ambiguities {
			debug.Logf("export: %s\n", &x.ambiguities[i])
		}
	}
	if len(x.ambiguities) != 0 && o.policy == RejectCollisions {
		return nil, x.ambiguities, fmt.Errorf("export of %q rejected: %w", tree.Label, &x.ambiguities[0])
	}
	return doc, x.ambiguities, nil
}

func (x *exporter) export(item *defn.Node, node *ir.Node) {
	children := item.Children()
	if !(len(children) == 1 && children[0].IsLeaf()) {
		node = x.put(node, item.Label, ir.NewObject(), item, DuplicateKey)
	}
	for _, child := range children {
		if child.IsLeaf() {
			kind := LeafCollision
			if len(children) == 1 {
				kind = DuplicateKey
			}
			x.put(node, item.Label, ir.FromString(child.Label), child, kind)
			continue
		}
		x.export(child, node)
	}
}

func (x *exporter) put(node *ir.Node, key string, v *ir.Node, from *defn.Node, kind AmbiguityKind) *ir.Node {
	if prev := node.Get(key); prev != nil {
		x.ambiguities = append(x.ambiguities, Ambiguity{
			Kind: kind,
			Path: node.Path(),
			Key:  key,
			Lost: describe(prev),
			Kept: describeKept(v),
			Tree: from.Path(),
		})
	}
	node.Set(key, v)
	return v
}

func describeKept(v *ir.Node) string {
	if v.Type == ir.ObjectType {
		return "an object"
	}
	return describe(v)
}

func describe(v *ir.Node) string {
	if v.Type == ir.ObjectType {
		return fmt.Sprintf("object with %d fields", v.Len())
	}
	return fmt.Sprintf("%q", v.String)
}

// Save exports a snapshot of tree and writes it to path, replacing its
// contents.
func Save(tree *defn.Node, path string, opts ...ExportOption) ([]Ambiguity, error) {
	o := &exportOpts{}
	for _, opt := range opts {
		opt(o)
	}
	doc, ambiguities, err := Export(tree.Clone(), opts...)
	if err != nil {
		return ambiguities, err
	}
	if err := encode.WriteFile(path, doc, o.encOpts...); err != nil {
		return ambiguities, err
	}
	return ambiguities, nil
}
