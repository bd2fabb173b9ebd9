package adapt

import (
	"fmt"

	"github.com/keenwrite/definitions/debug"
	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/ir"
	"github.com/keenwrite/definitions/parse"
)

// Adapt builds a definition tree from doc under a root labelled rootLabel.
// doc is only read.
func Adapt(doc *ir.Node, rootLabel string) (*defn.Node, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("cannot adapt document root: %w", ir.ErrNotObject)
	}
	root := defn.NewRoot(rootLabel)
	root.Expanded = true
	adaptFields(doc, root)
	if debug.Adapt() {
		debug.Logf("adapted %d top level definitions under %q\n", root.Len(), rootLabel)
	}
	return root, nil
}

func adaptFields(obj *ir.Node, item *defn.Node) {
	for i, f := range obj.Fields {
		item.Add(adaptField(f.String, obj.Values[i]))
	}
}

func adaptField(key string, v *ir.Node) *defn.Node {
	res := defn.New(key)
	if v.Type == ir.ObjectType {
		adaptFields(v, res)
		return res
	}
	return res.Add(defn.New(v.String))
}

// Load parses the document at path and adapts it. Parse and i/o failures
// are returned as is.
func Load(path, rootLabel string, opts ...parse.ParseOption) (*defn.Node, error) {
	doc, err := parse.ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return Adapt(doc, rootLabel)
}
