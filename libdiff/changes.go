package libdiff

import (
	"fmt"

	"github.com/keenwrite/definitions/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is one differing field. From is nil for inserts and To is nil for
// deletes.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	return fmt.Sprintf("%s %s", c.Op, c.Path)
}

// Changes lists the fields that differ between from and to, depth first in
// the field order of from followed by fields only in to. Objects are
// compared field by field; a scalar replaced by an object, or the reverse,
// is a single Replace. Field order alone is not a change.
func Changes(from, to *ir.Node) []Change {
	return changes(nil, from, to, "$")
}

func changes(res []Change, from, to *ir.Node, path string) []Change {
	if from.Type != ir.ObjectType || to.Type != ir.ObjectType {
		if ir.Equal(from, to) {
			return res
		}
		return append(res, Change{Op: Replace, Path: path, From: from, To: to})
	}
	for _, kv := range from.KeyVals() {
		p := ir.FieldPath(path, kv.Key)
		other := to.Get(kv.Key)
		if other == nil {
			res = append(res, Change{Op: Delete, Path: p, From: kv.Val})
			continue
		}
		res = changes(res, kv.Val, other, p)
	}
	for _, kv := range to.KeyVals() {
		if from.Get(kv.Key) == nil {
			res = append(res, Change{Op: Insert, Path: ir.FieldPath(path, kv.Key), To: kv.Val})
		}
	}
	return res
}
