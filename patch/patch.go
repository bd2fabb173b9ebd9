// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to definitions.
package patch

import (
	"errors"
	"fmt"

	"github.com/keenwrite/definitions/adapt"
	"github.com/keenwrite/definitions/debug"
	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/ir"
	"github.com/keenwrite/definitions/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch")

// Apply applies the JSON Patch ops to doc and returns the result. doc is not
// modified. Fields keep the order they had in doc; added fields follow.
func Apply(doc *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d operations to %s\n", len(p), doc.Path())
	}
	return apply(doc, p.Apply)
}

// Merge applies a JSON Merge Patch to doc. Keys set to null in the patch
// are removed.
func Merge(doc *ir.Node, mergePatch []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merging into %s\n", doc.Path())
	}
	return apply(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, mergePatch)
	})
}

func apply(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseFormat(format.JSONFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return ir.ReorderLike(res, doc), nil
}

// ApplyTree exports tree, applies ops and adapts the result under a root
// with the same label. Collisions in the export are reported as they are by
// adapt.Export.
func ApplyTree(tree *defn.Node, ops []byte, opts ...adapt.ExportOption) (*defn.Node, []adapt.Ambiguity, error) {
	return patchTree(tree, opts, func(doc *ir.Node) (*ir.Node, error) {
		return Apply(doc, ops)
	})
}

// MergeTree is ApplyTree for a JSON Merge Patch.
func MergeTree(tree *defn.Node, mergePatch []byte, opts ...adapt.ExportOption) (*defn.Node, []adapt.Ambiguity, error) {
	return patchTree(tree, opts, func(doc *ir.Node) (*ir.Node, error) {
		return Merge(doc, mergePatch)
	})
}

func patchTree(tree *defn.Node, opts []adapt.ExportOption, f func(*ir.Node) (*ir.Node, error)) (*defn.Node, []adapt.Ambiguity, error) {
	doc, amb, err := adapt.Export(tree, opts...)
	if err != nil {
		return nil, amb, err
	}
	res, err := f(doc)
	if err != nil {
		return nil, amb, err
	}
	out, err := adapt.Adapt(res, tree.Label)
	if err != nil {
		return nil, amb, err
	}
	return out, amb, nil
}
