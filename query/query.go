// Package query selects values from a document with JSONPath.
package query

import (
	"errors"
	"fmt"

	"github.com/keenwrite/definitions/ir"

	"github.com/ohler55/ojg/jp"
)

var ErrSelector = errors.New("invalid jsonpath")

// Query returns the values in doc matched by selector. Objects are returned
// as map[string]any and scalars as their text.
func Query(doc *ir.Node, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrSelector, selector, err)
	}
	return x.Get(ir.ToAny(doc)), nil
}

// Strings is like Query but keeps only scalar results.
func Strings(doc *ir.Node, selector string) ([]string, error) {
	vs, err := Query(doc, selector)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(vs))
	for _, v := range vs {
		if s, ok := v.(string); ok {
			res = append(res, s)
		}
	}
	return res, nil
}

// Nodes is like Query but converts each result back to a document.
func Nodes(doc *ir.Node, selector string) ([]*ir.Node, error) {
	vs, err := Query(doc, selector)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		n, err := ir.FromAny(v)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
