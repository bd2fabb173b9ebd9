package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// ToAny converts a document to map[string]any and string values, the shape
// expected by libraries working on decoded JSON.
func ToAny(y *Node) any {
	if y.Type != ObjectType {
		return y.String
	}
	res := make(map[string]any, len(y.Fields))
	for i, f := range y.Fields {
		res[f.String] = ToAny(y.Values[i])
	}
	return res
}

// FromAny converts decoded JSON into a document. Map keys are placed in
// sorted order; use ReorderLike to recover an earlier order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			child, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, child)
		}
		return res, nil
	case string:
		return FromString(x), nil
	case nil:
		return FromString("null"), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case json.Number:
		return FromString(x.String()), nil
	case float64:
		return FromString(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case int64:
		return FromString(strconv.FormatInt(x, 10)), nil
	case int:
		return FromString(strconv.Itoa(x)), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// ReorderLike reorders the fields of y, recursively, to follow the field
// order of like. Keys absent from like keep their relative order after the
// ones it has.
func ReorderLike(y, like *Node) *Node {
	if y.Type != ObjectType || like == nil || like.Type != ObjectType {
		return y
	}
	rank := func(key string) int {
		if i := like.index(key); i != -1 {
			return i
		}
		return len(like.Fields)
	}
	kvs := y.KeyVals()
	slices.SortStableFunc(kvs, func(a, b KeyVal) int {
		return rank(a.Key) - rank(b.Key)
	})
	y.Fields = nil
	y.Values = nil
	for _, kv := range kvs {
		ReorderLike(kv.Val, like.Get(kv.Key))
		y.Set(kv.Key, kv.Val)
	}
	return y
}
