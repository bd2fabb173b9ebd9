package ir

import "strings"

// Compare orders documents structurally. Objects compare field by field in
// order, keys before values.
func Compare(a, b *Node) int {
	if a.Type != b.Type {
		if a.Type < b.Type {
			return -1
		}
		return 1
	}
	if a.Type == StringType {
		return strings.Compare(a.String, b.String)
	}
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.Fields) < len(b.Fields):
		return -1
	case len(a.Fields) > len(b.Fields):
		return 1
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
