package ir

import (
	"bytes"
	"fmt"
	"strings"
)

func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	return FieldPath(y.Parent.Path(), y.ParentField)
}

// FieldPath appends field to the path parent, quoting it when needed.
func FieldPath(parent, field string) string {
	return parent + "." + pathString(field)
}

type Path struct {
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	if frag[0] != '.' {
		return fmt.Errorf("expected '.'")
	}
	field, rest, err := parseField(frag[1:])
	if err != nil {
		return err
	}
	parent.Field = &field
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexByte(frag, '.')
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at yPath, or nil when some field along the path
// is absent.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		if yp.Field == nil {
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("%w: %s is a %s", ErrNotObject, res.Path(), res.Type)
		}
		res = res.Get(*yp.Field)
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}
