package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/ir"

	"github.com/goccy/go-yaml"
)

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	var (
		d   []byte
		err error
	)
	switch {
	case es.format.IsJSON():
		d, err = encodeJSON(node, es)
	default:
		d, err = encodeYAML(node, es)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// MustString encodes node in the default format, panicking on failure.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeJSON(node *ir.Node, es *EncState) ([]byte, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeYAML(node *ir.Node, es *EncState) ([]byte, error) {
	color := es.Color
	if color == nil {
		color = noColor
	}
	buf := bytes.NewBuffer(nil)
	if node.Type != ir.ObjectType {
		s, err := yamlScalar(node.String, false)
		if err != nil {
			return nil, err
		}
		buf.WriteString(color(Colorable{Type: ir.StringType, Attr: ValueColor}, s) + "\n")
		return buf.Bytes(), nil
	}
	if node.Len() == 0 {
		buf.WriteString(color(Colorable{Type: ir.ObjectType, Attr: SepColor}, "{}") + "\n")
		return buf.Bytes(), nil
	}
	if err := writeFields(buf, node, es.indent, color, 0); err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", format.YAMLFormat, err)
	}
	return buf.Bytes(), nil
}

func noColor(_ Colorable, s string) string { return s }

func writeFields(buf *bytes.Buffer, node *ir.Node, indent int, color func(Colorable, string) string, depth int) error {
	pad := strings.Repeat(" ", depth*indent)
	for i, f := range node.Fields {
		v := node.Values[i]
		key, err := yamlScalar(f.String, true)
		if err != nil {
			return err
		}
		buf.WriteString(pad)
		buf.WriteString(color(Colorable{Type: v.Type, Attr: FieldColor}, key))
		buf.WriteString(color(Colorable{Type: v.Type, Attr: SepColor}, ":"))
		switch {
		case v.Type == ir.ObjectType && v.Len() == 0:
			buf.WriteString(" " + color(Colorable{Type: ir.ObjectType, Attr: SepColor}, "{}") + "\n")
		case v.Type == ir.ObjectType:
			buf.WriteByte('\n')
			if err := writeFields(buf, v, indent, color, depth+1); err != nil {
				return err
			}
		default:
			s, err := yamlScalar(v.String, false)
			if err != nil {
				return err
			}
			buf.WriteString(" " + color(Colorable{Type: ir.StringType, Attr: ValueColor}, s) + "\n")
		}
	}
	return nil
}

// yamlScalar renders s as a single line YAML scalar, in the position of a
// key or a value, that reads back as the string s. Forms that do not are
// double quoted.
func yamlScalar(s string, key bool) (string, error) {
	if strings.ContainsAny(s, "\n\r") {
		return strconv.Quote(s), nil
	}
	d, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	res := strings.TrimSuffix(string(d), "\n")
	if !readsBack(res, s, key) {
		return strconv.Quote(s), nil
	}
	return res, nil
}

func readsBack(form, s string, key bool) bool {
	src := "k: " + form
	if key {
		src = form + ": v"
	}
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(src), &v, yaml.UseOrderedMap()); err != nil {
		return false
	}
	ms, ok := v.(yaml.MapSlice)
	if !ok || len(ms) != 1 {
		return false
	}
	got := ms[0].Value
	if key {
		got = ms[0].Key
	}
	text, ok := got.(string)
	return ok && text == s
}
