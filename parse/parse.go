package parse

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/keenwrite/definitions/debug"
	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/ir"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.format == format.JSONCFormat {
		d = jsonc.ToJSON(d)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, yaml.FormatError(err, false, true))
	}
	if v == nil {
		return ir.NewObject(), nil
	}
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, v)
	}
	res := ir.NewObject()
	if err := fromMapSlice(res, ms); err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s document with %d fields\n", o.format, res.Len())
	}
	return res, nil
}

// ParseFile reads path and parses it, in the format named by its extension
// unless a ParseFormat option is given.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	opts = append([]ParseOption{ParseFormat(format.FromPath(path))}, opts...)
	res, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return res, nil
}

func fromMapSlice(dst *ir.Node, ms yaml.MapSlice) error {
	for _, item := range ms {
		key, err := scalarText(item.Key)
		if err != nil {
			return fmt.Errorf("%w: key at %s", err, dst.Path())
		}
		if dst.Get(key) != nil {
			return fmt.Errorf("%w %q at %s", ErrDupKey, key, dst.Path())
		}
		switch x := item.Value.(type) {
		case yaml.MapSlice:
			if err := fromMapSlice(dst.PutObject(key), x); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("%w: %s", ErrSequence, ir.FieldPath(dst.Path(), key))
		default:
			s, err := scalarText(x)
			if err != nil {
				return fmt.Errorf("%w: value at %s", err, ir.FieldPath(dst.Path(), key))
			}
			dst.Set(key, ir.FromString(s))
		}
	}
	return nil
}

func scalarText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		switch {
		case math.IsInf(x, 1):
			return ".inf", nil
		case math.IsInf(x, -1):
			return "-.inf", nil
		case math.IsNaN(x):
			return ".nan", nil
		}
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(x), nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	case yaml.MapSlice, []any:
		return "", fmt.Errorf("%w: unexpected collection", ErrParse)
	default:
		return fmt.Sprint(x), nil
	}
}
