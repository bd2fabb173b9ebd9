package encode

import "github.com/keenwrite/definitions/format"

type EncState struct {
	format    format.Format
	formatSet bool
	indent    int
	Color     func(t Colorable, s string) string
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) {
		es.format = f
		es.formatSet = true
	}
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		es.indent = 2
	}
	return es
}
