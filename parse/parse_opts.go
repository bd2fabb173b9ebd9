package parse

import "github.com/keenwrite/definitions/format"

type parseOpts struct {
	format    format.Format
	formatSet bool
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}
