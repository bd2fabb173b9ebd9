package parse

import (
	"fmt"

	"github.com/keenwrite/definitions/ir"
)

var (
	ErrParse     = ir.ErrParse
	ErrNotObject = fmt.Errorf("%w: document root %w", ErrParse, ir.ErrNotObject)
	ErrSequence  = fmt.Errorf("%w: sequences are not supported", ErrParse)
	ErrDupKey    = fmt.Errorf("%w: duplicate key", ErrParse)
)
