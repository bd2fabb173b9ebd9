package ir

import (
	"errors"
)

var (
	// ErrParse marks a source document that could not be parsed.
	ErrParse = errors.New("parse error")
	// ErrIO marks a path that could not be read or written.
	ErrIO = errors.New("i/o error")

	ErrNotObject = errors.New("not an object")
)
