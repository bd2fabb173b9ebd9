package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Adapt  bool
	Export bool
	Interp bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DEFS_DEBUG_PARSE")
	d.Adapt = boolEnv("DEFS_DEBUG_ADAPT")
	d.Export = boolEnv("DEFS_DEBUG_EXPORT")
	d.Interp = boolEnv("DEFS_DEBUG_INTERP")
	d.Patch = boolEnv("DEFS_DEBUG_PATCH")
	if boolEnv("DEFS_DEBUG") {
		*d = debug{true, true, true, true, true}
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Adapt() bool {
	return d.Adapt
}
func Export() bool {
	return d.Export
}
func Interp() bool {
	return d.Interp
}
func Patch() bool {
	return d.Patch
}
