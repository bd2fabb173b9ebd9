package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keenwrite/definitions/adapt"
	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/interp"
	"github.com/keenwrite/definitions/ir"
	"github.com/keenwrite/definitions/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ir.ErrIO, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %q: %w", ir.ErrIO, path, err)
	}
	return d, nil
}

func loadDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, nil
}

func loadTree(cfg *MainConfig, cc *cli.Context, path string) (*defn.Node, error) {
	doc, err := loadDoc(cfg, cc, path)
	if err != nil {
		return nil, err
	}
	return adapt.Adapt(doc, cfg.rootLabel())
}

// loadBindings flattens files in order; a later file overrides variables an
// earlier one defined.
func loadBindings(cfg *MainConfig, cc *cli.Context, files []string, opts ...interp.Option) (*interp.Bindings, error) {
	var res *interp.Bindings
	for _, file := range files {
		t, err := loadTree(cfg, cc, file)
		if err != nil {
			return nil, err
		}
		b := interp.Flatten(t, opts...)
		if res == nil {
			res = b
			continue
		}
		for _, name := range b.Names() {
			v, _ := b.Lookup(name)
			res.Bind(name, v)
		}
	}
	return res, nil
}

func warn(cc *cli.Context, file string, amb []adapt.Ambiguity) {
	for i := range amb {
		fmt.Fprintf(cc.Err, "warning: %s: %s\n", file, &amb[i])
	}
}

func warnShapes(cc *cli.Context, file string, t *defn.Node) {
	for _, e := range t.Validate() {
		fmt.Fprintf(cc.Err, "warning: %s: %s\n", file, e)
	}
}

func defaultArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
