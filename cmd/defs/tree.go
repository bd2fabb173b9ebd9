package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/ir"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	for i, file := range defaultArgs(args) {
		t, err := loadTree(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := writeTree(cc.Out, t, colors, cfg.Shapes); err != nil {
			return fmt.Errorf("error writing tree of %s: %w", file, err)
		}
	}
	return nil
}

func writeTree(w io.Writer, t *defn.Node, colors *encode.Colors, shapes bool) error {
	buf := bytes.NewBuffer(nil)
	t.Walk(func(n *defn.Node) bool {
		buf.WriteString(strings.Repeat("  ", n.Depth()))
		label := n.Label
		if colors != nil {
			label = colors.Color(treeColorable(n), label)
		}
		buf.WriteString(label)
		if shapes {
			buf.WriteString(" (" + n.Shape().String() + ")")
		}
		buf.WriteByte('\n')
		return true
	})
	_, err := w.Write(buf.Bytes())
	return err
}

func treeColorable(n *defn.Node) encode.Colorable {
	switch {
	case n.IsRoot():
		return encode.Colorable{Type: ir.ObjectType, Attr: encode.RootColor}
	case n.Shape() == defn.Leaf:
		return encode.Colorable{Type: ir.StringType, Attr: encode.ValueColor}
	case n.Shape() == defn.ScalarHolder:
		return encode.Colorable{Type: ir.StringType, Attr: encode.FieldColor}
	default:
		return encode.Colorable{Type: ir.ObjectType, Attr: encode.FieldColor}
	}
}
