package main

import (
	"fmt"

	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/ir"
	"github.com/keenwrite/definitions/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a variable name or jsonpath", cli.ErrUsage)
	}
	sel := args[0]
	if sel == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	files := defaultArgs(args[1:])
	if sel[0] != '$' {
		b, err := loadBindings(cfg.MainConfig, cc, files)
		if err != nil {
			return err
		}
		v, ok := b.Lookup(sel)
		if !ok {
			return fmt.Errorf("%q is not defined", sel)
		}
		_, err = fmt.Fprintln(cc.Out, v)
		return err
	}
	for _, file := range files {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := query.Nodes(doc, sel)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, n := range res {
			if err := writeNode(cfg.MainConfig, cc, n); err != nil {
				return fmt.Errorf("error querying %s with %s: %w", file, sel, err)
			}
		}
	}
	return nil
}

func writeNode(cfg *MainConfig, cc *cli.Context, n *ir.Node) error {
	if n.Type != ir.ObjectType {
		_, err := fmt.Fprintln(cc.Out, n.String)
		return err
	}
	return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
}
