package main

import (
	"fmt"

	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/interp"
	"github.com/keenwrite/definitions/ir"

	"github.com/scott-cotton/cli"
)

func vars(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		cfg.Vars.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	b, err := loadBindings(cfg.MainConfig, cc, defaultArgs(args), cfg.interpOpts()...)
	if err != nil {
		return err
	}
	if cfg.Interpolate {
		b, err = interp.Interpolate(b, cfg.interpOpts()...)
		if err != nil {
			return err
		}
	}
	doc := ir.NewObject()
	for _, name := range b.Names() {
		v, _ := b.Lookup(name)
		doc.Set(name, ir.FromString(v))
	}
	if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding variables: %w", err)
	}
	return nil
}
