package main

import (
	"fmt"

	"github.com/keenwrite/definitions/adapt"
	"github.com/keenwrite/definitions/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	failed := 0
	for _, file := range args {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		t, err := adapt.Adapt(doc, cfg.rootLabel())
		if err != nil {
			return err
		}
		out, amb, err := adapt.Export(t)
		if err != nil {
			return err
		}
		warn(cc, file, amb)
		d := libdiff.Diff(doc, out)
		if d == "" {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		failed++
		if cfg.Quiet {
			continue
		}
		fmt.Fprintf(cc.Out, "%s: changed by a round trip\n", file)
		for _, c := range libdiff.Changes(doc, out) {
			fmt.Fprintf(cc.Out, "# %s\n", c)
		}
		fmt.Fprint(cc.Out, d)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
