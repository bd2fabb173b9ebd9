package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/keenwrite/definitions/interp"

	"github.com/scott-cotton/cli"
)

func subst(cfg *SubstConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Subst.Parse(cc, args)
	if err != nil {
		cfg.Subst.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Defs == "" {
		return fmt.Errorf("%w: subst requires a definitions file (-d)", cli.ErrUsage)
	}
	b, err := loadBindings(cfg.MainConfig, cc, []string{cfg.Defs})
	if err != nil {
		return err
	}
	b, err = interp.Interpolate(b, cfg.interpOpts()...)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", cfg.Defs, err)
	}
	r := interp.NewResolver(b, cfg.interpOpts()...)
	for _, file := range defaultArgs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, r.Substitute(string(d))); err != nil {
			return err
		}
	}
	missing := r.Missing()
	if len(missing) == 0 {
		return nil
	}
	if cfg.Strict {
		return fmt.Errorf("unresolved references: %s", strings.Join(missing, ", "))
	}
	for _, m := range missing {
		fmt.Fprintf(cc.Err, "warning: unresolved reference %q\n", m)
	}
	return nil
}
