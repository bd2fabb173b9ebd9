package main

import (
	"fmt"
	"strings"

	"github.com/keenwrite/definitions/adapt"
	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/interp"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a file and at least one name=value", cli.ErrUsage)
	}
	file := args[0]
	if file == "-" && !cfg.DryRun {
		return fmt.Errorf("%w: set can only save to a named file, use -n to print", cli.ErrUsage)
	}
	sep := cfg.Sep
	if sep == "" {
		sep = interp.DefaultSeparator
	}
	t, err := loadTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return fmt.Errorf("%w: expected name=value, got %q", cli.ErrUsage, arg)
		}
		if err := t.Ensure(strings.Split(name, sep)...).SetValue(value); err != nil {
			return fmt.Errorf("error setting %s: %w", name, err)
		}
	}
	return saveTree(cfg.MainConfig, cc, t, file, cfg.DryRun)
}

// saveTree writes t back to file, or to the output when dryRun is set.
func saveTree(cfg *MainConfig, cc *cli.Context, t *defn.Node, file string, dryRun bool) error {
	warnShapes(cc, file, t)
	if dryRun {
		doc, amb, err := adapt.Export(t)
		warn(cc, file, amb)
		if err != nil {
			return err
		}
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
	}
	var opts []adapt.ExportOption
	if f, ok := cfg.outFormat(); ok {
		opts = append(opts, adapt.ExportFormat(f))
	}
	if cfg.Indent > 0 {
		opts = append(opts, adapt.ExportIndent(cfg.Indent))
	}
	amb, err := adapt.Save(t, file, opts...)
	warn(cc, file, amb)
	if err != nil {
		return fmt.Errorf("error saving %s: %w", file, err)
	}
	return nil
}
