package main

import (
	"fmt"

	"github.com/keenwrite/definitions/adapt"
	"github.com/keenwrite/definitions/encode"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var opts []adapt.ExportOption
	if cfg.Strict {
		opts = append(opts, adapt.WithPolicy(adapt.RejectCollisions))
	}
	for i, file := range defaultArgs(args) {
		t, err := loadTree(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		doc, amb, err := adapt.Export(t, opts...)
		warn(cc, file, amb)
		if err != nil {
			return fmt.Errorf("error exporting %s: %w", file, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("unable to write separator: %w", err)
			}
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
