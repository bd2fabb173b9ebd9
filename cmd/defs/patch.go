package main

import (
	"fmt"

	"github.com/keenwrite/definitions/patch"

	"github.com/scott-cotton/cli"
)

func patchFile(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch file, and a file to which to apply it", cli.ErrUsage)
	}
	file := args[1]
	if file == "-" && !cfg.DryRun {
		return fmt.Errorf("%w: patch can only save to a named file, use -n to print", cli.ErrUsage)
	}
	ops, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	t, err := loadTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	apply := patch.ApplyTree
	if cfg.Merge {
		apply = patch.MergeTree
	}
	res, amb, err := apply(t, ops)
	warn(cc, file, amb)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return saveTree(cfg.MainConfig, cc, res, file, cfg.DryRun)
}
