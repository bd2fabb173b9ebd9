package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, jsonc, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "defs").
		WithSynopsis("defs [opts] command [opts]").
		WithDescription("defs is a tool for working with definition files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return defsMain(cfg, cc, args)
		}).
		WithSubs(
			TreeCommand(cfg),
			ExportCommand(cfg),
			VarsCommand(cfg),
			GetCommand(cfg),
			SubstCommand(cfg),
			CheckCommand(cfg),
			SetCommand(cfg),
			PatchCommand(cfg))
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithSynopsis("tree [opts] [files]").
		WithDescription("show the definition tree of files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithAliases("x").
		WithSynopsis("export [-strict] [files]").
		WithDescription("adapt files to trees and export them back to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("vars").
		WithAliases("v").
		WithSynopsis("vars [-sep s] [-i] [files]").
		WithDescription("list the variables files define").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vars(cfg, cc, args)
		})
	cfg.Vars = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <name|jsonpath> [files]").
		WithDescription("get a variable, or the values matching a jsonpath, from files").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SubstCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SubstConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("subst").
		WithAliases("s").
		WithSynopsis("subst -d <defsfile> [opts] [files]").
		WithDescription("replace variable references in text files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return subst(cfg, cc, args)
		})
	cfg.Subst = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-q] files").
		WithDescription("check that files survive a trip through a tree unchanged").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithSynopsis("set [-n] <file> name=value...").
		WithDescription("set variables in a definitions file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-m] [-n] <patchfile> <file>").
		WithDescription("apply a JSON patch to a definitions file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchFile(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
