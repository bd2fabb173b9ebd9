package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/interp"
	"github.com/keenwrite/definitions/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

const defaultRoot = "Definitions"

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Root   string `cli:"name=root desc='label of the tree root (default Definitions)'"`
	Indent int    `cli:"name=indent desc='spaces per indentation level (default 2)'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) rootLabel() string {
	if cfg.Root == "" {
		return defaultRoot
	}
	return cfg.Root
}

// flagFormat is the format -j or -y selects for both input and output.
func (cfg *MainConfig) flagFormat() (format.Format, bool, error) {
	switch {
	case cfg.J && cfg.Y:
		return format.YAMLFormat, false, fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	case cfg.J:
		return format.JSONFormat, true, nil
	case cfg.Y:
		return format.YAMLFormat, true, nil
	}
	return format.YAMLFormat, false, nil
}

// inFormat is the input format given on the command line, if any.
func (cfg *MainConfig) inFormat() (format.Format, bool) {
	if cfg.InFormat != nil {
		return *cfg.InFormat, true
	}
	f, ok, _ := cfg.flagFormat()
	return f, ok
}

// outFormat is the output format given on the command line, if any.
func (cfg *MainConfig) outFormat() (format.Format, bool) {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat, true
	}
	f, ok, _ := cfg.flagFormat()
	return f, ok
}

// streamFormat is the format written to the output: the command line
// format when given, otherwise the one the -o path names.
func (cfg *MainConfig) streamFormat() format.Format {
	f, ok := cfg.outFormat()
	if !ok && cfg.Out != "" && cfg.Out != "-" {
		f = format.FromPath(cfg.Out)
	}
	return f
}

// pathFormat selects the format for reading path: the command line format
// when given, otherwise the one its extension names.
func (cfg *MainConfig) pathFormat(path string) format.Format {
	f, ok := cfg.inFormat()
	if !ok && path != "-" {
		f = format.FromPath(path)
	}
	return f
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.pathFormat(path))}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.streamFormat()
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if f.IsJSON() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.colorSet() {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

// colors returns the palette for tree rendering, or nil for plain text.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color || (!cfg.colorSet() && isTerminal(w)) {
		return encode.NewColors()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type TreeConfig struct {
	*MainConfig
	Shapes bool `cli:"name=s aliases=shapes desc='annotate nodes with their shape'"`

	Tree *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail instead of dropping values'"`

	Export *cli.Command
}

type VarsConfig struct {
	*MainConfig
	Sep         string `cli:"name=sep desc='separator between path labels (default .)'"`
	Interpolate bool   `cli:"name=i aliases=interpolate desc='resolve references between values'"`

	Vars *cli.Command
}

func (cfg *VarsConfig) interpOpts() []interp.Option {
	if cfg.Sep == "" {
		return nil
	}
	return []interp.Option{interp.Separator(cfg.Sep)}
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SubstConfig struct {
	*MainConfig
	Defs   string `cli:"name=d aliases=defs desc='definitions file'"`
	Begin  string `cli:"name=begin desc='reference start delimiter (default {{)'"`
	End    string `cli:"name=end desc='reference end delimiter (default }})'"`
	Strict bool   `cli:"name=strict desc='fail on unresolved references'"`

	Subst *cli.Command
}

func (cfg *SubstConfig) interpOpts() []interp.Option {
	begin, end := "{{", "}}"
	if cfg.Begin != "" {
		begin = cfg.Begin
	}
	if cfg.End != "" {
		end = cfg.End
	}
	return []interp.Option{interp.Delimiters(begin, end)}
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='only set the exit code'"`

	Check *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print the result instead of saving'"`
	Sep    string `cli:"name=sep desc='separator between path labels (default .)'"`

	Set *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='patch is a JSON merge patch'"`
	DryRun bool `cli:"name=n desc='print the result instead of saving'"`

	Patch *cli.Command
}
