package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keenwrite/definitions/adapt"
	"github.com/keenwrite/definitions/ir"
	"github.com/keenwrite/definitions/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

type buffer struct{ bytes.Buffer }

func (*buffer) Close() error { return nil }

func run(stdin string, args ...string) (stdout, stderr string, err error) {
	out, errOut := &buffer{}, &buffer{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader(stdin)),
		Out: out,
		Err: errOut,
		Go:  context.Background(),
	}
	err = MainCommand().Run(cc, args)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var xc cli.ExitCodeErr
	if errors.As(err, &xc) {
		return int(xc)
	}
	return -1
}

const dbDefs = "db:\n  host: h\n  user: admin\ntitle: Untitled\n"

func TestRunCommands(t *testing.T) {
	dir := t.TempDir()
	defs := writeFile(t, dir, "d.yaml", dbDefs)
	nested := writeFile(t, dir, "nested.yaml", "a:\n  b: {}\n")
	colliding := writeFile(t, dir, "c.yaml", "c:\n  first: {}\n  second: {}\n")
	tmpl := writeFile(t, dir, "t.txt", "host={{db.host}} as {{ db.user }} {{nope}}\n")
	ops := writeFile(t, dir, "p.json", `[{"op":"replace","path":"/db/host","value":"remote"}]`)

	tests := []struct {
		name     string
		args     []string
		in       string
		out      string
		errHas   string
		exitCode int
	}{
		{
			name: "tree",
			args: []string{"tree", defs},
			out:  "Definitions\n  db\n    host\n      h\n    user\n      admin\n  title\n    Untitled\n",
		},
		{
			name: "tree root label from stdin",
			args: []string{"-root", "Vars", "tree"},
			in:   "k: v\n",
			out:  "Vars\n  k\n    v\n",
		},
		{
			name: "export",
			args: []string{"export", defs},
			out:  dbDefs,
		},
		{
			name: "export json",
			args: []string{"-j", "export", defs},
			out:  "{\n  \"db\": {\n    \"host\": \"h\",\n    \"user\": \"admin\"\n  },\n  \"title\": \"Untitled\"\n}\n",
		},
		{
			name: "export indent",
			args: []string{"-indent", "4", "export", defs},
			out:  "db:\n    host: h\n    user: admin\ntitle: Untitled\n",
		},
		{
			name:   "export collision warns",
			args:   []string{"export", colliding},
			out:    "c:\n  c: second\n",
			errHas: "leaf collision",
		},
		{
			name:     "export strict collision",
			args:     []string{"export", "-strict", colliding},
			exitCode: -1,
		},
		{
			name: "vars",
			args: []string{"vars", defs},
			out:  "db.host: h\ndb.user: admin\ntitle: Untitled\n",
		},
		{
			name: "get variable",
			args: []string{"get", "db.user", defs},
			out:  "admin\n",
		},
		{
			name: "get jsonpath",
			args: []string{"get", "$.db", defs},
			out:  "host: h\nuser: admin\n",
		},
		{
			name:     "get undefined",
			args:     []string{"get", "db.nope", defs},
			exitCode: -1,
		},
		{
			name:   "subst",
			args:   []string{"subst", "-d", defs, tmpl},
			out:    "host=h as admin {{nope}}\n",
			errHas: `unresolved reference "nope"`,
		},
		{
			name: "subst stdin",
			args: []string{"subst", "-d", defs},
			in:   "{{title}}",
			out:  "Untitled",
		},
		{
			name: "check ok",
			args: []string{"check", defs},
			out:  defs + ": ok\n",
		},
		{
			name:     "check nested empty object",
			args:     []string{"check", "-q", nested},
			exitCode: 1,
		},
		{
			name: "patch dry run",
			args: []string{"patch", "-n", ops, defs},
			out:  "db:\n  host: remote\n  user: admin\ntitle: Untitled\n",
		},
		{
			name: "set dry run",
			args: []string{"set", "-n", defs, "db.port=db-port"},
			out:  "db:\n  host: h\n  user: admin\n  port: db-port\ntitle: Untitled\n",
		},
		{
			name:     "usage",
			args:     []string{"check"},
			exitCode: 2,
		},
		{
			name:     "conflicting formats",
			args:     []string{"-j", "-y", "export", defs},
			exitCode: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := run(tt.in, tt.args...)
			if code := exitCode(err); code != tt.exitCode {
				t.Fatalf("exit code %d (%v), want %d; stderr:\n%s", code, err, tt.exitCode, errOut)
			}
			if tt.exitCode != 0 {
				return
			}
			if diff := cmp.Diff(tt.out, out); diff != "" {
				t.Errorf("stdout (-want +got):\n%s", diff)
			}
			if !strings.Contains(errOut, tt.errHas) {
				t.Errorf("stderr %q does not contain %q", errOut, tt.errHas)
			}
		})
	}
	got, err := os.ReadFile(defs)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != dbDefs {
		t.Errorf("dry runs modified %s:\n%s", defs, got)
	}
}

func TestRunExportStrictIsAmbiguity(t *testing.T) {
	c := writeFile(t, t.TempDir(), "c.yaml", "c:\n  first: {}\n  second: {}\n")
	_, _, err := run("", "export", "-strict", c)
	if !errors.Is(err, adapt.ErrStructuralAmbiguity) {
		t.Errorf("expected ErrStructuralAmbiguity, got %v", err)
	}
}

func TestRunConflictingFormatsIsUsage(t *testing.T) {
	_, _, err := run("", "-j", "-y", "vars")
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected ErrUsage, got %v", err)
	}
}

func TestRunSetSavesInPlace(t *testing.T) {
	defs := writeFile(t, t.TempDir(), "d.yaml", dbDefs)
	if _, errOut, err := run("", "set", defs, "db.port=db-port", "app.name=demo"); err != nil {
		t.Fatalf("%v: %s", err, errOut)
	}
	got, err := parse.ParseFile(defs)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals(
		ir.KeyVal{Key: "db", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "host", Val: ir.FromString("h")},
			ir.KeyVal{Key: "user", Val: ir.FromString("admin")},
			ir.KeyVal{Key: "port", Val: ir.FromString("db-port")},
		)},
		ir.KeyVal{Key: "title", Val: ir.FromString("Untitled")},
		ir.KeyVal{Key: "app", Val: ir.FromKeyVals(ir.KeyVal{Key: "name", Val: ir.FromString("demo")})},
	)
	if !ir.Equal(want, got) {
		t.Errorf("saved document differs:\n%s", mustRead(t, defs))
	}
}

func TestRunSetContainerFails(t *testing.T) {
	defs := writeFile(t, t.TempDir(), "d.yaml", dbDefs)
	if _, _, err := run("", "set", defs, "db=x"); err == nil {
		t.Errorf("setting a container should fail")
	}
	if got := mustRead(t, defs); got != dbDefs {
		t.Errorf("file modified:\n%s", got)
	}
}

func TestRunPatchSavesInPlace(t *testing.T) {
	dir := t.TempDir()
	defs := writeFile(t, dir, "d.yaml", dbDefs)
	merge := writeFile(t, dir, "m.json", `{"db":{"user":null},"title":"Draft"}`)
	if _, errOut, err := run("", "patch", "-m", merge, defs); err != nil {
		t.Fatalf("%v: %s", err, errOut)
	}
	want := "db:\n  host: h\ntitle: Draft\n"
	if diff := cmp.Diff(want, mustRead(t, defs)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunOutputFormatFromPath(t *testing.T) {
	dir := t.TempDir()
	defs := writeFile(t, dir, "d.yaml", "k: v\n")
	out := filepath.Join(dir, "out.json")
	if _, errOut, err := run("", "-o", out, "export", defs); err != nil {
		t.Fatalf("%v: %s", err, errOut)
	}
	if diff := cmp.Diff("{\n  \"k\": \"v\"\n}\n", mustRead(t, out)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func mustRead(t *testing.T, p string) string {
	t.Helper()
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
