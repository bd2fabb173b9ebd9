package encode_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/keenwrite/definitions/encode"
	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/ir"
	"github.com/keenwrite/definitions/parse"
)

func kv(k string, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: k, Val: v} }

func sample() *ir.Node {
	return ir.FromKeyVals(
		kv("db", ir.FromKeyVals(
			kv("host", ir.FromString("localhost")),
			kv("port", ir.FromString("5432")),
		)),
		kv("flag", ir.FromString("true")),
		kv("nothing", ir.FromString("null")),
		kv("empty", ir.NewObject()),
		kv("multi", ir.FromString("line one\nline two")),
		kv("a.b", ir.FromString("colon: inside")),
	)
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(sample(), buf, encode.EncodeFormat(f)); err != nil {
			t.Fatalf("%s: encode: %v", f, err)
		}
		got, err := parse.Parse(buf.Bytes(), parse.ParseFormat(f))
		if err != nil {
			t.Fatalf("%s: parse %q: %v", f, buf.String(), err)
		}
		if !ir.Equal(sample(), got) {
			t.Errorf("%s: round trip differs:\n%s", f, buf.String())
		}
	}
}

func TestEncodeYAMLOrder(t *testing.T) {
	doc := ir.FromKeyVals(
		kv("zeta", ir.FromString("1")),
		kv("alpha", ir.FromString("2")),
	)
	out := encode.MustString(doc)
	if strings.Index(out, "zeta") > strings.Index(out, "alpha") {
		t.Errorf("field order lost:\n%s", out)
	}
}

func TestEncodeJSON(t *testing.T) {
	doc := ir.FromKeyVals(kv("title", ir.FromString("Untitled")))
	out := encode.MustString(doc, encode.EncodeFormat(format.JSONFormat))
	want := "{\n  \"title\": \"Untitled\"\n}\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := encode.NewColors()
	out := encode.MustString(sample(), encode.EncodeColors(colors))
	for _, s := range []string{"db", "localhost", "5432", "empty"} {
		if !strings.Contains(out, s) {
			t.Errorf("colored output missing %q:\n%s", s, out)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "defs.yaml")
	if err := os.WriteFile(p, []byte("old: contents\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := encode.WriteFile(p, sample()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := parse.ParseFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(sample(), got) {
		t.Errorf("written document differs")
	}
	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", fi.Mode().Perm())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}

	jp := filepath.Join(dir, "defs.json")
	if err := encode.WriteFile(jp, sample()); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(jp)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(d, []byte("{")) {
		t.Errorf("expected JSON for .json path, got %q", d)
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "no", "such", "dir", "defs.yaml")
	err := encode.WriteFile(p, sample())
	if !errors.Is(err, ir.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

var edgeScalars = []string{
	"", " ", " lead", "trail ", "? q", "?", "- x", "-", ": x", "a: b", "a #b", "#c",
	"a\tb", "\t", "'q", "\"dq", "@x", "`x", "%x", "!tag", "&anchor", "*alias",
	"|", ">", "[a]", "{a}", "a,b", "y", "no", "null", "~", "true", "1.10",
	"0x1F", "0o17", "1e3", ".inf", "2001-12-14", "\x01", "é", "\\", "line1\nline2",
}

func TestEncodeEdgeScalarsReadBack(t *testing.T) {
	for _, s := range edgeScalars {
		for _, doc := range []*ir.Node{
			ir.FromKeyVals(kv("k", ir.FromString(s))),
			ir.FromKeyVals(kv(s, ir.FromString("v"))),
		} {
			out := encode.MustString(doc)
			got, err := parse.Parse([]byte(out))
			if err != nil {
				t.Errorf("%q: parse %q: %v", s, out, err)
				continue
			}
			if !ir.Equal(doc, got) {
				t.Errorf("%q: read back differs from %q", s, out)
			}
		}
	}
}

func TestEncodeEdgeScalarsColored(t *testing.T) {
	colors := encode.NewColors()
	for _, s := range []string{"? q", "a\tb"} {
		out := encode.MustString(ir.FromKeyVals(kv("k", ir.FromString(s))), encode.EncodeColors(colors))
		if !strings.Contains(out, strconv.Quote(s)) {
			t.Errorf("%q not quoted in %q", s, out)
		}
	}
}
