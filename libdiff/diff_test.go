package libdiff

import (
	"testing"

	"github.com/keenwrite/definitions/ir"

	"github.com/google/go-cmp/cmp"
)

func kv(k string, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: k, Val: v} }

func str(s string) *ir.Node { return ir.FromString(s) }

func TestDiffEqual(t *testing.T) {
	a := ir.FromKeyVals(kv("a", str("1")))
	if d := Diff(a, a.Clone()); d != "" {
		t.Errorf("expected no diff, got\n%s", d)
	}
}

func TestDiffText(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"a: 1\nb: 2\n", "a: 1\nb: 2\n", ""},
		{"a: 1\nb: 2\n", "a: 1\nb: 3\n", " a: 1\n-b: 2\n+b: 3\n"},
		{"a: 1\n", "a: 1\nc: 3\n", " a: 1\n+c: 3\n"},
		{"a: 1\nb: 2", "a: 1\n", " a: 1\n-b: 2\n"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, DiffText(tt.from, tt.to)); diff != "" {
			t.Errorf("DiffText(%q, %q) (-want +got):\n%s", tt.from, tt.to, diff)
		}
	}
}

func TestDiff(t *testing.T) {
	from := ir.FromKeyVals(kv("a", str("x")), kv("b", str("q")))
	to := ir.FromKeyVals(kv("a", str("x")), kv("b", str("z")))
	want := " a: x\n-b: q\n+b: z\n"
	if diff := cmp.Diff(want, Diff(from, to)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestChanges(t *testing.T) {
	from := ir.FromKeyVals(
		kv("db", ir.FromKeyVals(kv("host", str("h")), kv("port", str("1")))),
		kv("gone", str("x")),
		kv("shape", str("s")),
	)
	to := ir.FromKeyVals(
		kv("shape", ir.FromKeyVals(kv("k", str("v")))),
		kv("db", ir.FromKeyVals(kv("port", str("2")), kv("host", str("h")), kv("user", str("u")))),
		kv("a.b", str("q")),
	)
	var got []string
	for _, c := range Changes(from, to) {
		got = append(got, c.String())
	}
	want := []string{
		"replace $.db.port",
		"insert $.db.user",
		"delete $.gone",
		"replace $.shape",
		"insert $.'a.b'",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestChangesOrderOnly(t *testing.T) {
	from := ir.FromKeyVals(kv("a", str("1")), kv("b", str("2")))
	to := ir.FromKeyVals(kv("b", str("2")), kv("a", str("1")))
	if c := Changes(from, to); len(c) != 0 {
		t.Errorf("expected no changes, got %v", c)
	}
}
