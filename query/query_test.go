package query

import (
	"errors"
	"testing"

	"github.com/keenwrite/definitions/ir"

	"github.com/google/go-cmp/cmp"
)

func doc() *ir.Node {
	return ir.FromKeyVals(
		ir.KeyVal{Key: "db", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "host", Val: ir.FromString("localhost")},
			ir.KeyVal{Key: "port", Val: ir.FromString("5432")},
		)},
		ir.KeyVal{Key: "title", Val: ir.FromString("Untitled")},
	)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		sel  string
		want []string
	}{
		{"$.db.host", []string{"localhost"}},
		{"$.title", []string{"Untitled"}},
		{"$.nope", []string{}},
		{"$.db", []string{}},
	}
	for _, tt := range tests {
		got, err := Strings(doc(), tt.sel)
		if err != nil {
			t.Errorf("%s: %v", tt.sel, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.sel, diff)
		}
	}
}

func TestQueryObject(t *testing.T) {
	got, err := Query(doc(), "$.db")
	if err != nil {
		t.Fatal(err)
	}
	want := []any{map[string]any{"host": "localhost", "port": "5432"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNodes(t *testing.T) {
	got, err := Nodes(doc(), "$.db")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !ir.Equal(got[0], doc().Get("db")) {
		t.Errorf("got %v", got)
	}
}

func TestBadSelector(t *testing.T) {
	if _, err := Query(doc(), "$[1"); !errors.Is(err, ErrSelector) {
		t.Errorf("expected ErrSelector, got %v", err)
	}
}
