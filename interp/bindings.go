package interp

import (
	"strings"

	"github.com/keenwrite/definitions/debug"
	"github.com/keenwrite/definitions/defn"
)

const DefaultSeparator = "."

type options struct {
	sep        string
	begin, end string
	maxDepth   int
}

type Option func(*options)

func Separator(sep string) Option {
	return func(o *options) { o.sep = sep }
}

// Delimiters sets the text surrounding a reference.
func Delimiters(begin, end string) Option {
	return func(o *options) {
		o.begin = begin
		o.end = end
	}
}

// MaxDepth bounds how deeply values referencing other values are resolved.
func MaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func newOptions(opts []Option) *options {
	o := &options{sep: DefaultSeparator, begin: "{{", end: "}}", maxDepth: 32}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Bindings maps variable names to values, remembering the order names were
// first bound.
type Bindings struct {
	sep    string
	names  []string
	values map[string]string
}

func NewBindings(sep string) *Bindings {
	return &Bindings{sep: sep, values: map[string]string{}}
}

// Flatten binds the path of every scalar holder in tree to its value.
func Flatten(tree *defn.Node, opts ...Option) *Bindings {
	o := newOptions(opts)
	res := NewBindings(o.sep)
	tree.Walk(func(n *defn.Node) bool {
		v, ok := n.Value()
		if !ok || n.IsRoot() {
			return true
		}
		res.Bind(n.Key(o.sep), v)
		return false
	})
	if debug.Interp() {
		debug.Logf("flattened %d variables from %q\n", res.Len(), tree.Label)
	}
	return res
}

func (b *Bindings) Bind(name, value string) {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = value
}

func (b *Bindings) Lookup(name string) (string, bool) {
	v, ok := b.values[name]
	return v, ok
}

func (b *Bindings) Names() []string {
	return b.names
}

func (b *Bindings) Len() int {
	return len(b.names)
}

func (b *Bindings) Map() map[string]string {
	res := make(map[string]string, len(b.values))
	for k, v := range b.values {
		res[k] = v
	}
	return res
}

// Env nests the bindings by separator for expression evaluation. When a
// name is both a value and a prefix of other names, whichever was bound
// first is kept.
func (b *Bindings) Env() map[string]any {
	res := map[string]any{}
	for _, name := range b.names {
		parts := []string{name}
		if b.sep != "" {
			parts = strings.Split(name, b.sep)
		}
		m := res
		ok := true
		for _, p := range parts[:len(parts)-1] {
			next, present := m[p]
			if !present {
				nm := map[string]any{}
				m[p] = nm
				m = nm
				continue
			}
			nm, isMap := next.(map[string]any)
			if !isMap {
				ok = false
				break
			}
			m = nm
		}
		if !ok {
			continue
		}
		last := parts[len(parts)-1]
		if _, isMap := m[last].(map[string]any); isMap {
			continue
		}
		m[last] = b.values[name]
	}
	return res
}
