package interp

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/keenwrite/definitions/debug"

	"github.com/expr-lang/expr"
)

var ErrCycle = errors.New("reference cycle")

type Resolver struct {
	b       *Bindings
	o       *options
	env     map[string]any
	exprs   []expr.Option
	missing []string
}

func NewResolver(b *Bindings, opts ...Option) *Resolver {
	r := &Resolver{b: b, o: newOptions(opts), env: b.Env()}
	r.exprs = append([]expr.Option{expr.Env(r.env)}, exprFuncs(b)...)
	return r
}

// exprFuncs are the functions available to expressions in references.
func exprFuncs(b *Bindings) []expr.Option {
	return []expr.Option{
		expr.Function("lookup", func(params ...any) (any, error) {
			v, _ := b.Lookup(params[0].(string))
			return v, nil
		},
			new(func(string) string)),
		expr.Function("defined", func(params ...any) (any, error) {
			_, ok := b.Lookup(params[0].(string))
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Substitute replaces every reference in text.
func (r *Resolver) Substitute(text string) string {
	return scan(text, r.o.begin, r.o.end, func(ref string) (string, bool) {
		name := strings.TrimSpace(ref)
		if v, ok := r.b.Lookup(name); ok {
			return v, true
		}
		v, err := r.eval(name)
		if err != nil || v == nil {
			if debug.Interp() {
				debug.Logf("unresolved reference %q: %v\n", name, err)
			}
			if !slices.Contains(r.missing, name) {
				r.missing = append(r.missing, name)
			}
			return "", false
		}
		return fmt.Sprint(v), true
	})
}

func (r *Resolver) eval(code string) (any, error) {
	program, err := expr.Compile(code, r.exprs...)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, r.env)
}

// Missing returns the references Substitute could not resolve.
func (r *Resolver) Missing() []string {
	return r.missing
}

// Interpolate returns bindings whose values have their references to other
// variables replaced. References to unknown names are left in place.
func Interpolate(b *Bindings, opts ...Option) (*Bindings, error) {
	o := newOptions(opts)
	res := NewBindings(b.sep)
	done := map[string]string{}
	var resolve func(name string, stack []string) (string, error)
	resolve = func(name string, stack []string) (string, error) {
		if v, ok := done[name]; ok {
			return v, nil
		}
		if slices.Contains(stack, name) {
			return "", fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(stack, name), " -> "))
		}
		if len(stack) >= o.maxDepth {
			return "", fmt.Errorf("%w: %s nested deeper than %d", ErrCycle, name, o.maxDepth)
		}
		stack = append(stack, name)
		var err error
		v := scan(b.values[name], o.begin, o.end, func(ref string) (string, bool) {
			ref = strings.TrimSpace(ref)
			if _, ok := b.values[ref]; !ok || err != nil {
				return "", false
			}
			var rv string
			rv, err = resolve(ref, stack)
			return rv, err == nil
		})
		if err != nil {
			return "", err
		}
		done[name] = v
		return v, nil
	}
	for _, name := range b.names {
		v, err := resolve(name, nil)
		if err != nil {
			return nil, err
		}
		res.Bind(name, v)
	}
	return res, nil
}

// scan copies text, replacing each begin...end reference with what sub
// returns, or keeping it verbatim when sub fails.
func scan(text, begin, end string, sub func(ref string) (string, bool)) string {
	if begin == "" || end == "" {
		return text
	}
	b := &strings.Builder{}
	for {
		i := strings.Index(text, begin)
		if i == -1 {
			break
		}
		j := strings.Index(text[i+len(begin):], end)
		if j == -1 {
			break
		}
		ref := text[i+len(begin) : i+len(begin)+j]
		b.WriteString(text[:i])
		if v, ok := sub(ref); ok {
			b.WriteString(v)
		} else {
			b.WriteString(text[i : i+len(begin)+j+len(end)])
		}
		text = text[i+len(begin)+j+len(end):]
	}
	b.WriteString(text)
	return b.String()
}
