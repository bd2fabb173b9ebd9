// Package interp turns a definition tree into variables and substitutes them
// into text.
//
// Every scalar holder in the tree becomes a variable named by the labels on
// its path below the root, joined by a separator ("." by default):
//
//	Definitions
//	  db
//	    host
//	      localhost
//
// binds db.host to "localhost". Paths are not deduplicated; when two scalar
// holders share a path the later one wins.
//
// A Resolver replaces references such as {{db.host}} in text. A reference
// that is not a variable name is evaluated as an expr-lang expression over
// the variables, with nested names as nested maps ({{db.host + ":" +
// db.port}}). References that resolve neither way are left in place and
// reported by Missing.
package interp
