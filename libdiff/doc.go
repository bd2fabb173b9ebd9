// Package libdiff reports how two documents differ.
//
// Diff renders a line oriented diff of the YAML encodings, for people.
// Changes lists the differing fields by path, for programs.
package libdiff
