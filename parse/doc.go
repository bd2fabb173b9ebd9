// Package parse reads definitions documents into the ir document model.
//
// YAML and JSON are decoded with ordered mappings so that field order
// survives; JSONC input has its comments and trailing commas stripped first.
// Only the first document of a multi-document YAML stream is read.
//
// Scalars are kept as text. Integers are written in base 10, floats in their
// shortest form, booleans as true/false and null as "null".
//
// Failures to read a path wrap ir.ErrIO; everything else wraps ErrParse.
package parse
