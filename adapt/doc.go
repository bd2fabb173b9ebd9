// Package adapt converts definitions documents to definition trees and back.
//
// Adapt builds a tree under a synthetic root: each document field becomes a
// key node; a scalar field gets one leaf child holding its text, an object
// field gets its own fields as children. Field order becomes child order.
//
// Export walks the children of the root (never the root itself) and
// classifies each node by shape. A node with exactly one leaf child writes a
// scalar field. Any other node writes a nested object; its non-leaf children
// are exported into that object and each of its leaf children is written
// into it under the node's own label.
//
// That last rule means a tree edited into a shape Adapt never produces, such
// as a node with two leaf children or a leaf next to key nodes, loses values:
// later writes to the same key replace earlier ones. Export reports every
// such loss as an Ambiguity. With the default PreserveCollisions policy the
// last write wins and the document is still produced; RejectCollisions fails
// with ErrStructuralAmbiguity instead.
package adapt
