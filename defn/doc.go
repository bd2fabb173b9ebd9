// Package defn provides the definition tree edited by users and consumed by
// variable interpolation.
//
// A tree has one synthetic root, made with NewRoot, whose label is a display
// name and never part of an exported document or a variable name. Every
// other node is made with New. The two differ only in that marker.
//
// A node's Label is either a mapping key or, for a leaf, a scalar value.
// Trees built from documents keep one invariant: a node that has a leaf child
// has exactly one child. Such a node is a scalar holder; every other non-leaf
// node is a container. See Shape.
//
// Children are owned by exactly one parent. Adding a node elsewhere detaches
// it first. Parent links are back references and own nothing.
package defn
