// Package ir provides the document model that definition trees are adapted
// from and exported to.
//
// # Overview
//
// A definitions document is an ordered mapping of string keys to values, where
// a value is either a scalar (text) or another ordered mapping. The package
// represents both with a single Node type:
//
//   - StringType: a scalar; its text is in the String field
//   - ObjectType: an ordered mapping; Fields[i] is the key of Values[i]
//
// Numbers, booleans and null values from source documents are carried as
// their text. Sequences are not part of the model.
//
// # IR Structure Constraints
//
// For ObjectType nodes there are always as many Fields as Values, and each key
// occurs at most once. Field order is significant: it is the order in which
// the document was read and the order in which it is written.
//
// Mutators (Set, PutObject, Delete) maintain the Parent, ParentIndex and
// ParentField back links of the values they place. The back links do not own
// anything; a document is owned from its root downwards.
//
// # Creating Nodes
//
//	doc := ir.FromKeyVals(
//	    ir.KeyVal{Key: "db", Val: ir.FromKeyVals(
//	        ir.KeyVal{Key: "host", Val: ir.FromString("localhost")},
//	    )},
//	)
//	doc.PutObject("app").Set("title", ir.FromString("Untitled"))
//
// # Paths
//
// Path returns a JSONPath-like location such as "$.db.host"; GetPath resolves
// one. Keys containing path syntax are single quoted: "$.'a.b'".
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Clone a document to hand it to
// another goroutine.
package ir
