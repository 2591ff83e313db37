// Package rdf provides the in-memory triple graph the converter builds and
// its textual serializations (Turtle, RDF/XML, Notation3, N-Triples).
//
// The graph is a set: adding a triple twice is a no-op, and two graphs are
// equal when they contain the same triples regardless of insertion order.
// Triples() returns a deterministically sorted slice so serialized output
// is reproducible across runs.
package rdf
