// Package vocabulary provides standard RDF vocabulary IRIs and IRI
// minting helpers for bibliographic entities.
//
// Internal code works with prefixed names (e.g. "schema:author") that are
// resolved through the configured namespace bindings; the constants here
// cover the handful of terms the builder asserts unconditionally, such as
// rdf:type and the XSD datatypes.
package vocabulary
