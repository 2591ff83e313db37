// Package builder converts CSV row records into an RDF graph according to
// a compiled configuration model.
//
// A conversion run owns its graph exclusively: Build returns a fresh graph
// plus a report of non-fatal issues, and re-running on the same model and
// rows always yields an identical triple set. Malformed rows are recorded
// and skipped; only configuration problems abort a run.
package builder
