package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Format specifies an output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "ttl"

	// FormatRDFXML produces RDF/XML (.xml) output.
	FormatRDFXML Format = "xml"

	// FormatN3 produces Notation3 (.n3) output. The encoder emits the
	// Turtle subset of N3, which every N3 consumer accepts.
	FormatN3 Format = "n3"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "nt"
)

// FormatInfo provides metadata about an output format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extension:   ".xml",
		Description: "RDF/XML - XML syntax for RDF",
	},
	FormatN3: {
		Name:        FormatN3,
		MIMEType:    "text/n3",
		Extension:   ".n3",
		Description: "Notation3 - readable RDF syntax",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Formats returns the supported format identifiers in sorted order.
func Formats() []Format {
	out := make([]Format, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")))
	switch f {
	case "turtle":
		f = FormatTurtle
	case "rdfxml", "rdf-xml":
		f = FormatRDFXML
	case "ntriples", "n-triples":
		f = FormatNTriples
	}
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unsupported format: %s (valid: ttl, xml, n3, nt)", name)
	}
	return f, nil
}
