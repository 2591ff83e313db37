package rdf

import (
	"fmt"
	"strings"
)

// Serialize encodes the graph in the requested format. The prefixes map
// (prefix → namespace IRI) drives prefix declarations and IRI compression
// in the prefix-aware formats; N-Triples ignores it.
func Serialize(g *Graph, format Format, prefixes map[string]string) ([]byte, error) {
	switch format {
	case FormatTurtle, FormatN3:
		return encodeTurtle(g, prefixes), nil
	case FormatRDFXML:
		return encodeRDFXML(g, prefixes)
	case FormatNTriples:
		return encodeNTriples(g), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// escapeLiteral escapes special characters for Turtle and N-Triples
// literal syntax.
func escapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// compressIRI rewrites an IRI as prefix:local when a bound namespace is a
// prefix of it and the remainder is a safe local name. Falls back to the
// angle-bracket form.
func compressIRI(iri string, prefixes map[string]string) string {
	best := ""
	bestNS := ""
	for prefix, ns := range prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		// Longest namespace wins so nested namespaces compress correctly.
		if len(ns) > len(bestNS) {
			local := iri[len(ns):]
			if safeLocalName(local) {
				best = prefix + ":" + local
				bestNS = ns
			}
		}
	}
	if best != "" {
		return best
	}
	return "<" + iri + ">"
}

// safeLocalName reports whether a local name can appear unescaped after a
// prefix in Turtle. Conservative: alphanumerics, underscore and hyphen only.
func safeLocalName(local string) bool {
	if local == "" {
		return false
	}
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// splitIRI splits an IRI into namespace and local name at the last '#' or
// '/'. Returns ok=false when no usable split point exists.
func splitIRI(iri string) (ns, local string, ok bool) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return "", "", false
	}
	return iri[:idx+1], iri[idx+1:], true
}
