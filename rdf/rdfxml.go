package rdf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/bibgraph/vocabulary"
)

// encodeRDFXML serializes the graph as RDF/XML: one rdf:Description element
// per subject. Predicate IRIs must split into a namespace and an XML name;
// namespaces without a configured prefix get a generated nsN prefix.
func encodeRDFXML(g *Graph, prefixes map[string]string) ([]byte, error) {
	ns := newNamespaceTable(prefixes)

	// Resolve every predicate up front so namespace declarations are
	// complete before the root element is written.
	type qname struct{ prefix, local string }
	qnames := make(map[string]qname)
	for _, t := range g.Triples() {
		if t.P.Value == vocabulary.RDFType {
			continue
		}
		if _, ok := qnames[t.P.Value]; ok {
			continue
		}
		space, local, ok := splitIRI(t.P.Value)
		if !ok || !xmlName(local) {
			return nil, fmt.Errorf("predicate %s cannot be serialized as RDF/XML", t.P.Value)
		}
		qnames[t.P.Value] = qname{prefix: ns.prefixFor(space), local: local}
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	sb.WriteString("<rdf:RDF")
	for _, decl := range ns.declarations() {
		fmt.Fprintf(&sb, "\n  xmlns:%s=\"%s\"", decl.prefix, xmlEscape(decl.namespace))
	}
	sb.WriteString(">\n")

	bySubject := groupBySubject(g)
	for _, sub := range g.Subjects() {
		fmt.Fprintf(&sb, "  <rdf:Description rdf:about=\"%s\">\n", xmlEscape(sub.Value))
		for _, t := range bySubject[sub.Value] {
			if t.P.Value == vocabulary.RDFType {
				if obj, ok := t.O.(IRI); ok {
					fmt.Fprintf(&sb, "    <rdf:type rdf:resource=\"%s\"/>\n", xmlEscape(obj.Value))
					continue
				}
			}
			q := qnames[t.P.Value]
			tag := q.prefix + ":" + q.local
			switch obj := t.O.(type) {
			case IRI:
				fmt.Fprintf(&sb, "    <%s rdf:resource=\"%s\"/>\n", tag, xmlEscape(obj.Value))
			case Literal:
				attr := ""
				if obj.Lang != "" {
					attr = fmt.Sprintf(" xml:lang=\"%s\"", obj.Lang)
				} else if obj.Datatype != "" {
					attr = fmt.Sprintf(" rdf:datatype=\"%s\"", xmlEscape(obj.Datatype))
				}
				fmt.Fprintf(&sb, "    <%s%s>%s</%s>\n", tag, attr, xmlEscape(obj.Lexical), tag)
			}
		}
		sb.WriteString("  </rdf:Description>\n")
	}

	sb.WriteString("</rdf:RDF>\n")
	return []byte(sb.String()), nil
}

// namespaceTable assigns XML prefixes to namespace IRIs, preferring the
// configured bindings and generating nsN prefixes for the rest.
type namespaceTable struct {
	byNamespace map[string]string
	generated   int
}

func newNamespaceTable(prefixes map[string]string) *namespaceTable {
	t := &namespaceTable{byNamespace: make(map[string]string)}
	t.byNamespace[vocabulary.RDFNamespace] = "rdf"

	// Deterministic assignment: iterate configured prefixes in sorted order.
	names := make([]string, 0, len(prefixes))
	for p := range prefixes {
		names = append(names, p)
	}
	sort.Strings(names)
	for _, p := range names {
		ns := prefixes[p]
		if _, taken := t.byNamespace[ns]; !taken && p != "rdf" && xmlName(p) {
			t.byNamespace[ns] = p
		}
	}
	return t
}

func (t *namespaceTable) prefixFor(namespace string) string {
	if p, ok := t.byNamespace[namespace]; ok {
		return p
	}
	t.generated++
	p := fmt.Sprintf("ns%d", t.generated)
	t.byNamespace[namespace] = p
	return p
}

type nsDecl struct{ prefix, namespace string }

func (t *namespaceTable) declarations() []nsDecl {
	out := make([]nsDecl, 0, len(t.byNamespace))
	for ns, p := range t.byNamespace {
		out = append(out, nsDecl{prefix: p, namespace: ns})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].prefix < out[j].prefix })
	return out
}

// xmlName reports whether s is usable as an XML element or prefix name.
func xmlName(s string) bool {
	if s == "" {
		return false
	}
	if c := s[0]; c >= '0' && c <= '9' || c == '-' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		default:
			return false
		}
	}
	return true
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
