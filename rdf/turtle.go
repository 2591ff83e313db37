package rdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/bibgraph/vocabulary"
)

// encodeTurtle serializes the graph as Turtle: a sorted prefix header, then
// one block per subject with rdf:type assertions first (as "a").
func encodeTurtle(g *Graph, prefixes map[string]string) []byte {
	var sb strings.Builder

	names := make([]string, 0, len(prefixes))
	for p := range prefixes {
		names = append(names, p)
	}
	sort.Strings(names)
	for _, p := range names {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p, prefixes[p])
	}
	if len(names) > 0 {
		sb.WriteString("\n")
	}

	bySubject := groupBySubject(g)
	for i, sub := range g.Subjects() {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeSubjectTurtle(&sb, sub, bySubject[sub.Value], prefixes)
	}

	return []byte(sb.String())
}

// groupBySubject buckets the graph's sorted triples by subject IRI.
func groupBySubject(g *Graph) map[string][]Triple {
	out := make(map[string][]Triple)
	for _, t := range g.Triples() {
		out[t.S.Value] = append(out[t.S.Value], t)
	}
	return out
}

func writeSubjectTurtle(sb *strings.Builder, subject IRI, triples []Triple, prefixes map[string]string) {
	// rdf:type first, then remaining predicates in sorted order.
	var types, rest []Triple
	for _, t := range triples {
		if t.P.Value == vocabulary.RDFType {
			types = append(types, t)
		} else {
			rest = append(rest, t)
		}
	}

	fmt.Fprintf(sb, "%s\n", compressIRI(subject.Value, prefixes))

	total := len(types) + len(rest)
	written := 0
	for _, t := range types {
		written++
		fmt.Fprintf(sb, "    a %s%s\n", turtleObject(t.O, prefixes), terminator(written, total))
	}
	for _, t := range rest {
		written++
		fmt.Fprintf(sb, "    %s %s%s\n", compressIRI(t.P.Value, prefixes), turtleObject(t.O, prefixes), terminator(written, total))
	}
}

func terminator(written, total int) string {
	if written == total {
		return " ."
	}
	return " ;"
}

// turtleObject renders an object term in Turtle syntax with prefix
// compression for IRIs and datatypes.
func turtleObject(o Term, prefixes map[string]string) string {
	switch v := o.(type) {
	case IRI:
		return compressIRI(v.Value, prefixes)
	case Literal:
		lex := fmt.Sprintf("\"%s\"", escapeLiteral(v.Lexical))
		if v.Lang != "" {
			return lex + "@" + v.Lang
		}
		if v.Datatype != "" {
			return lex + "^^" + compressIRI(v.Datatype, prefixes)
		}
		return lex
	default:
		return o.String()
	}
}
