package rdf

import (
	"fmt"
	"sort"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI reference.
	TermIRI TermKind = iota
	// TermLiteral represents a literal value.
	TermLiteral
)

// Term is a value that can appear in object position of a triple.
// Subjects and predicates are always IRIs in this model; the builder never
// mints blank nodes.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI reference.
type IRI struct {
	// Value is the absolute IRI string.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI in angle-bracket notation.
func (i IRI) String() string { return "<" + i.Value + ">" }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, empty for plain strings.
	Datatype string
	// Lang is the language tag, if any. Mutually exclusive with Datatype.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns an N-Triples style representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// String mints a plain string literal.
func String(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// TypedLiteral mints a literal with a datatype IRI.
func TypedLiteral(lexical, datatype string) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// LangLiteral mints a language-tagged string literal.
func LangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// Triple is a single RDF statement.
type Triple struct {
	// S is the subject.
	S IRI
	// P is the predicate.
	P IRI
	// O is the object, either an IRI or a Literal.
	O Term
}

// String returns the triple in N-Triples style.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.S.String(), t.P.String(), t.O.String())
}

// Graph is an append-only set of triples. It is not safe for concurrent
// mutation; each conversion run owns its graph exclusively.
type Graph struct {
	triples map[Triple]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{triples: make(map[Triple]struct{})}
}

// Add inserts a triple into the graph. Returns true if the triple was not
// already present.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.triples[t]; ok {
		return false
	}
	g.triples[t] = struct{}{}
	return true
}

// Has reports whether the graph contains the triple.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns all triples sorted by subject, predicate, then object.
// The ordering is observably irrelevant to graph equality but keeps
// serialized output and test fixtures reproducible.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].S.Value != out[j].S.Value {
			return out[i].S.Value < out[j].S.Value
		}
		if out[i].P.Value != out[j].P.Value {
			return out[i].P.Value < out[j].P.Value
		}
		return objectSortKey(out[i].O) < objectSortKey(out[j].O)
	})
	return out
}

// Equal reports whether two graphs contain exactly the same triple set.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	for t := range g.triples {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Subjects returns the distinct subject IRIs in sorted order.
func (g *Graph) Subjects() []IRI {
	seen := make(map[string]struct{})
	var out []IRI
	for t := range g.triples {
		if _, ok := seen[t.S.Value]; !ok {
			seen[t.S.Value] = struct{}{}
			out = append(out, t.S)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// objectSortKey orders IRIs before literals sharing the same subject and
// predicate, then lexically.
func objectSortKey(o Term) string {
	if o.Kind() == TermIRI {
		return "0" + o.String()
	}
	return "1" + o.String()
}
