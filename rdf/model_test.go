package rdf

import "testing"

func TestGraphAddDeduplicates(t *testing.T) {
	g := NewGraph()
	tr := Triple{
		S: IRI{Value: "http://example.org/papers/123"},
		P: IRI{Value: "https://schema.org/identifier"},
		O: String("123"),
	}

	if !g.Add(tr) {
		t.Error("first Add should report a new triple")
	}
	if g.Add(tr) {
		t.Error("second Add of the same triple should be a no-op")
	}
	if g.Len() != 1 {
		t.Errorf("expected 1 triple, got %d", g.Len())
	}
	if !g.Has(tr) {
		t.Error("graph should contain the added triple")
	}
}

func TestGraphLiteralAndIRIObjectsDistinct(t *testing.T) {
	g := NewGraph()
	s := IRI{Value: "http://example.org/papers/123"}
	p := IRI{Value: "https://schema.org/sameAs"}

	g.Add(Triple{S: s, P: p, O: String("https://doi.org/10.1234/ai")})
	g.Add(Triple{S: s, P: p, O: IRI{Value: "https://doi.org/10.1234/ai"}})

	if g.Len() != 2 {
		t.Errorf("literal and IRI objects with equal text must remain distinct, got %d triples", g.Len())
	}
}

func TestGraphTriplesDeterministicOrder(t *testing.T) {
	build := func(order []string) []Triple {
		g := NewGraph()
		for _, s := range order {
			g.Add(Triple{S: IRI{Value: s}, P: IRI{Value: "https://schema.org/name"}, O: String("x")})
			g.Add(Triple{S: IRI{Value: s}, P: IRI{Value: "https://schema.org/identifier"}, O: String("y")})
		}
		return g.Triples()
	}

	a := build([]string{"http://example.org/b", "http://example.org/a"})
	b := build([]string{"http://example.org/a", "http://example.org/b"})

	if len(a) != len(b) {
		t.Fatalf("triple counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGraphEqualIgnoresInsertionOrder(t *testing.T) {
	t1 := Triple{S: IRI{Value: "http://example.org/a"}, P: IRI{Value: "https://schema.org/name"}, O: String("A")}
	t2 := Triple{S: IRI{Value: "http://example.org/b"}, P: IRI{Value: "https://schema.org/name"}, O: String("B")}

	g1 := NewGraph()
	g1.Add(t1)
	g1.Add(t2)

	g2 := NewGraph()
	g2.Add(t2)
	g2.Add(t1)

	if !g1.Equal(g2) {
		t.Error("graphs with the same triples must be equal regardless of insertion order")
	}

	g2.Add(Triple{S: IRI{Value: "http://example.org/c"}, P: IRI{Value: "https://schema.org/name"}, O: String("C")})
	if g1.Equal(g2) {
		t.Error("graphs with different triples must not be equal")
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want string
	}{
		{"plain", String("hello"), `"hello"`},
		{"typed", TypedLiteral("2023", "http://www.w3.org/2001/XMLSchema#gYear"), `"2023"^^<http://www.w3.org/2001/XMLSchema#gYear>`},
		{"tagged", LangLiteral("salud", "es"), `"salud"@es`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}
