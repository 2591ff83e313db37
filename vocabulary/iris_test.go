package vocabulary

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain identifier", "85123456789", "85123456789"},
		{"lowercases", "AI-Healthcare", "ai-healthcare"},
		{"whitespace to underscore", "Revista de Medicina", "revista_de_medicina"},
		{"accents folded", "Investigación Clínica", "investigacion_clinica"},
		{"punctuation dropped", "Machine Learning: A Review (2nd ed.)", "machine_learning_a_review_2nd_ed"},
		{"underscore runs collapsed", "a  __  b", "a_b"},
		{"no trailing underscore", "token; ", "token"},
		{"no leading underscore", " ; token", "token"},
		{"empty", "", ""},
		{"only punctuation", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{"Pérez, J. (57190)", "deep learning", "10.1234/ai"}
	for _, in := range inputs {
		first := Slug(in)
		if second := Slug(first); second != first {
			t.Errorf("Slug not idempotent for %q: %q -> %q", in, first, second)
		}
	}
}

func TestEntityIRI(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		token string
		want  string
	}{
		{"adds slash separator", "http://example.org/papers", "123", "http://example.org/papers/123"},
		{"keeps trailing slash", "http://example.org/papers/", "123", "http://example.org/papers/123"},
		{"keeps hash separator", "http://example.org/papers#", "123", "http://example.org/papers#123"},
		{"empty token", "http://example.org/papers/", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EntityIRI(tt.base, tt.token); got != tt.want {
				t.Errorf("EntityIRI(%q, %q) = %q, want %q", tt.base, tt.token, got, tt.want)
			}
		})
	}
}
