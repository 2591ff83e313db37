package builder

import (
	"reflect"
	"testing"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "one", []string{"one"}},
		{"padded", "a1; a2 ;a3", []string{"a1", "a2", "a3"}},
		{"trailing delimiter", "a;b;", []string{"a", "b"}},
		{"only delimiters", " ; ; ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitDelimited(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitDelimited(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"value", true},
		{" padded ", true},
		{"0", true},
		{"", false},
		{"   ", false},
		{"nan", false},
		{"NaN", false},
		{"NAN", false},
		{" nan ", false},
		{"nancy", true},
	}
	for _, tt := range tests {
		if got := validLiteral(tt.input); got != tt.want {
			t.Errorf("validLiteral(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFullNames(t *testing.T) {
	got := parseFullNames("Smith, John (57201); Doe, Alice (57203); Broken Entry")
	want := map[string]string{
		"57201": "Smith, John",
		"57203": "Doe, Alice",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseFullNames = %v, want %v", got, want)
	}
}

func TestNormalizeOrganization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Wellcome Trust", "Wellcome Trust"},
		{"parenthetical", "National Science Foundation (NSF)", "National Science Foundation"},
		{"comma acronym", "National Science Foundation, NSF", "National Science Foundation"},
		{"comma and parenthetical", "European Research Council, (ERC)", "European Research Council"},
		{"whitespace runs", "  Deutsche   Forschungsgemeinschaft ", "Deutsche Forschungsgemeinschaft"},
		{"lowercase suffix kept", "University of Oslo, Norway", "University of Oslo, Norway"},
		{"empty", "   ", ""},
		{"only parenthetical", "(NSF)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeOrganization(tt.input); got != tt.want {
				t.Errorf("normalizeOrganization(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
