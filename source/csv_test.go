package source

import (
	"strings"
	"testing"
)

func TestReadRows(t *testing.T) {
	input := `EID,Title,"Author(s) ID"
123,AI in Healthcare,a1;a2
124,"Quoted, Title",a3
`
	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].Number != 1 || rows[1].Number != 2 {
		t.Errorf("row numbers should be 1-based and sequential: %d, %d", rows[0].Number, rows[1].Number)
	}
	if got := rows[0].Get("EID"); got != "123" {
		t.Errorf("EID = %q, want 123", got)
	}
	if got := rows[0].Get("Author(s) ID"); got != "a1;a2" {
		t.Errorf("Author(s) ID = %q", got)
	}
	if got := rows[1].Get("Title"); got != "Quoted, Title" {
		t.Errorf("quoted cell = %q", got)
	}
	if !rows[0].Has("Title") {
		t.Error("Has should report existing columns")
	}
	if rows[0].Has("Missing") {
		t.Error("Has should be false for absent columns")
	}
	if got := rows[0].Get("Missing"); got != "" {
		t.Errorf("Get for absent column = %q, want empty", got)
	}
}

func TestReadRowsPreservesWhitespace(t *testing.T) {
	input := "EID,Title\n123,  padded value  \n"
	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if got := rows[0].Get("Title"); got != "  padded value  " {
		t.Errorf("cell values must be kept verbatim, got %q", got)
	}
}

func TestReadRowsTrimsHeaderAndBOM(t *testing.T) {
	input := "\uFEFFEID , Title\n123,x\n"
	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if got := rows[0].Get("EID"); got != "123" {
		t.Errorf("BOM-prefixed header not usable: %q", got)
	}
	if got := rows[0].Get("Title"); got != "x" {
		t.Errorf("padded header not trimmed: %q", got)
	}
}

func TestReadRowsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"duplicate header", "EID,EID\n1,2\n"},
		{"empty header", "EID,\n1,2\n"},
		{"ragged row", "EID,Title\n123\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadRows(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadRowsHeaderOnly(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("EID,Title\n"))
	if err != nil {
		t.Fatalf("header-only input should not error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}
