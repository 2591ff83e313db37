package builder

import (
	"strings"
	"testing"
)

func TestReportAccounting(t *testing.T) {
	r := NewReport()
	if r.RunID == "" {
		t.Fatal("expected a run ID")
	}

	r.skip(3, "missing identifier")
	r.coerce(5, "year", "not a year")
	r.coerce(7, "cited_by", "not an integer")

	if got := r.CountByKind(IssueRowSkipped); got != 1 {
		t.Errorf("CountByKind(row_skipped) = %d, want 1", got)
	}
	if got := r.CountByKind(IssueValueCoercion); got != 2 {
		t.Errorf("CountByKind(value_coercion) = %d, want 2", got)
	}
	if r.RowsSkipped != 1 {
		t.Errorf("RowsSkipped = %d, want 1", r.RowsSkipped)
	}
}

func TestIssueString(t *testing.T) {
	withField := Issue{Kind: IssueValueCoercion, Row: 5, Field: "year", Message: "bad"}
	if got := withField.String(); !strings.Contains(got, "row 5") || !strings.Contains(got, "year") {
		t.Errorf("unexpected issue rendering: %q", got)
	}
	withoutField := Issue{Kind: IssueRowSkipped, Row: 2, Message: "skipped"}
	if got := withoutField.String(); strings.Contains(got, "[]") {
		t.Errorf("unexpected empty field brackets: %q", got)
	}
}

func TestReportSummary(t *testing.T) {
	r := &Report{RowsProcessed: 10, RowsSkipped: 2, Triples: 150, Issues: make([]Issue, 3)}
	want := "10 rows converted, 2 skipped, 150 triples, 3 issues"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
