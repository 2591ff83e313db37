package builder

import (
	"fmt"

	"github.com/google/uuid"
)

// IssueKind classifies a recoverable conversion issue.
type IssueKind string

const (
	// IssueRowSkipped records a row excluded from the graph because its
	// primary identifier column was absent or empty.
	IssueRowSkipped IssueKind = "row_skipped"

	// IssueValueCoercion records a value with an unexpected shape that was
	// stringified instead of typed.
	IssueValueCoercion IssueKind = "value_coercion"
)

// Issue is a single recoverable problem encountered while converting.
type Issue struct {
	// Kind classifies the issue.
	Kind IssueKind
	// Row is the 1-based data row number the issue occurred on.
	Row int
	// Field is the logical field involved, if any.
	Field string
	// Message describes the problem.
	Message string
}

// String renders the issue for logs and CLI output.
func (i Issue) String() string {
	if i.Field != "" {
		return fmt.Sprintf("row %d [%s] %s: %s", i.Row, i.Kind, i.Field, i.Message)
	}
	return fmt.Sprintf("row %d [%s]: %s", i.Row, i.Kind, i.Message)
}

// Report accumulates the outcome of one conversion run. It is returned
// alongside the graph so callers can surface issues; nothing is silently
// swallowed.
type Report struct {
	// RunID uniquely identifies the conversion run.
	RunID string
	// RowsProcessed counts rows that contributed triples.
	RowsProcessed int
	// RowsSkipped counts rows excluded from the graph.
	RowsSkipped int
	// Triples is the size of the resulting graph.
	Triples int
	// Issues lists all recoverable problems in row order.
	Issues []Issue
}

// NewReport creates an empty report with a fresh run ID.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

func (r *Report) skip(row int, message string) {
	r.RowsSkipped++
	r.Issues = append(r.Issues, Issue{Kind: IssueRowSkipped, Row: row, Message: message})
}

func (r *Report) coerce(row int, field, message string) {
	r.Issues = append(r.Issues, Issue{Kind: IssueValueCoercion, Row: row, Field: field, Message: message})
}

// CountByKind returns how many recorded issues have the given kind.
func (r *Report) CountByKind(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// Summary renders a one-line overview for CLI output.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d rows converted, %d skipped, %d triples, %d issues",
		r.RowsProcessed, r.RowsSkipped, r.Triples, len(r.Issues))
}
