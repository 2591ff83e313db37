package builder

import "strings"

// PublicationKind is the detected category of the publication venue.
type PublicationKind string

const (
	// KindGeneric is the fallback when no pattern matches.
	KindGeneric PublicationKind = ""
	// KindConference covers conference and symposium proceedings.
	KindConference PublicationKind = "conference"
	// KindJournal covers periodicals.
	KindJournal PublicationKind = "journal"
	// KindBookSeries covers book and lecture-note series.
	KindBookSeries PublicationKind = "book_series"
)

var (
	conferencePatterns = []string{"conference", "conf", "congress", "symposium", "proceedings"}
	journalPatterns    = []string{"journal", "revista", "review", "bulletin", "transactions"}
	bookSeriesPatterns = []string{"lecture notes", "series", "advances in"}
)

// DetectPublicationKind classifies a source title by substring patterns.
// Pure function: it consults nothing but its input, keeping category
// detection decoupled from triple assertion.
func DetectPublicationKind(sourceTitle string) PublicationKind {
	title := strings.ToLower(sourceTitle)
	if title == "" {
		return KindGeneric
	}
	if matchesAny(title, conferencePatterns) {
		return KindConference
	}
	if matchesAny(title, journalPatterns) {
		return KindJournal
	}
	if matchesAny(title, bookSeriesPatterns) {
		return KindBookSeries
	}
	return KindGeneric
}

func matchesAny(title string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}
