package builder

import (
	"regexp"
	"strings"
)

// fieldDelimiter separates tokens in multi-valued CSV fields (author IDs,
// keywords, funding organizations).
const fieldDelimiter = ";"

// splitDelimited splits a multi-valued field on the delimiter, trims each
// token and discards empties, so trailing delimiters and padded entries
// contribute nothing.
func splitDelimited(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, token := range strings.Split(value, fieldDelimiter) {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// validLiteral reports whether a raw cell value should produce a literal
// triple. Whitespace-only cells and the "nan" sentinel that spreadsheet
// exports leave behind are treated as absent.
func validLiteral(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && !strings.EqualFold(trimmed, "nan")
}

// fullNameEntry matches one "Family, Given (12345)" entry from the author
// full names column.
var fullNameEntry = regexp.MustCompile(`(.+?)\s*\((\d+)\)`)

// parseFullNames indexes the author full names column by author ID.
// Entries without a parenthesized numeric ID are ignored.
func parseFullNames(value string) map[string]string {
	out := make(map[string]string)
	for _, entry := range strings.Split(value, fieldDelimiter) {
		m := fullNameEntry.FindStringSubmatch(strings.TrimSpace(entry))
		if m != nil {
			out[strings.TrimSpace(m[2])] = strings.TrimSpace(m[1])
		}
	}
	return out
}

var (
	trailingParenthetical = regexp.MustCompile(`\s*,?\s*\([^)]*\)\s*$`)
	trailingAcronym       = regexp.MustCompile(`\s*,\s*[A-Z]{2,10}\s*$`)
	whitespaceRun         = regexp.MustCompile(`\s+`)
)

// normalizeOrganization cleans a funding organization name: trailing
// parentheticals and comma-separated acronym suffixes are dropped and
// whitespace runs collapse, so "National Science Foundation (NSF)" and
// "National Science Foundation, NSF" converge on one name. Returns "" when
// nothing usable remains.
func normalizeOrganization(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = trailingParenthetical.ReplaceAllString(name, "")
	name = trailingAcronym.ReplaceAllString(name, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))
}
