package vocabulary

import (
	"strings"
	"unicode"
)

// accentFold maps the accented characters that appear in Scopus exports of
// Spanish-language metadata to their ASCII equivalents.
var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
)

// Slug normalizes free text into a token safe for use as the local part of
// an IRI. Accents are folded, punctuation is dropped, runs of whitespace
// become single underscores and the result is lowercased.
//
// The same input always yields the same slug, so subjects minted from
// repeated tokens converge on one IRI. Returns "" when nothing usable
// remains.
func Slug(text string) string {
	text = accentFold.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	lastUnderscore := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-':
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		case unicode.IsSpace(r) || r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		default:
			// Punctuation and anything non-ASCII is dropped.
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}

// EntityIRI mints an entity IRI under the configured base namespace from an
// already-slugged local token. Returns "" when the token is empty so callers
// can treat unusable identifiers as missing.
func EntityIRI(base, token string) string {
	if token == "" {
		return ""
	}
	if !strings.HasSuffix(base, "/") && !strings.HasSuffix(base, "#") {
		base += "/"
	}
	return base + token
}
