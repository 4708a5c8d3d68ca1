package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes text and strips combining marks so that accented
// and unaccented spellings compare equal.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text into comparable tokens: diacritics folded,
// lowercased, punctuation stripped, whitespace collapsed. Deterministic and
// locale-independent. Tokens that normalize to nothing (pure punctuation)
// are dropped.
func Normalize(text string) []string {
	folded, _, err := transform.String(foldDiacritics, text)
	if err != nil {
		folded = text
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '\'':
			// Apostrophes carry no weight for matching: "don't" == "dont".
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

// NormalizeString canonicalizes text and rejoins the tokens with single
// spaces, the form the fuzzy scorer compares.
func NormalizeString(text string) string {
	return strings.Join(Normalize(text), " ")
}
