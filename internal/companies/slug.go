package companies

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Characters stripped from names when deriving a code.
const slugStrip = `*+~.()'"!:@`

// Slugify derives a company code from a display name: diacritics folded,
// lowercased, punctuation stripped, spaces replaced with hyphens. The same
// derivation is used at creation and update time so the update key is
// deterministic.
func Slugify(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, strings.TrimSpace(name))
	if err != nil {
		folded = strings.TrimSpace(name)
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case strings.ContainsRune(slugStrip, r):
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
