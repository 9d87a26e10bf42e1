package navplace

import (
	"strings"
	"unicode"
)

// normalizeKey canonicalizes alias-table keys and lookups: lowercase, and
// every run of non-letter/digit runes collapses to a single space.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeCountry maps free text (a country's localized name, English name,
// ISO code, or listed alias) to its canonical country code. The lookup is
// case-insensitive and whitespace-normalized. Unknown text reports ok=false;
// it is never an error.
func (c *Catalog) NormalizeCountry(text string) (code string, ok bool) {
	key := normalizeKey(text)
	if key == "" {
		return "", false
	}
	code, ok = c.aliasIndex[key]
	return code, ok
}

// ResolveCountryFromText infers a country from text that is not a country
// name but implies one: an airport, city, or terminal name. It tries
// NormalizeCountry first, then scans every place's token set with the
// bidirectional containment test; the first matching place's country wins.
func (c *Catalog) ResolveCountryFromText(text string) (code string, ok bool) {
	q := normalizeQuery(text)
	if q == "" {
		return "", false
	}

	if code, ok := c.NormalizeCountry(q); ok {
		return code, true
	}

	for i, p := range c.places {
		if tokensMatch(c.tokens[i], q, MatchOptions{}) {
			return p.Country, true
		}
	}
	return "", false
}
