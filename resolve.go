package navplace

import (
	"sort"
	"strings"
)

const (
	maxOriginResults      = 8
	maxDestinationResults = 12
)

// Origins returns ranked airport candidates for free-text origin input,
// capped at 8.
//
// A query that itself names a country is treated as "show me all this
// country's airports" and bypasses text matching entirely. Otherwise
// airports are kept on a token match, in catalog order; the per-country
// airport set is small enough that no further scoring is needed.
func (c *Catalog) Origins(query string, opts ...MatchOptions) []Candidate {
	q := normalizeQuery(query)
	opt := firstOption(opts)
	out := []Candidate{}

	if code, ok := c.NormalizeCountry(q); ok {
		for _, p := range c.places {
			if !p.IsAirport() || p.isMilitary() || p.Country != code {
				continue
			}
			out = append(out, newCandidate(p))
			if len(out) == maxOriginResults {
				break
			}
		}
		return out
	}

	for i, p := range c.places {
		if !p.IsAirport() || p.isMilitary() {
			continue
		}
		if !tokensMatch(c.tokens[i], q, opt) {
			continue
		}
		out = append(out, newCandidate(p))
		if len(out) == maxOriginResults {
			break
		}
	}
	return out
}

// Destinations returns ranked cruise port/terminal candidates for free-text
// destination input, capped at 12.
//
// Country inference runs in priority order: the origin hint as a country
// name, the hint's own tokens, then the query itself. The already-chosen
// origin is the strongest signal for which country's ports are relevant, so
// it always wins over the query. An inferred country is a hard filter.
//
// Generic queries — empty text, text containing a configured generic term
// ("크루즈", "terminal", ...), or text that is itself a country name —
// bypass text filtering: a user who only named a country or a category
// wants to see every port in scope.
func (c *Catalog) Destinations(query, originHint string, opts ...MatchOptions) []Candidate {
	q := normalizeQuery(query)
	opt := firstOption(opts)

	generic := q == "" || c.isGenericQuery(q)

	code, haveCountry := c.inferCountry(originHint)
	if !haveCountry {
		if cc, ok := c.NormalizeCountry(q); ok {
			code, haveCountry = cc, true
			generic = true
		} else if !generic {
			code, haveCountry = c.ResolveCountryFromText(q)
		}
	}

	type scoredCandidate struct {
		cand  Candidate
		score int
	}
	results := []scoredCandidate{}

	for i, p := range c.places {
		if !p.IsCruiseTerminal() || p.isMilitary() {
			continue
		}
		if haveCountry && p.Country != code {
			continue
		}
		if !generic && !tokensMatch(c.tokens[i], q, opt) {
			continue
		}
		results = append(results, scoredCandidate{newCandidate(p), specificity(p)})
	}

	// Stable sort: ties keep relative catalog order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]Candidate, 0, min(len(results), maxDestinationResults))
	for _, r := range results {
		out = append(out, r.cand)
		if len(out) == maxDestinationResults {
			break
		}
	}
	return out
}

// inferCountry resolves the origin hint to a country code, first as a
// country name, then through the token-scan fallback.
func (c *Catalog) inferCountry(hint string) (string, bool) {
	h := normalizeQuery(hint)
	if h == "" {
		return "", false
	}
	if code, ok := c.NormalizeCountry(h); ok {
		return code, true
	}
	return c.ResolveCountryFromText(h)
}

// isGenericQuery reports whether the normalized query names only a
// place category rather than a place.
func (c *Catalog) isGenericQuery(q string) bool {
	for _, term := range c.generic {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}

// nameMarkers and localizedMarkers flag places that are unambiguously
// terminal-type, so they outrank places that merely share a city or country.
var (
	nameMarkers      = []string{"cruise", "terminal", "port", "pier"}
	localizedMarkers = []string{"크루즈", "터미널", "항구", "부두"}
)

// specificity scores a place by how explicitly its names mark it as a
// terminal: +2 for a marker in the canonical name, +2 for a localized
// marker in the localized name or keywords.
func specificity(p Place) int {
	score := 0

	name := strings.ToLower(p.Name)
	for _, m := range nameMarkers {
		if strings.Contains(name, m) {
			score += 2
			break
		}
	}

	for _, m := range localizedMarkers {
		if strings.Contains(p.LocalizedName, m) {
			score += 2
			return score
		}
		for _, kw := range p.Keywords {
			if strings.Contains(kw, m) {
				score += 2
				return score
			}
		}
	}
	return score
}
