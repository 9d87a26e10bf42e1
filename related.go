package navplace

import (
	"bytes"
	"sort"
	"strings"
)

// defaultRelatedLimit caps RelatedPlaces when the caller does not.
const defaultRelatedLimit = 12

// backfillFloor is the result count below which the static country→ports
// table supplements a thin primary result set.
const backfillFloor = 6

// RelatedQuery narrows the supplementary place list. All fields are
// optional free text.
type RelatedQuery struct {
	Country  string // country name/alias or text implying one
	CityHint string // city name fragment
	Query    string // raw destination text
	Limit    int    // result cap; defaults to 12 when <= 0
}

// RelatedPlaces returns loose "you might also mean" suggestions. Unlike
// Destinations it filters progressively instead of scoring: country, then
// city hint, then query text. Matches sort by the precomputed Korean
// collation key of their display label, so the list reads as an
// alphabetically sensible menu rather than a ranking. Results are
// deduplicated by id. When fewer than min(6, limit) places survive and a
// country is known, representative ports from the static fallback table are
// appended under synthetic "fallback-" ids, skipping labels already present.
func (c *Catalog) RelatedPlaces(q RelatedQuery) []Candidate {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	code, haveCountry := "", false
	if strings.TrimSpace(q.Country) != "" {
		code, haveCountry = c.ResolveCountryFromText(q.Country)
	}
	cityHint := normalizeQuery(q.CityHint)
	text := normalizeQuery(q.Query)

	matched := []int{}
	for i, p := range c.places {
		if p.isMilitary() {
			continue
		}
		if haveCountry && p.Country != code {
			continue
		}
		if cityHint != "" && !tokensMatch(c.tokens[i], cityHint, MatchOptions{}) {
			continue
		}
		if text != "" && !tokensMatch(c.tokens[i], text, MatchOptions{}) {
			continue
		}
		matched = append(matched, i)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return bytes.Compare(c.sortKeys[matched[i]], c.sortKeys[matched[j]]) < 0
	})

	seen := make(map[string]bool, len(matched))
	out := []Candidate{}
	for _, idx := range matched {
		p := c.places[idx]
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, newCandidate(p))
		if len(out) >= limit {
			break
		}
	}

	floor := backfillFloor
	if limit < floor {
		floor = limit
	}
	if len(out) < floor && haveCountry {
		out = c.backfill(out, code, limit)
	}
	return out
}

func displayLabel(p Place) string {
	if p.LocalizedName != "" {
		return p.LocalizedName
	}
	return p.Name
}

// backfill appends fallback-table ports for a country, skipping any whose
// label is already represented in the result set.
func (c *Catalog) backfill(out []Candidate, code string, limit int) []Candidate {
	for _, fp := range c.fallback[code] {
		if len(out) >= limit {
			break
		}
		duplicate := false
		for _, existing := range out {
			if strings.Contains(existing.Label, fp.Label) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		out = append(out, Candidate{
			ID:    "fallback-" + fp.Value,
			Label: fp.Label,
			Value: fp.Value,
		})
	}
	return out
}
