package navplace

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxQueryLen limits input length to prevent algorithmic complexity attacks
// on edit-distance calculations. Counted in runes to avoid breaking UTF-8.
const maxQueryLen = 256

// maxFuzzyDistance caps MatchOptions.FuzzyDistance; higher distances make
// nearly everything match on short Korean tokens.
const maxFuzzyDistance = 3

// MatchOptions configures the token match predicate.
type MatchOptions struct {
	// FuzzyDistance widens matching with Levenshtein edit distance
	// (0 = disabled, 1-2 recommended for typo tolerance).
	FuzzyDistance int
}

func firstOption(opts []MatchOptions) MatchOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return MatchOptions{}
}

// buildTokens derives the searchable string set for a place: name, localized
// name, city, and each keyword, lowercased, empty fields omitted. Every
// matching step in the package consumes this substrate.
func buildTokens(p Place) []string {
	fields := make([]string, 0, 3+len(p.Keywords))
	fields = append(fields, p.Name, p.LocalizedName, p.City)
	fields = append(fields, p.Keywords...)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// normalizeQuery prepares raw user text for matching: trim, lowercase, and
// rune-truncate to maxQueryLen.
func normalizeQuery(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	if runes := []rune(q); len(runes) > maxQueryLen {
		q = string(runes[:maxQueryLen])
	}
	return q
}

// tokensMatch is the single fuzzy-matching seam of the package. The base
// test is bidirectional substring containment: the query contains a token or
// a token contains the query. That tolerates both truncated queries
// ("하네다") and over-specified ones ("하네다국제공항 도쿄") at the cost of
// occasional false positives on short tokens, which downstream ranking
// absorbs. FuzzyDistance > 0 additionally accepts tokens within the given
// edit distance.
//
// The query must already be normalized (see normalizeQuery). An empty query
// matches nothing.
func tokensMatch(tokens []string, query string, opts MatchOptions) bool {
	if query == "" {
		return false
	}

	for _, tok := range tokens {
		if strings.Contains(tok, query) || strings.Contains(query, tok) {
			return true
		}
	}

	if opts.FuzzyDistance > 0 {
		dist := opts.FuzzyDistance
		if dist > maxFuzzyDistance {
			dist = maxFuzzyDistance
		}
		for _, tok := range tokens {
			// Tokens of 1-2 runes are too short for edit distance to mean
			// anything.
			if len([]rune(tok)) <= 2 {
				continue
			}
			if levenshtein.ComputeDistance(tok, query) <= dist {
				return true
			}
		}
	}
	return false
}
