package navplace

import (
	"strings"
	"testing"
)

func TestBuildTokens(t *testing.T) {
	p := Place{
		ID:            "hnd_airport",
		Name:          "Haneda Airport",
		LocalizedName: "하네다 공항",
		Keywords:      []string{"하네다국제공항", "하네다", "HND"},
		City:          "Tokyo",
		Country:       "JP",
	}
	got := buildTokens(p)
	want := []string{"haneda airport", "하네다 공항", "tokyo", "하네다국제공항", "하네다", "hnd"}
	if len(got) != len(want) {
		t.Fatalf("buildTokens returned %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildTokensSkipsEmptyFields(t *testing.T) {
	p := Place{ID: "x", Name: "China Ferry", Country: "HK"}
	got := buildTokens(p)
	if len(got) != 1 || got[0] != "china ferry" {
		t.Errorf("buildTokens = %v, want [china ferry]", got)
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Haneda Airport ", "haneda airport"},
		{"하네다", "하네다"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := normalizeQuery(tc.in); got != tc.want {
			t.Errorf("normalizeQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeQueryTruncatesByRune(t *testing.T) {
	long := strings.Repeat("가", maxQueryLen+50)
	got := normalizeQuery(long)
	if n := len([]rune(got)); n != maxQueryLen {
		t.Errorf("truncated length = %d runes, want %d", n, maxQueryLen)
	}
	// Truncation must never split a multi-byte rune.
	if !strings.HasSuffix(got, "가") {
		t.Error("truncated query ends mid-rune")
	}
}

func TestTokensMatch(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		query  string
		opts   MatchOptions
		want   bool
	}{
		{"token contains query", []string{"haneda airport"}, "haneda", MatchOptions{}, true},
		{"query contains token", []string{"하네다"}, "하네다국제공항 도쿄", MatchOptions{}, true},
		{"no overlap", []string{"haneda airport"}, "incheon", MatchOptions{}, false},
		{"empty query never matches", []string{"haneda airport"}, "", MatchOptions{FuzzyDistance: 3}, false},
		{"empty token set", nil, "haneda", MatchOptions{}, false},
		{"fuzzy off rejects near miss", []string{"santorini"}, "santorni", MatchOptions{}, false},
		{"fuzzy accepts within distance", []string{"santorini"}, "santorni", MatchOptions{FuzzyDistance: 1}, true},
		{"fuzzy korean typo", []string{"간사이공항"}, "간사이공힝", MatchOptions{FuzzyDistance: 1}, true},
		{"distance capped", []string{"abcdefgh"}, "zzzzzzzz", MatchOptions{FuzzyDistance: 99}, false},
		{"capped distance still allows 3 edits", []string{"abcdefgh"}, "abcdezzz", MatchOptions{FuzzyDistance: 99}, true},
		{"short tokens skip fuzzy", []string{"ab"}, "xy", MatchOptions{FuzzyDistance: 3}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tokensMatch(tc.tokens, tc.query, tc.opts); got != tc.want {
				t.Errorf("tokensMatch(%v, %q, %+v) = %v, want %v",
					tc.tokens, tc.query, tc.opts, got, tc.want)
			}
		})
	}
}

func TestFirstOption(t *testing.T) {
	if got := firstOption(nil); got.FuzzyDistance != 0 {
		t.Errorf("firstOption(nil).FuzzyDistance = %d, want 0", got.FuzzyDistance)
	}
	if got := firstOption([]MatchOptions{{FuzzyDistance: 2}, {FuzzyDistance: 5}}); got.FuzzyDistance != 2 {
		t.Errorf("firstOption picks %d, want first option (2)", got.FuzzyDistance)
	}
}
