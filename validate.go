package navplace

import (
	"fmt"
	"strings"
)

// Integrity thresholds for the bundled dataset.
const (
	minPlaceCount   = 40
	minCountryCount = 20
)

// validationQuery defines a known query for functional validation. These
// are chosen to be unambiguous for the current matching rules.
type validationQuery struct {
	query       string
	hint        string
	wantValue   string
	wantCountry string
}

// knownOrigins must resolve through Origins.
var knownOrigins = []validationQuery{
	{query: "인천", wantValue: "Incheon International Airport", wantCountry: "KR"},
	{query: "하네다", wantValue: "Haneda Airport", wantCountry: "JP"},
	{query: "JFK", wantValue: "John F. Kennedy International Airport", wantCountry: "US"},
}

// knownDestinations must resolve through Destinations.
var knownDestinations = []validationQuery{
	{query: "홍콩", wantValue: "Kai Tak Cruise Terminal", wantCountry: "HK"},
	{query: "터미널", hint: "일본", wantValue: "Yokohama Osanbashi Pier", wantCountry: "JP"},
	{query: "오산바시", wantValue: "Yokohama Osanbashi Pier", wantCountry: "JP"},
}

// ValidateData loads the bundled catalog and performs integrity and
// functional checks. Returns an error describing the first failure.
func ValidateData() error {
	c, err := New()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if len(c.places) < minPlaceCount {
		return fmt.Errorf("place count too low: got %d, want >= %d", len(c.places), minPlaceCount)
	}
	fmt.Printf("      Place count: %d (OK)\n", len(c.places))

	if len(c.codes) < minCountryCount {
		return fmt.Errorf("country count too low: got %d, want >= %d", len(c.codes), minCountryCount)
	}
	fmt.Printf("      Country count: %d (OK)\n", len(c.codes))

	airports, terminals := 0, 0
	for _, p := range c.places {
		switch {
		case p.IsAirport():
			airports++
		case p.IsCruiseTerminal():
			terminals++
		default:
			return fmt.Errorf("place %q is neither airport nor cruise terminal", p.ID)
		}
	}
	fmt.Printf("      Kinds: %d airports, %d terminals (OK)\n", airports, terminals)

	fmt.Printf("      Origin queries: ")
	for _, tc := range knownOrigins {
		if err := checkResolved(c.Origins(tc.query), tc); err != nil {
			return fmt.Errorf("origins(%q): %w", tc.query, err)
		}
	}
	fmt.Printf("%d OK\n", len(knownOrigins))

	fmt.Printf("      Destination queries: ")
	for _, tc := range knownDestinations {
		if err := checkResolved(c.Destinations(tc.query, tc.hint), tc); err != nil {
			return fmt.Errorf("destinations(%q, %q): %w", tc.query, tc.hint, err)
		}
	}
	fmt.Printf("%d OK\n", len(knownDestinations))

	return nil
}

func checkResolved(got []Candidate, tc validationQuery) error {
	for _, cand := range got {
		if cand.Value == tc.wantValue && cand.Country == tc.wantCountry {
			return nil
		}
	}
	labels := make([]string, 0, len(got))
	for _, cand := range got {
		labels = append(labels, cand.Value)
	}
	return fmt.Errorf("want %q (%s), got [%s]", tc.wantValue, tc.wantCountry, strings.Join(labels, ", "))
}
