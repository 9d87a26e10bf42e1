// Package navplace resolves short, noisy, mixed-language place queries
// against a bundled catalog of airports and cruise terminals.
//
// The catalog is loaded once from embedded data and never mutated, so a
// Catalog is safe for unsynchronized concurrent use. Every resolver is a
// pure function of its inputs: no match is reported as an empty result,
// never as an error.
//
// Example:
//
//	c, err := navplace.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, cand := range c.Destinations("홍콩", "") {
//	    fmt.Println(cand.Label, cand.Value)
//	}
package navplace

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed navplace-data
var bundledData embed.FS

// Place is one catalog entry: an airport or a cruise port/terminal.
// Its kind is derived, not stored; see IsAirport and IsCruiseTerminal.
type Place struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LocalizedName string   `json:"localized_name,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country"`
}

// IsAirport reports whether the place is an airport. Airport ids always
// carry an "airport" marker, so the id alone is decisive.
func (p Place) IsAirport() bool {
	return strings.Contains(p.ID, "airport")
}

// IsCruiseTerminal reports whether the place is a cruise port or terminal.
// Airports and terminals are mutually exclusive.
func (p Place) IsCruiseTerminal() bool {
	if p.IsAirport() {
		return false
	}
	for _, m := range []string{"cruise", "port", "terminal", "pier"} {
		if strings.Contains(p.ID, m) {
			return true
		}
	}
	return strings.Contains(p.LocalizedName, "크루즈") || strings.Contains(p.LocalizedName, "터미널")
}

// militaryRegex identifies naval/military installations, which the catalog
// carries (they are real piers) but no resolver should ever suggest.
var militaryRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)naval|military|air ?base|army|navy|marine corps|해군|공군|육군|해병|군사|군항|항만사령`)
})

func (p Place) isMilitary() bool {
	return militaryRegex().MatchString(p.Name) || militaryRegex().MatchString(p.LocalizedName)
}

// Candidate is a display-ready resolver result. Label prefers the localized
// name; Value is always the romanized Name so downstream URLs stay stable.
type Candidate struct {
	ID      string
	Label   string
	Value   string
	Country string
}

func newCandidate(p Place) Candidate {
	label := p.LocalizedName
	if label == "" {
		label = p.Name
	}
	if p.City != "" {
		label += " · " + p.City
	}
	return Candidate{
		ID:      p.ID,
		Label:   label,
		Value:   p.Name,
		Country: p.Country,
	}
}

// countryEntry is one row of the bundled country alias table.
type countryEntry struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	LocalizedName string   `json:"localized_name"`
	Aliases       []string `json:"aliases,omitempty"`
}

// Category maps a set of vocabulary labels to canonical search keywords.
// The first keyword is the outbound search phrase.
type Category struct {
	Labels   []string `json:"labels"`
	Keywords []string `json:"keywords"`
}

// FallbackPort is a representative port from the static country→ports table
// used to backfill thin related-places results. Fallback entries carry
// synthetic ids and have no corresponding catalog row.
type FallbackPort struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Config contains configuration options for Catalog initialization.
type Config struct {
	GenericTerms          []string // overrides the bundled generic-query term set
	DefaultCategoryPhrase string   // phrase returned when no category matches
}

// Option is a functional option for configuring a Catalog.
type Option func(*Config)

// WithGenericTerms replaces the bundled generic-query term set. Queries
// equal to or containing one of these terms bypass text filtering in
// Destinations.
func WithGenericTerms(terms []string) Option {
	return func(c *Config) {
		c.GenericTerms = terms
	}
}

// WithDefaultCategoryPhrase sets the phrase CategoryPhrase falls back to.
func WithDefaultCategoryPhrase(phrase string) Option {
	return func(c *Config) {
		c.DefaultCategoryPhrase = phrase
	}
}

func defaultConfig() *Config {
	return &Config{
		DefaultCategoryPhrase: "tourist attraction",
	}
}

// Catalog holds the immutable place data and lookup tables.
// Safe for concurrent use after New returns.
type Catalog struct {
	places     []Place
	tokens     [][]string // parallel to places, see buildTokens
	sortKeys   [][]byte   // parallel to places, Korean collation keys of the display labels
	aliasIndex map[string]string
	codes      map[string]bool
	categories []Category
	fallback   map[string][]FallbackPort
	generic    []string
	config     *Config
}

// Singleton pattern for the shared Catalog instance.
var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
	defaultCatalogErr  error
)

// Default returns a shared Catalog, initializing it on first call.
func Default() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = New()
	})
	return defaultCatalog, defaultCatalogErr
}

// New loads the bundled data into a Catalog and validates it. A dataset
// that violates the catalog invariants is a build-time defect, so New
// fails rather than serving partial data.
func New(opts ...Option) (*Catalog, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Catalog{config: cfg}

	if err := loadJSON("navplace-data/places.json", &c.places); err != nil {
		return nil, fmt.Errorf("loading places: %w", err)
	}

	var countries []countryEntry
	if err := loadJSON("navplace-data/countries.json", &countries); err != nil {
		return nil, fmt.Errorf("loading countries: %w", err)
	}
	aliasIndex, codes, err := buildAliasIndex(countries)
	if err != nil {
		return nil, err
	}
	c.aliasIndex = aliasIndex
	c.codes = codes

	if err := loadJSON("navplace-data/categories.json", &c.categories); err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	if err := loadJSON("navplace-data/fallback_ports.json", &c.fallback); err != nil {
		return nil, fmt.Errorf("loading fallback ports: %w", err)
	}

	c.generic = cfg.GenericTerms
	if c.generic == nil {
		if err := loadJSON("navplace-data/generic_terms.json", &c.generic); err != nil {
			return nil, fmt.Errorf("loading generic terms: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.tokens = make([][]string, len(c.places))
	for i, p := range c.places {
		c.tokens[i] = buildTokens(p)
	}

	// A Collator is not safe for concurrent use, so collation keys are
	// precomputed here and the collator never outlives New.
	col := collate.New(language.Korean)
	var buf collate.Buffer
	c.sortKeys = make([][]byte, len(c.places))
	for i, p := range c.places {
		c.sortKeys[i] = append([]byte(nil), col.KeyFromString(&buf, displayLabel(p))...)
		buf.Reset()
	}
	return c, nil
}

func loadJSON(path string, v any) error {
	b, err := bundledData.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// buildAliasIndex flattens the country table into a normalized alias → code
// map, rejecting duplicate keys so two countries can never claim one alias.
func buildAliasIndex(countries []countryEntry) (map[string]string, map[string]bool, error) {
	idx := make(map[string]string, len(countries)*4)
	codes := make(map[string]bool, len(countries))

	for _, co := range countries {
		if co.Code == "" {
			return nil, nil, fmt.Errorf("country %q has no code", co.Name)
		}
		codes[co.Code] = true

		for _, alias := range append([]string{co.Code, co.Name, co.LocalizedName}, co.Aliases...) {
			key := normalizeKey(alias)
			if key == "" {
				continue
			}
			if prev, ok := idx[key]; ok && prev != co.Code {
				return nil, nil, fmt.Errorf("country alias %q maps to both %s and %s", alias, prev, co.Code)
			}
			idx[key] = co.Code
		}
	}
	return idx, codes, nil
}

// validate enforces the catalog invariants: unique non-empty ids, non-empty
// names, every country resolvable, and a usable category table.
func (c *Catalog) validate() error {
	if len(c.places) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(c.places))
	for _, p := range c.places {
		if p.ID == "" {
			return fmt.Errorf("place %q has no id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate place id %q", p.ID)
		}
		seen[p.ID] = true

		if p.Name == "" {
			return fmt.Errorf("place %q has no name", p.ID)
		}
		if !c.codes[p.Country] {
			return fmt.Errorf("place %q has unresolvable country %q", p.ID, p.Country)
		}
	}

	if len(c.categories) == 0 {
		return fmt.Errorf("category table is empty")
	}
	for _, cat := range c.categories {
		if len(cat.Labels) == 0 || len(cat.Keywords) == 0 {
			return fmt.Errorf("category %v needs at least one label and one keyword", cat.Labels)
		}
		for _, kw := range cat.Keywords {
			if kw == "" {
				return fmt.Errorf("category %v has an empty keyword", cat.Labels)
			}
		}
	}

	if c.config.DefaultCategoryPhrase == "" {
		return fmt.Errorf("default category phrase must not be empty")
	}
	return nil
}

// Places returns the catalog contents in load order.
func (c *Catalog) Places() []Place {
	out := make([]Place, len(c.places))
	copy(out, c.places)
	return out
}
