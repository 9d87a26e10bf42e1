package navplace

import "strings"

// CategoryPhrase maps free text naming a place category ("카페", "편의점",
// named chains, ...) to a canonical map-search phrase. It matches by
// substring containment over the category vocabulary and returns the first
// keyword of the matched category. Text matching nothing falls back to the
// configured default phrase — the result is never empty, because it backs a
// "nearby" action that must always produce something.
func (c *Catalog) CategoryPhrase(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t != "" {
		for _, cat := range c.categories {
			for _, label := range cat.Labels {
				if strings.Contains(t, strings.ToLower(label)) {
					return cat.Keywords[0]
				}
			}
		}
	}
	return c.config.DefaultCategoryPhrase
}
