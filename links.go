package navplace

import (
	"net/url"
	"regexp"
	"sync"
)

// TravelMode selects the routing profile of a directions URL.
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeTransit TravelMode = "transit"
	ModeWalking TravelMode = "walking"
)

// Links is the URL triple handed to the UI for one origin/destination pair.
// Each member is a fully formed, directly clickable Google Maps URL.
type Links struct {
	Transit string
	Driving string
	MapView string
}

const (
	directionsBase = "https://www.google.com/maps/dir/?api=1"
	searchBase     = "https://www.google.com/maps/search/?api=1"
)

// currentLocationRegex recognizes the "start from where I am" sentinel in
// the forms users actually type.
var currentLocationRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*(현\s?위치|현재\s?위치|current\s?location)\s*$`)
})

// IsCurrentLocation reports whether origin text means the user's current
// position rather than a place. Empty text counts: Google Maps treats a
// missing origin as "start here".
func IsCurrentLocation(origin string) bool {
	return origin == "" || currentLocationRegex().MatchString(origin)
}

// DirectionsURL builds a Google Maps directions URL from free-text
// endpoints. A current-location origin is emitted as the Current+Location
// sentinel instead of a query string.
func DirectionsURL(origin, dest string, mode TravelMode) string {
	u := directionsBase
	if IsCurrentLocation(origin) {
		u += "&origin=Current+Location"
	} else {
		u += "&origin=" + url.QueryEscape(origin)
	}
	return u + "&destination=" + url.QueryEscape(dest) + "&travelmode=" + string(mode)
}

// SearchURL builds a Google Maps place-search URL for free text.
func SearchURL(query string) string {
	return searchBase + "&query=" + url.QueryEscape(query)
}

// RouteLinks builds the standard triple for a resolved origin/destination
// pair: transit and driving directions plus a map view of the destination.
func RouteLinks(origin, dest string) Links {
	return Links{
		Transit: DirectionsURL(origin, dest, ModeTransit),
		Driving: DirectionsURL(origin, dest, ModeDriving),
		MapView: SearchURL(dest),
	}
}

// NearbyLinks builds the triple for a category search ("cafe", "pharmacy")
// around an origin. The search phrase travels as the destination so the
// maps app resolves actual nearby results itself.
func NearbyLinks(origin, phrase string) Links {
	query := phrase
	if !IsCurrentLocation(origin) {
		query = origin + " " + phrase
	}
	return Links{
		Transit: DirectionsURL(origin, query, ModeTransit),
		Driving: DirectionsURL(origin, query, ModeDriving),
		MapView: SearchURL(query),
	}
}
