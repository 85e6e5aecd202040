// Package geo resolves provider addresses to map coordinates. Geocoding is
// an external service boundary: the directory only depends on the Resolver
// contract and its tiered fallback accuracy labels, never on a particular
// geocoding vendor.
package geo

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/jonathan/care-finder/internal/types"
)

// Accuracy tiers, from best to worst. Consumers can use the tier to decide
// how much to trust a pin position.
const (
	AccuracyGeocoded       = "geocoded"
	AccuracyCityFallback   = "city_fallback"
	AccuracyCountyFallback = "county_fallback"
	AccuracyFallback       = "fallback"
)

// Coordinates is a resolved map position with its accuracy tier.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  string  `json:"accuracy"`
}

// Resolver resolves an address to coordinates. Implementations degrade to
// fallback tiers rather than failing when the address cannot be resolved
// precisely; an error means the resolver itself could not operate.
type Resolver interface {
	Resolve(ctx context.Context, address types.Address) (Coordinates, error)
}

// countyCenter is the approximate center of Oneida County, NY — the
// bottom-tier fallback position.
var countyCenter = Coordinates{Latitude: 43.2081, Longitude: -75.4557, Accuracy: AccuracyCountyFallback}

// cityFallback pairs a known locality name (lower-cased) with approximate
// city-center coordinates used when precise geocoding is unavailable.
type cityFallback struct {
	city   string
	coords Coordinates
}

// cityFallbacks is consulted in order; the list position breaks ties when an
// address mentions more than one known city (street names like "Oneida St"
// are common in the county).
var cityFallbacks = []cityFallback{
	{"utica", Coordinates{Latitude: 43.1009, Longitude: -75.2326, Accuracy: AccuracyCityFallback}},
	{"rome", Coordinates{Latitude: 43.2128, Longitude: -75.4557, Accuracy: AccuracyCityFallback}},
	{"new hartford", Coordinates{Latitude: 43.0731, Longitude: -75.2875, Accuracy: AccuracyCityFallback}},
	{"oneida", Coordinates{Latitude: 43.0923, Longitude: -75.6516, Accuracy: AccuracyCityFallback}},
}

// FallbackCoordinates resolves an address using only the city fallback
// table, degrading to the county center. It never fails; this is the
// behavior used when no geocoding service is configured. The locality field
// is matched before the full address line so a street name never overrides
// the city the provider is actually in.
func FallbackCoordinates(address types.Address) Coordinates {
	locality := strings.ToLower(address.AddressLocality)
	for _, fb := range cityFallbacks {
		if strings.Contains(locality, fb.city) {
			return fb.coords
		}
	}

	haystack := strings.ToLower(addressLine(address))
	for _, fb := range cityFallbacks {
		if strings.Contains(haystack, fb.city) {
			return fb.coords
		}
	}
	return countyCenter
}

// Jitter returns a small deterministic offset derived from the provider id,
// so co-located pins do not stack exactly on top of each other. The same id
// always yields the same offset.
func Jitter(id string) (latOffset, lonOffset float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum64()

	// Two independent 16-bit lanes mapped onto ±0.005 degrees.
	latLane := float64(sum&0xFFFF)/0xFFFF - 0.5
	lonLane := float64((sum>>16)&0xFFFF)/0xFFFF - 0.5
	return latLane * 0.01, lonLane * 0.01
}

// addressLine joins the populated address fields into one search string.
func addressLine(address types.Address) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{address.StreetAddress, address.AddressLocality, address.AddressRegion, address.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// StaticResolver is a Resolver that uses only the fallback tables. Used
// when no geocoding token is configured, and as a test double.
type StaticResolver struct{}

// Resolve implements Resolver using FallbackCoordinates.
func (StaticResolver) Resolve(_ context.Context, address types.Address) (Coordinates, error) {
	return FallbackCoordinates(address), nil
}
