package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/care-finder/internal/types"
	"golang.org/x/sync/errgroup"
)

const defaultMapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxResolver resolves addresses through the Mapbox geocoding API,
// degrading to the city/county fallback tiers when the API returns no
// features for an address.
type MapboxResolver struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewMapboxResolver creates a resolver with the given access token.
func NewMapboxResolver(token string) *MapboxResolver {
	return &MapboxResolver{
		token:      token,
		baseURL:    defaultMapboxBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewMapboxResolverWithBaseURL creates a resolver pointed at a custom API
// base URL. Used in tests against a stub server.
func NewMapboxResolverWithBaseURL(token, baseURL string) *MapboxResolver {
	r := NewMapboxResolver(token)
	r.baseURL = baseURL
	return r
}

// mapboxResponse is the subset of the geocoding response we consume.
type mapboxResponse struct {
	Features []struct {
		Center     []float64 `json:"center"`
		PlaceName  string    `json:"place_name"`
		Properties struct {
			Accuracy string `json:"accuracy"`
		} `json:"properties"`
	} `json:"features"`
}

// Resolve geocodes one address. An empty address or an address the API
// cannot place resolves through the fallback tiers instead of failing;
// transport and decode failures are returned as errors.
func (r *MapboxResolver) Resolve(ctx context.Context, address types.Address) (Coordinates, error) {
	line := addressLine(address)
	if line == "" {
		return Coordinates{
			Latitude:  countyCenter.Latitude,
			Longitude: countyCenter.Longitude,
			Accuracy:  AccuracyFallback,
		}, nil
	}

	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s&limit=1&country=US&region=NY",
		r.baseURL, url.PathEscape(line), url.QueryEscape(r.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, &ResolveError{Address: line, Cause: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, &ResolveError{Address: line, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, &ResolveError{Address: line, Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var decoded mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Coordinates{}, &ResolveError{Address: line, Cause: err}
	}

	if len(decoded.Features) == 0 || len(decoded.Features[0].Center) < 2 {
		return FallbackCoordinates(address), nil
	}

	feature := decoded.Features[0]
	accuracy := feature.Properties.Accuracy
	if accuracy == "" {
		accuracy = AccuracyGeocoded
	}
	return Coordinates{
		Latitude:  feature.Center[1],
		Longitude: feature.Center[0],
		Accuracy:  accuracy,
	}, nil
}

// ResolveBatch geocodes a set of addresses keyed by provider id, with
// bounded concurrency. The first resolver error cancels the batch.
func ResolveBatch(ctx context.Context, resolver Resolver, addresses map[string]types.Address) (map[string]Coordinates, error) {
	results := make(map[string]Coordinates, len(addresses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	type resolved struct {
		id     string
		coords Coordinates
	}
	out := make(chan resolved, len(addresses))

	for id, address := range addresses {
		g.Go(func() error {
			coords, err := resolver.Resolve(ctx, address)
			if err != nil {
				return err
			}
			out <- resolved{id: id, coords: coords}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(out)

	for r := range out {
		results[r.id] = r.coords
	}
	return results, nil
}

// ResolveError represents a geocoding transport or decode failure.
type ResolveError struct {
	Address string
	Cause   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("geocode %q: %v", e.Address, e.Cause)
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}
