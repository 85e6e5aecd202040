package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/care-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCoordinates_CityTable(t *testing.T) {
	tests := []struct {
		locality string
		wantLat  float64
		wantTier string
	}{
		{"Utica", 43.1009, AccuracyCityFallback},
		{"Rome", 43.2128, AccuracyCityFallback},
		{"New Hartford", 43.0731, AccuracyCityFallback},
		{"Syracuse", 43.2081, AccuracyCountyFallback},
		{"", 43.2081, AccuracyCountyFallback},
	}

	for _, tt := range tests {
		t.Run(tt.locality, func(t *testing.T) {
			got := FallbackCoordinates(types.Address{AddressLocality: tt.locality})
			assert.InDelta(t, tt.wantLat, got.Latitude, 0.0001)
			assert.Equal(t, tt.wantTier, got.Accuracy)
		})
	}
}

func TestFallbackCoordinates_MatchesCityInStreetAddress(t *testing.T) {
	got := FallbackCoordinates(types.Address{StreetAddress: "100 Rome Ave"})
	assert.Equal(t, AccuracyCityFallback, got.Accuracy)
}

func TestFallbackCoordinates_LocalityWinsOverStreetName(t *testing.T) {
	// The street mentions Oneida but the provider is in Utica
	addr := types.Address{
		StreetAddress:   "1423 Oneida St",
		AddressLocality: "Utica",
		AddressRegion:   "NY",
	}

	for i := 0; i < 200; i++ {
		got := FallbackCoordinates(addr)
		assert.InDelta(t, 43.1009, got.Latitude, 0.0001)
		assert.InDelta(t, -75.2326, got.Longitude, 0.0001)
	}
}

func TestFallbackCoordinates_AmbiguousLineIsDeterministic(t *testing.T) {
	// No locality at all; two known cities appear in the street line. The
	// table order decides, every time.
	addr := types.Address{StreetAddress: "Utica Rd at Rome Junction"}

	first := FallbackCoordinates(addr)
	for i := 0; i < 200; i++ {
		assert.Equal(t, first, FallbackCoordinates(addr))
	}
	assert.InDelta(t, 43.1009, first.Latitude, 0.0001)
}

func TestJitter_DeterministicAndBounded(t *testing.T) {
	lat1, lon1 := Jitter("provider-7")
	lat2, lon2 := Jitter("provider-7")
	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lon1, lon2)

	lat3, lon3 := Jitter("provider-8")
	assert.False(t, lat1 == lat3 && lon1 == lon3, "distinct ids should jitter differently")

	for _, v := range []float64{lat1, lon1, lat3, lon3} {
		assert.LessOrEqual(t, v, 0.005)
		assert.GreaterOrEqual(t, v, -0.005)
	}
}

func TestMapboxResolver_GeocodedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "access_token=test-token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[-75.2326,43.1009],"place_name":"Utica, NY","properties":{"accuracy":"rooftop"}}]}`))
	}))
	defer server.Close()

	resolver := NewMapboxResolverWithBaseURL("test-token", server.URL)
	coords, err := resolver.Resolve(context.Background(), types.Address{
		StreetAddress:   "2209 Genesee St",
		AddressLocality: "Utica",
	})
	require.NoError(t, err)

	assert.InDelta(t, 43.1009, coords.Latitude, 0.0001)
	assert.InDelta(t, -75.2326, coords.Longitude, 0.0001)
	assert.Equal(t, "rooftop", coords.Accuracy)
}

func TestMapboxResolver_NoFeaturesFallsBackToCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	resolver := NewMapboxResolverWithBaseURL("test-token", server.URL)
	coords, err := resolver.Resolve(context.Background(), types.Address{AddressLocality: "Rome"})
	require.NoError(t, err)
	assert.Equal(t, AccuracyCityFallback, coords.Accuracy)
}

func TestMapboxResolver_EmptyAddress(t *testing.T) {
	resolver := NewMapboxResolver("test-token")
	coords, err := resolver.Resolve(context.Background(), types.Address{})
	require.NoError(t, err)
	assert.Equal(t, AccuracyFallback, coords.Accuracy)
}

func TestMapboxResolver_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := NewMapboxResolverWithBaseURL("test-token", server.URL)
	_, err := resolver.Resolve(context.Background(), types.Address{AddressLocality: "Utica"})
	require.Error(t, err)

	var rerr *ResolveError
	assert.ErrorAs(t, err, &rerr)
}

func TestResolveBatch_UsesStaticResolver(t *testing.T) {
	addresses := map[string]types.Address{
		"provider-0": {AddressLocality: "Utica"},
		"provider-1": {AddressLocality: "Rome"},
		"provider-2": {},
	}

	results, err := ResolveBatch(context.Background(), StaticResolver{}, addresses)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, AccuracyCityFallback, results["provider-0"].Accuracy)
	assert.Equal(t, AccuracyCityFallback, results["provider-1"].Accuracy)
	assert.Equal(t, AccuracyCountyFallback, results["provider-2"].Accuracy)
}
