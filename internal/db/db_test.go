package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jonathan/care-finder/internal/types"
)

func TestServiceNames(t *testing.T) {
	p := types.RawProvider{
		ServiceType: []string{"Emergency Care", "Surgery"},
		HasPOS: []types.Service{
			{Name: "Walk-in Clinic"},
			{Name: "Imaging Center"},
		},
	}

	names := serviceNames(p)
	assert.Equal(t, []string{"Emergency Care", "Surgery", "Walk-in Clinic", "Imaging Center"}, names)
}

func TestServiceNamesEmpty(t *testing.T) {
	names := serviceNames(types.RawProvider{})
	assert.Empty(t, names)
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, nilIfEmpty(""))

	got := nilIfEmpty("MVP Health Care")
	if assert.NotNil(t, got) {
		assert.Equal(t, "MVP Health Care", *got)
	}
}

func TestProviderFilterZeroValue(t *testing.T) {
	// A zero filter must place no conditions on the query
	filter := ProviderFilter{}
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Category)
	assert.Empty(t, filter.Specialty)
}
