package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshot = `{
  "@context": "https://schema.org",
  "@type": "MedicalOrganization",
  "name": "Oneida County Healthcare Directory",
  "containsPlace": [
    {
      "@type": "Hospital",
      "name": "St. Elizabeth Medical Center",
      "address": {
        "@type": "PostalAddress",
        "streetAddress": "2209 Genesee St",
        "addressLocality": "Utica",
        "addressRegion": "NY",
        "postalCode": "13501"
      },
      "telephone": "315-555-0100",
      "medicalSpecialty": ["Emergency Medicine", "Cardiology"],
      "acceptsInsurance": ["Excellus BCBS"],
      "acceptsMedicaid": true
    },
    {
      "@type": "MedicalClinic",
      "name": "Parkway Family Medicine",
      "address": [
        {"addressLocality": "New Hartford"},
        {"addressLocality": "Utica"}
      ],
      "telephone": ["315-555-0200", "315-555-0201"],
      "medicalSpecialty": ["Family Medicine"]
    }
  ]
}`

func TestParse_ValidSnapshot(t *testing.T) {
	snap, err := Parse([]byte(validSnapshot))
	require.NoError(t, err)
	require.Len(t, snap.Providers, 2)

	hospital := snap.Providers[0]
	assert.Equal(t, "Hospital", hospital.Type)
	assert.Equal(t, "St. Elizabeth Medical Center", hospital.Name)
	require.Len(t, hospital.Address, 1)
	assert.Equal(t, "Utica", hospital.Address[0].AddressLocality)
	assert.Equal(t, "315-555-0100", hospital.Telephone.First())
	require.NotNil(t, hospital.AcceptsMedicaid)
	assert.True(t, *hospital.AcceptsMedicaid)

	clinic := snap.Providers[1]
	// Array-shaped address and telephone decode too
	require.Len(t, clinic.Address, 2)
	assert.Equal(t, "New Hartford", clinic.Address[0].AddressLocality)
	assert.Equal(t, "315-555-0200", clinic.Telephone.First())
	assert.Nil(t, clinic.AcceptsMedicaid)
}

func TestParse_RejectsMissingProviderName(t *testing.T) {
	doc := `{"containsPlace": [{"@type": "Hospital"}]}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestParse_RejectsMissingCollection(t *testing.T) {
	_, err := Parse([]byte(`{"name": "empty"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	require.Error(t, err)

	var lerr *LoadError
	assert.ErrorAs(t, err, &lerr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.Path, "missing.json")
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(validSnapshot), 0o600))

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, snap.Providers, 2)
}

func TestParse_EmptyCollectionIsValid(t *testing.T) {
	snap, err := Parse([]byte(`{"containsPlace": []}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Providers)
}
