package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/care-finder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileYieldsEmptyProfile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "profile.json"))

	profile, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, profile.Favorites)
	assert.Empty(t, profile.SelectedInsurancePlans)
	assert.False(t, profile.AcceptsMedicaid)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.json")
	store := NewFileStore(path)

	saved := &types.UserProfile{
		SelectedInsurancePlans: []string{"Excellus BCBS"},
		AcceptsMedicaid:        true,
		Favorites:              []string{"provider-3", "provider-7"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileStore_LastWriteWins(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "profile.json"))

	require.NoError(t, store.Save(&types.UserProfile{Favorites: []string{"provider-1"}}))
	require.NoError(t, store.Save(&types.UserProfile{Favorites: []string{"provider-2"}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"provider-2"}, loaded.Favorites)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)

	var serr *StoreError
	assert.ErrorAs(t, err, &serr)
}

func TestToggleFavorite(t *testing.T) {
	profile := &types.UserProfile{}

	assert.True(t, profile.ToggleFavorite("provider-1"))
	assert.True(t, profile.IsFavorite("provider-1"))

	assert.False(t, profile.ToggleFavorite("provider-1"))
	assert.False(t, profile.IsFavorite("provider-1"))
	assert.Empty(t, profile.Favorites)
}

func TestInNetwork(t *testing.T) {
	provider := types.Provider{
		AcceptsInsurance: []string{"Excellus BCBS", "Fidelis Care"},
		AcceptsMedicaid:  true,
	}

	tests := []struct {
		name    string
		profile *types.UserProfile
		want    bool
	}{
		{"nil profile imposes no restriction", nil, true},
		{"empty profile imposes no restriction", &types.UserProfile{}, true},
		{
			"selected plan matches case-insensitively",
			&types.UserProfile{SelectedInsurancePlans: []string{"excellus bcbs"}},
			true,
		},
		{
			"medicaid flag matches",
			&types.UserProfile{AcceptsMedicaid: true},
			true,
		},
		{
			"no overlap",
			&types.UserProfile{SelectedInsurancePlans: []string{"Aetna"}, AcceptsMedicare: true},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InNetwork(provider, tt.profile))
		})
	}
}
