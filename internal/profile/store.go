// Package profile persists the local user preference set: favorite
// provider ids and the saved insurance selection. The store is a small
// repository so the matcher and classifier stay free of any storage
// dependency.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/care-finder/internal/types"
)

// Repository reads and writes the persisted user profile. Writes are
// last-write-wins; this is single-user, single-device state with no
// transaction discipline.
type Repository interface {
	Load() (*types.UserProfile, error)
	Save(profile *types.UserProfile) error
}

// FileStore is a Repository backed by a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed repository at the given path. Parent
// directories are created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the profile from disk. A missing file yields an empty
// profile, not an error.
func (s *FileStore) Load() (*types.UserProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyProfile(), nil
		}
		return nil, &StoreError{Op: "load", Path: s.path, Cause: err}
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &StoreError{Op: "load", Path: s.path, Cause: err}
	}
	if profile.SelectedInsurancePlans == nil {
		profile.SelectedInsurancePlans = []string{}
	}
	if profile.Favorites == nil {
		profile.Favorites = []string{}
	}
	return &profile, nil
}

// Save writes the profile to disk, replacing whatever was there.
func (s *FileStore) Save(profile *types.UserProfile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &StoreError{Op: "save", Path: s.path, Cause: err}
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return &StoreError{Op: "save", Path: s.path, Cause: err}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return &StoreError{Op: "save", Path: s.path, Cause: err}
	}
	return nil
}

func emptyProfile() *types.UserProfile {
	return &types.UserProfile{
		SelectedInsurancePlans: []string{},
		Favorites:              []string{},
	}
}

// InNetwork reports whether a provider accepts any part of the saved
// insurance selection. An empty profile imposes no restriction.
func InNetwork(p types.Provider, profile *types.UserProfile) bool {
	if profile == nil {
		return true
	}
	if len(profile.SelectedInsurancePlans) == 0 && !profile.AcceptsMedicaid && !profile.AcceptsMedicare {
		return true
	}

	if profile.AcceptsMedicaid && p.AcceptsMedicaid {
		return true
	}
	if profile.AcceptsMedicare && p.AcceptsMedicare {
		return true
	}
	for _, selected := range profile.SelectedInsurancePlans {
		for _, plan := range p.AcceptsInsurance {
			if strings.EqualFold(plan, selected) {
				return true
			}
		}
	}
	return false
}

// StoreError represents a profile persistence failure.
type StoreError struct {
	Op    string
	Path  string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("profile %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
