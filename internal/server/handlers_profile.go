package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/care-finder/internal/types"
)

// ---------------------------------------------------------------------
// Profile and Favorites Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	prof, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, prof)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Favorites are managed through the toggle endpoint; keep them intact
	prof, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
		return
	}

	prof.SelectedInsurancePlans = req.SelectedInsurancePlans
	if prof.SelectedInsurancePlans == nil {
		prof.SelectedInsurancePlans = []string{}
	}
	prof.AcceptsMedicaid = req.AcceptsMedicaid
	prof.AcceptsMedicare = req.AcceptsMedicare

	if err := s.profiles.Save(prof); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, prof)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, _ *http.Request) {
	prof, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
		return
	}

	favorites := make([]types.Provider, 0, len(prof.Favorites))
	for _, p := range s.providers {
		if prof.IsFavorite(p.ID) {
			favorites = append(favorites, p)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"providers": favorites,
		"total":     len(favorites),
	})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	found := false
	for _, p := range s.providers {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		s.errorResponse(w, http.StatusNotFound, "Provider not found")
		return
	}

	prof, err := s.profiles.Load()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
		return
	}

	favorite := prof.ToggleFavorite(id)

	if err := s.profiles.Save(prof); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile store error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":        id,
		"favorite":  favorite,
		"favorites": prof.Favorites,
	})
}
