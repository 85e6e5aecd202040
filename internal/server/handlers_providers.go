package server

import (
	"net/http"

	"github.com/jonathan/care-finder/internal/matching"
	"github.com/jonathan/care-finder/internal/normalize"
)

// ---------------------------------------------------------------------
// Directory Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := matching.Criteria{
		Query:     q.Get("search"),
		Category:  q.Get("category"),
		Location:  q.Get("location"),
		Insurance: q.Get("insurance"),
	}

	matched := matching.Match(s.providers, criteria)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"providers": matched,
		"total":     len(matched),
	})
}

func (s *Server) handleGetProvider(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	for _, p := range s.providers {
		if p.ID == id {
			s.jsonResponse(w, http.StatusOK, p)
			return
		}
	}

	s.errorResponse(w, http.StatusNotFound, "Provider not found")
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"categories": normalize.UniqueCategories(s.providers),
		"counts":     normalize.CategoryCounts(s.providers),
	})
}

func (s *Server) handleListLocations(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"locations": normalize.UniqueLocations(s.providers),
		"counts":    normalize.LocationCounts(s.providers),
		"plans":     normalize.InsurancePlans(s.providers),
	})
}
