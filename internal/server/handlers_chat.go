package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/care-finder/internal/types"
)

// ---------------------------------------------------------------------
// Concierge Chat Handler
// ---------------------------------------------------------------------

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.concierge == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Concierge chat is not configured")
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := s.concierge.Reply(r.Context(), req.Context, req.Message)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "An error occurred while processing your message")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": reply})
}
