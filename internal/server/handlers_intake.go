package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/care-finder/internal/intake"
	"github.com/jonathan/care-finder/internal/types"
)

// ---------------------------------------------------------------------
// Intake Dialogue Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateIntake(w http.ResponseWriter, _ *http.Request) {
	conv := intake.New(s.providers)
	id := s.sessions.create(conv)

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":   id.String(),
		"step": conv.Step(),
		"turn": conv.Greeting(),
	})
}

func (s *Server) handleIntakeMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	sess, ok := s.sessions.get(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Intake session not found")
		return
	}

	var req types.IntakeMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	turn, step, err := sess.advance(req.Message)
	if err != nil {
		if errors.Is(err, intake.ErrEmptyAnswer) {
			s.errorResponse(w, http.StatusBadRequest, "Message must not be empty")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Conversation error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":   id.String(),
		"step": step,
		"turn": turn,
	})
}

func (s *Server) handleDeleteIntake(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	if !s.sessions.delete(id) {
		s.errorResponse(w, http.StatusNotFound, "Intake session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
