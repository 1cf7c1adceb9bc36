package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// handleCreateFeedback records a keep/delegate/decline decision for a
// meeting. Requires authentication; re-submitting for the same meeting
// replaces the earlier decision.
func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	record, err := s.db.SaveFeedback(r.Context(), req.MeetingID, types.FeedbackAction(req.Action), req.Notes)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save feedback")
		return
	}

	s.jsonResponse(w, http.StatusCreated, record)
}

// handleListFeedback returns all recorded decisions, newest first.
func (s *Server) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	records, err := s.db.ListFeedback(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list feedback")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string][]types.FeedbackRecord{
		"feedback": records,
	})
}
