package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/chief-of-staff/internal/auditing"
	"github.com/jonathan/chief-of-staff/internal/calendar"
	"github.com/jonathan/chief-of-staff/internal/stylecheck"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// auditResponse is the calendar audit payload.
type auditResponse struct {
	Summary  types.AuditSummary  `json:"summary"`
	Meetings []types.AuditResult `json:"meetings"`
}

// handleCalendarAudit classifies the whole calendar and returns the
// summary with meetings sorted lowest score first, so the worst
// offenders appear at the top of the dashboard.
func (s *Server) handleCalendarAudit(w http.ResponseWriter, r *http.Request) {
	results, ok := s.classifyCalendar(w, r)
	if !ok {
		return
	}

	auditing.SortByScore(results)
	s.jsonResponse(w, http.StatusOK, auditResponse{
		Summary:  auditing.Summarize(results),
		Meetings: results,
	})
}

// handleDailyBriefing returns the briefing for one day. The date query
// parameter defaults to today.
func (s *Server) handleDailyBriefing(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	results, ok := s.classifyCalendar(w, r)
	if !ok {
		return
	}

	briefing := auditing.AggregateDay(date, auditing.FilterByDate(results, date))
	s.jsonResponse(w, http.StatusOK, briefing)
}

// handleAvailableDates lists the distinct dates present in the calendar.
func (s *Server) handleAvailableDates(w http.ResponseWriter, r *http.Request) {
	entries, err := s.source.Fetch(r.Context())
	if err != nil {
		s.calendarError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string][]string{
		"dates": auditing.AvailableDates(entries),
	})
}

// handleCheckStyle analyzes a draft against the style guide.
func (s *Server) handleCheckStyle(w http.ResponseWriter, r *http.Request) {
	var req types.StyleCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	report, err := stylecheck.Analyze(req.Text, s.styleGuide)
	if err != nil {
		var validationErr *stylecheck.ValidationError
		if errors.As(err, &validationErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// classifyCalendar fetches the calendar and classifies every entry.
// Writes the error response itself and returns ok=false on failure.
func (s *Server) classifyCalendar(w http.ResponseWriter, r *http.Request) ([]types.AuditResult, bool) {
	entries, err := s.source.Fetch(r.Context())
	if err != nil {
		s.calendarError(w, err)
		return nil, false
	}

	results, err := auditing.ClassifyAll(r.Context(), entries, s.profile)
	if err != nil {
		var validationErr *auditing.ValidationError
		if errors.As(err, &validationErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}

	return results, true
}

// calendarError maps calendar source failures to HTTP statuses.
func (s *Server) calendarError(w http.ResponseWriter, err error) {
	var parseErr *calendar.ParseError
	if errors.As(err, &parseErr) {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var fetchErr *calendar.FetchError
	if errors.As(err, &fetchErr) {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// validationMessage renders the first validator error.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return "validation error: " + ve.Field() + " - " + ve.Tag()
	}
	return "validation error: invalid request"
}
