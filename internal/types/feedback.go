package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FeedbackAction is the user's decision on a classified meeting.
type FeedbackAction string

// Feedback actions.
const (
	ActionKeep     FeedbackAction = "keep"
	ActionDelegate FeedbackAction = "delegate"
	ActionDecline  FeedbackAction = "decline"
)

// FeedbackRecord associates a calendar entry with a user decision.
// The engine never reads feedback to alter scoring; it exists for the
// presentation layer only.
type FeedbackRecord struct {
	ID        uuid.UUID      `json:"id"`
	MeetingID string         `json:"meeting_id"`
	Action    FeedbackAction `json:"action"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// FeedbackRequest is the request body for recording feedback.
type FeedbackRequest struct {
	MeetingID string `json:"meeting_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=keep delegate decline"`
	Notes     string `json:"notes,omitempty"`
}

// StyleCheckRequest is the request body for a style check.
type StyleCheckRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the StyleCheckRequest using the validator.
func (r *StyleCheckRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
