// Package types provides type definitions for structured data used throughout the chief-of-staff system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Well-known meeting type values. The set is open: calendar sources may
// emit types not listed here, and the classifier treats those as neutral.
const (
	MeetingTypeArchitecture      = "architecture"
	MeetingTypeStrategicPlanning = "strategic_planning"
	MeetingTypeBoardPrep         = "board_prep"
	MeetingTypeOneOnOne          = "one_on_one"
	MeetingTypeHiring            = "hiring"
	MeetingTypeInterview         = "interview"
	MeetingTypeIncidentReview    = "incident_review"
	MeetingTypeExternal          = "external"
	MeetingTypeDesignReview      = "design_review"
	MeetingTypeSprintCeremony    = "sprint_ceremony"
	MeetingTypeStandup           = "standup"
	MeetingTypeStatusUpdate      = "status_update"
	MeetingTypeVendorDemo        = "vendor_demo"
	MeetingTypeAdhoc             = "adhoc"
	MeetingTypePrep              = "prep"
)

// CalendarEntry represents a single calendar entry as produced by a
// calendar source. Dates and times stay in their wire format
// (YYYY-MM-DD and HH:MM) so entries round-trip unchanged.
type CalendarEntry struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Organizer       string   `json:"organizer"`
	Attendees       []string `json:"attendees"`
	MeetingType     string   `json:"meeting_type"`
	Description     string   `json:"description"`
	Recurring       bool     `json:"recurring"`
}

// StrategicValue is the coarse tier derived from an alignment score.
type StrategicValue string

// Strategic value tiers.
const (
	ValueHigh   StrategicValue = "High"
	ValueMedium StrategicValue = "Medium"
	ValueLow    StrategicValue = "Low"
)

// Recommendation is the suggested action for a classified meeting.
type Recommendation string

// Recommendation values.
const (
	RecommendKeep     Recommendation = "Keep"
	RecommendDelegate Recommendation = "Delegate"
	RecommendDecline  Recommendation = "Decline"
)

// AuditResult is a calendar entry together with its classification.
// It is computed fresh on every request and never persisted by the engine.
type AuditResult struct {
	Entry          CalendarEntry  `json:"entry"`
	AlignmentScore int            `json:"alignment_score"`
	StrategicValue StrategicValue `json:"strategic_value"`
	Flags          []string       `json:"flags"`
	Recommendation Recommendation `json:"recommendation"`
	OKRRelevance   []string       `json:"okr_relevance"`
}

// Flagged reports whether any flag was attached during classification.
func (r *AuditResult) Flagged() bool {
	return len(r.Flags) > 0
}

// DailyBriefing summarizes a single day of classified meetings.
type DailyBriefing struct {
	Date                string        `json:"date"`
	TotalMeetings       int           `json:"total_meetings"`
	TotalHours          float64       `json:"total_hours"`
	StrategicHours      float64       `json:"strategic_hours"`
	StrategicPercentage int           `json:"strategic_percentage"`
	Meetings            []AuditResult `json:"meetings"`
}

// AuditSummary holds the top-line counts for a full calendar audit.
type AuditSummary struct {
	TotalMeetings      int `json:"total_meetings"`
	HighStrategicValue int `json:"high_strategic_value"`
	NeedsAttention     int `json:"needs_attention"`
	HealthScore        int `json:"health_score"`
}
