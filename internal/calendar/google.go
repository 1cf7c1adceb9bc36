package calendar

import (
	"context"
	"strings"
	"time"

	"golang.org/x/oauth2"
	calendarv3 "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// GoogleSource fetches upcoming events from the user's primary Google
// Calendar using an OAuth2 access token obtained by the auth
// collaborator.
type GoogleSource struct {
	AccessToken string
	CalendarID  string
	WindowDays  int

	// now is overridable for tests.
	now func() time.Time
}

// Fetch lists single events in the configured window, ordered by start
// time, and converts them to calendar entries.
func (s *GoogleSource) Fetch(ctx context.Context) ([]types.CalendarEntry, error) {
	if s.AccessToken == "" {
		return nil, &FetchError{Source: "google", Message: "no access token provided"}
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.AccessToken})
	service, err := calendarv3.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, &FetchError{Source: "google", Message: "failed to create calendar client", Cause: err}
	}

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	windowDays := s.WindowDays
	if windowDays <= 0 {
		windowDays = 7
	}
	calendarID := s.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	now := nowFn()
	events, err := service.Events.List(calendarID).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, windowDays).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &FetchError{Source: "google", Message: "failed to list events", Cause: err}
	}

	entries := make([]types.CalendarEntry, 0, len(events.Items))
	for _, item := range events.Items {
		entry, ok := entryFromGoogleEvent(item)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// entryFromGoogleEvent converts one Google Calendar event. All-day
// events (date without time) and cancelled events are skipped.
func entryFromGoogleEvent(item *calendarv3.Event) (types.CalendarEntry, bool) {
	if item.Status == "cancelled" {
		return types.CalendarEntry{}, false
	}
	if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
		return types.CalendarEntry{}, false
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return types.CalendarEntry{}, false
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return types.CalendarEntry{}, false
	}

	entry := types.CalendarEntry{
		ID:              item.Id,
		Title:           item.Summary,
		Date:            start.Format("2006-01-02"),
		StartTime:       start.Format("15:04"),
		EndTime:         end.Format("15:04"),
		DurationMinutes: int(end.Sub(start).Minutes()),
		// Google descriptions frequently carry HTML markup, which
		// would pollute lexical matching downstream.
		Description: StripHTML(item.Description),
		Recurring:   item.RecurringEventId != "",
	}

	if item.Organizer != nil {
		entry.Organizer = item.Organizer.Email
	}
	for _, attendee := range item.Attendees {
		if attendee.Email != "" {
			entry.Attendees = append(entry.Attendees, attendee.Email)
		}
	}

	entry.MeetingType = InferMeetingType(entry.Title)
	return entry, true
}

// InferMeetingType guesses a meeting type from the event title. Remote
// calendars carry no explicit type, so this is best effort; anything
// unrecognized defaults to "external", which the classifier treats as
// neutral with respect to attendance rules.
func InferMeetingType(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "1:1") || strings.Contains(lower, "one-on-one") || strings.Contains(lower, "1 on 1"):
		return types.MeetingTypeOneOnOne
	case strings.Contains(lower, "standup") || strings.Contains(lower, "stand-up"):
		return types.MeetingTypeStandup
	case strings.Contains(lower, "interview"):
		return types.MeetingTypeInterview
	case strings.Contains(lower, "board"):
		return types.MeetingTypeBoardPrep
	case strings.Contains(lower, "architecture") || strings.Contains(lower, "arch review"):
		return types.MeetingTypeArchitecture
	case strings.Contains(lower, "design review"):
		return types.MeetingTypeDesignReview
	case strings.Contains(lower, "incident") || strings.Contains(lower, "postmortem") || strings.Contains(lower, "post-mortem"):
		return types.MeetingTypeIncidentReview
	case strings.Contains(lower, "sprint") || strings.Contains(lower, "retro") || strings.Contains(lower, "planning poker"):
		return types.MeetingTypeSprintCeremony
	case strings.Contains(lower, "status") || strings.Contains(lower, "sync"):
		return types.MeetingTypeStatusUpdate
	case strings.Contains(lower, "demo") || strings.Contains(lower, "vendor"):
		return types.MeetingTypeVendorDemo
	case strings.Contains(lower, "strategy") || strings.Contains(lower, "strategic") || strings.Contains(lower, "okr"):
		return types.MeetingTypeStrategicPlanning
	case strings.Contains(lower, "hiring") || strings.Contains(lower, "recruiting"):
		return types.MeetingTypeHiring
	default:
		return types.MeetingTypeExternal
	}
}
