package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// ICSSource fetches and parses events from an iCalendar feed, either a
// URL or a local .ics file (the export format used by Apple Calendar).
type ICSSource struct {
	Name   string
	Feed   string
	Client *http.Client
}

// Fetch retrieves the feed and converts its events to calendar entries.
// Cancelled events and all-day events are skipped: neither is a meeting
// the engine can usefully score.
func (s *ICSSource) Fetch(ctx context.Context) ([]types.CalendarEntry, error) {
	body, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(strings.TrimSpace(body), "BEGIN:VCALENDAR") {
		return nil, &ParseError{Message: "invalid iCalendar data - expected BEGIN:VCALENDAR"}
	}

	decoder := ical.NewDecoder(strings.NewReader(body))
	var entries []types.CalendarEntry
	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Message: "failed to decode calendar", Cause: err}
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			entry, ok := s.entryFromEvent(comp)
			if ok {
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}

func (s *ICSSource) read(ctx context.Context) (string, error) {
	if !strings.HasPrefix(s.Feed, "http://") && !strings.HasPrefix(s.Feed, "https://") {
		data, err := os.ReadFile(s.Feed)
		if err != nil {
			return "", &FetchError{Source: s.Name, Message: fmt.Sprintf("failed to read %s", s.Feed), Cause: err}
		}
		return string(data), nil
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Feed, nil)
	if err != nil {
		return "", &FetchError{Source: s.Name, Message: "failed to build request", Cause: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{Source: s.Name, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{Source: s.Name, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Source: s.Name, Message: "failed to read response body", Cause: err}
	}
	return string(data), nil
}

// entryFromEvent converts one VEVENT to a calendar entry. The second
// return value is false when the event should be skipped.
func (s *ICSSource) entryFromEvent(comp *ical.Component) (types.CalendarEntry, bool) {
	if prop := comp.Props.Get(ical.PropStatus); prop != nil && prop.Value == "CANCELLED" {
		return types.CalendarEntry{}, false
	}

	start, startErr := propTime(comp, ical.PropDateTimeStart)
	end, endErr := propTime(comp, ical.PropDateTimeEnd)
	if startErr != nil || endErr != nil {
		return types.CalendarEntry{}, false
	}

	// All-day and multi-day blocks are not meetings.
	if end.Sub(start) >= 24*time.Hour {
		return types.CalendarEntry{}, false
	}

	entry := types.CalendarEntry{
		Date:            start.Format("2006-01-02"),
		StartTime:       start.Format("15:04"),
		EndTime:         end.Format("15:04"),
		DurationMinutes: int(end.Sub(start).Minutes()),
	}

	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		entry.Title = prop.Value
	}
	if prop := comp.Props.Get(ical.PropDescription); prop != nil {
		entry.Description = StripHTML(prop.Value)
	}
	if prop := comp.Props.Get(ical.PropOrganizer); prop != nil {
		entry.Organizer = strings.TrimPrefix(prop.Value, "mailto:")
	}
	for _, prop := range comp.Props.Values(ical.PropAttendee) {
		entry.Attendees = append(entry.Attendees, strings.TrimPrefix(prop.Value, "mailto:"))
	}
	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		entry.ID = prop.Value
	} else {
		// Deterministic fallback so re-fetching the same feed yields
		// the same identifiers.
		entry.ID = s.Name + "-" + start.Format(time.RFC3339) + "-" + entry.Title
	}
	if comp.Props.Get(ical.PropRecurrenceRule) != nil {
		entry.Recurring = true
	}

	entry.MeetingType = InferMeetingType(entry.Title)
	return entry, true
}

func propTime(comp *ical.Component, name string) (time.Time, error) {
	prop := comp.Props.Get(name)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing %s", name)
	}
	return prop.DateTime(time.Local)
}
