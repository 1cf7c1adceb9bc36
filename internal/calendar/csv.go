// Package calendar provides the calendar ingestion collaborators: a CSV
// file parser, an ICS feed source, and a Google Calendar source. Each
// produces plain CalendarEntry records for the scoring engine.
package calendar

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// Columns required in a calendar CSV export.
var requiredColumns = []string{
	"id", "title", "date", "start_time", "end_time",
	"duration_minutes", "organizer", "attendees", "meeting_type", "description",
}

// LoadCSV reads calendar entries from a CSV file.
func LoadCSV(path string) ([]types.CalendarEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FetchError{Source: "csv", Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() { _ = file.Close() }()

	return ParseCSV(file)
}

// ParseCSV parses calendar entries from CSV content. The first row is
// a header; columns are addressed by name so column order does not
// matter.
func ParseCSV(r io.Reader) ([]types.CalendarEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, &ParseError{Message: "failed to read CSV header", Cause: err}
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &ParseError{Message: fmt.Sprintf("missing required column %q", name)}
		}
	}

	var entries []types.CalendarEntry
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Message: "failed to read CSV row", Line: line, Cause: err}
		}

		entry, err := entryFromRecord(record, col, line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func entryFromRecord(record []string, col map[string]int, line int) (types.CalendarEntry, error) {
	field := func(name string) string {
		idx := col[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	duration, err := strconv.Atoi(field("duration_minutes"))
	if err != nil {
		return types.CalendarEntry{}, &ParseError{Message: "invalid duration_minutes", Line: line, Cause: err}
	}

	recurring := false
	if idx, ok := col["recurring"]; ok && idx < len(record) {
		recurring = strings.EqualFold(strings.TrimSpace(record[idx]), "true")
	}

	return types.CalendarEntry{
		ID:              field("id"),
		Title:           field("title"),
		Date:            field("date"),
		StartTime:       field("start_time"),
		EndTime:         field("end_time"),
		DurationMinutes: duration,
		Organizer:       field("organizer"),
		Attendees:       splitAttendees(field("attendees")),
		MeetingType:     field("meeting_type"),
		Description:     field("description"),
		Recurring:       recurring,
	}, nil
}

// splitAttendees splits the semicolon-separated attendee list used in
// calendar exports.
func splitAttendees(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	attendees := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			attendees = append(attendees, trimmed)
		}
	}
	return attendees
}
