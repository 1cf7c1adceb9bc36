package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/chief-of-staff/internal/types"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-1\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"SUMMARY:Architecture review\r\n" +
	"DESCRIPTION:<p>Review the <b>gateway</b> design</p>\r\n" +
	"DTSTART:20260302T090000Z\r\n" +
	"DTEND:20260302T100000Z\r\n" +
	"ORGANIZER:mailto:exec@example.com\r\n" +
	"ATTENDEE:mailto:a@example.com\r\n" +
	"ATTENDEE:mailto:b@example.com\r\n" +
	"RRULE:FREQ=WEEKLY\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-2\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"SUMMARY:Cancelled sync\r\n" +
	"STATUS:CANCELLED\r\n" +
	"DTSTART:20260302T110000Z\r\n" +
	"DTEND:20260302T113000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-3\r\n" +
	"DTSTAMP:20260301T000000Z\r\n" +
	"SUMMARY:Offsite block\r\n" +
	"DTSTART:20260302T000000Z\r\n" +
	"DTEND:20260304T000000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestICSSource_FetchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.ics")
	require.NoError(t, os.WriteFile(path, []byte(sampleICS), 0o644))

	source := &ICSSource{Name: "apple", Feed: path}
	entries, err := source.Fetch(context.Background())
	require.NoError(t, err)

	// Cancelled and multi-day events are skipped.
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "event-1", entry.ID)
	assert.Equal(t, "Architecture review", entry.Title)
	assert.Equal(t, 60, entry.DurationMinutes)
	assert.Equal(t, "Review the gateway design", entry.Description)
	assert.Equal(t, "exec@example.com", entry.Organizer)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, entry.Attendees)
	assert.True(t, entry.Recurring)
	assert.Equal(t, types.MeetingTypeArchitecture, entry.MeetingType)
}

func TestICSSource_FetchFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleICS))
	}))
	defer srv.Close()

	source := &ICSSource{Name: "feed", Feed: srv.URL, Client: srv.Client()}
	entries, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "event-1", entries[0].ID)
}

func TestICSSource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	source := &ICSSource{Name: "feed", Feed: srv.URL, Client: srv.Client()}
	_, err := source.Fetch(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestICSSource_NotACalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.ics")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	source := &ICSSource{Name: "apple", Feed: path}
	_, err := source.Fetch(context.Background())
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestICSSource_MissingFile(t *testing.T) {
	source := &ICSSource{Name: "apple", Feed: filepath.Join(t.TempDir(), "nope.ics")}
	_, err := source.Fetch(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
