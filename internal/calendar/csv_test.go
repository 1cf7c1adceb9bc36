package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/chief-of-staff/internal/types"
)

const csvHeader = "id,title,date,start_time,end_time,duration_minutes,organizer,attendees,meeting_type,description,recurring\n"

func TestParseCSV(t *testing.T) {
	input := csvHeader +
		`m1,Kubernetes migration sync,2026-03-02,09:00,09:30,30,exec@example.com,a@example.com;b@example.com,architecture,Rollout plan,true` + "\n" +
		`m2,Intern coffee chat,2026-03-02,10:00,10:30,30,hr@example.com,,adhoc,,false` + "\n"

	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, types.CalendarEntry{
		ID:              "m1",
		Title:           "Kubernetes migration sync",
		Date:            "2026-03-02",
		StartTime:       "09:00",
		EndTime:         "09:30",
		DurationMinutes: 30,
		Organizer:       "exec@example.com",
		Attendees:       []string{"a@example.com", "b@example.com"},
		MeetingType:     "architecture",
		Description:     "Rollout plan",
		Recurring:       true,
	}, entries[0])

	assert.Equal(t, "m2", entries[1].ID)
	assert.Nil(t, entries[1].Attendees)
	assert.False(t, entries[1].Recurring)
}

func TestParseCSV_ColumnOrderDoesNotMatter(t *testing.T) {
	input := "title,id,duration_minutes,date,start_time,end_time,organizer,attendees,meeting_type,description\n" +
		"Board prep,m1,45,2026-03-02,09:00,09:45,exec@example.com,,board_prep,Slides review\n"

	entries, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "m1", entries[0].ID)
	assert.Equal(t, "Board prep", entries[0].Title)
	assert.Equal(t, 45, entries[0].DurationMinutes)
}

func TestParseCSV_MissingColumn(t *testing.T) {
	input := "id,title,date\n" + "m1,Some meeting,2026-03-02\n"

	_, err := ParseCSV(strings.NewReader(input))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestParseCSV_InvalidDuration(t *testing.T) {
	input := csvHeader +
		"m1,Some meeting,2026-03-02,09:00,09:30,half-an-hour,exec@example.com,,adhoc,,false\n"

	_, err := ParseCSV(strings.NewReader(input))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calendar.csv")
	content := csvHeader +
		"m1,Planning,2026-03-02,09:00,10:00,60,exec@example.com,,strategic_planning,,false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Planning", entries[0].Title)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestSplitAttendees(t *testing.T) {
	assert.Nil(t, splitAttendees(""))
	assert.Equal(t, []string{"a@x.com"}, splitAttendees("a@x.com"))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, splitAttendees("a@x.com; b@x.com;"))
}
