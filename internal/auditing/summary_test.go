package auditing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/chief-of-staff/internal/types"
)

func TestSummarize(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueHigh),
		auditResult("m2", "2026-03-02", "10:00", 30, types.ValueHigh, "must-avoid: something"),
		auditResult("m3", "2026-03-02", "11:00", 30, types.ValueMedium),
		auditResult("m4", "2026-03-02", "12:00", 30, types.ValueLow),
	}

	summary := Summarize(results)

	assert.Equal(t, 4, summary.TotalMeetings)
	assert.Equal(t, 2, summary.HighStrategicValue)
	// m2 is flagged, m4 is low value.
	assert.Equal(t, 2, summary.NeedsAttention)
	// 3 of 4 meetings carry no flags.
	assert.Equal(t, 75, summary.HealthScore)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalMeetings)
	assert.Equal(t, 0, summary.HealthScore)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueHigh),
		auditResult("m2", "2026-03-02", "10:00", 30, types.ValueLow, "flagged"),
		auditResult("m3", "2026-03-02", "11:00", 30, types.ValueMedium),
	}
	reversed := []types.AuditResult{results[2], results[1], results[0]}

	assert.Equal(t, Summarize(results), Summarize(reversed))
}

func TestSortByScore(t *testing.T) {
	results := []types.AuditResult{
		{Entry: types.CalendarEntry{ID: "b"}, AlignmentScore: 70},
		{Entry: types.CalendarEntry{ID: "c"}, AlignmentScore: 20},
		{Entry: types.CalendarEntry{ID: "a"}, AlignmentScore: 70},
	}

	SortByScore(results)

	assert.Equal(t, "c", results[0].Entry.ID)
	assert.Equal(t, "a", results[1].Entry.ID)
	assert.Equal(t, "b", results[2].Entry.ID)
}

func TestFilterByValue(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueHigh),
		auditResult("m2", "2026-03-02", "10:00", 30, types.ValueLow),
		auditResult("m3", "2026-03-02", "11:00", 30, types.ValueHigh),
	}

	high := FilterByValue(results, types.ValueHigh)
	require.Len(t, high, 2)
	assert.Equal(t, "m1", high[0].Entry.ID)
	assert.Equal(t, "m3", high[1].Entry.ID)

	assert.Empty(t, FilterByValue(results, types.ValueMedium))
}

func TestFilterFlagged(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueHigh),
		auditResult("m2", "2026-03-02", "10:00", 30, types.ValueLow, "a flag"),
	}

	flagged := FilterFlagged(results)
	require.Len(t, flagged, 1)
	assert.Equal(t, "m2", flagged[0].Entry.ID)
}

func TestAvailableDates(t *testing.T) {
	entries := []types.CalendarEntry{
		{ID: "m1", Date: "2026-03-03"},
		{ID: "m2", Date: "2026-03-02"},
		{ID: "m3", Date: "2026-03-03"},
		{ID: "m4", Date: "2026-03-05"},
	}

	assert.Equal(t, []string{"2026-03-02", "2026-03-03", "2026-03-05"}, AvailableDates(entries))
	assert.Equal(t, []string{}, AvailableDates(nil))
}
