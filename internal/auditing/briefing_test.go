package auditing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/chief-of-staff/internal/types"
)

func auditResult(id, date, startTime string, durationMinutes int, value types.StrategicValue, flags ...string) types.AuditResult {
	return types.AuditResult{
		Entry: types.CalendarEntry{
			ID:              id,
			Title:           "Meeting " + id,
			Date:            date,
			StartTime:       startTime,
			EndTime:         "23:59",
			DurationMinutes: durationMinutes,
		},
		AlignmentScore: 50,
		StrategicValue: value,
		Flags:          flags,
	}
}

func TestAggregateDay_Totals(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 60, types.ValueHigh),
		auditResult("m2", "2026-03-02", "11:00", 30, types.ValueMedium),
		auditResult("m3", "2026-03-02", "14:00", 45, types.ValueLow),
	}

	briefing := AggregateDay("2026-03-02", results)

	assert.Equal(t, "2026-03-02", briefing.Date)
	assert.Equal(t, 3, briefing.TotalMeetings)
	assert.InDelta(t, 2.3, briefing.TotalHours, 0.001) // 135 min rounds to 2.3h
	assert.InDelta(t, 1.0, briefing.StrategicHours, 0.001)
	assert.Equal(t, 44, briefing.StrategicPercentage) // 60/135 = 44.4%
}

func TestAggregateDay_HalfStrategicDay(t *testing.T) {
	// 30 + 60 + 90 minutes, only the 90-minute meeting is High tier.
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueMedium),
		auditResult("m2", "2026-03-02", "10:00", 60, types.ValueLow),
		auditResult("m3", "2026-03-02", "13:00", 90, types.ValueHigh),
	}

	briefing := AggregateDay("2026-03-02", results)

	assert.Equal(t, 3, briefing.TotalMeetings)
	assert.InDelta(t, 3.0, briefing.TotalHours, 0.001)
	assert.InDelta(t, 1.5, briefing.StrategicHours, 0.001)
	assert.Equal(t, 50, briefing.StrategicPercentage)
}

func TestAggregateDay_Empty(t *testing.T) {
	briefing := AggregateDay("2026-03-02", nil)

	assert.Equal(t, 0, briefing.TotalMeetings)
	assert.Equal(t, 0.0, briefing.TotalHours)
	assert.Equal(t, 0, briefing.StrategicPercentage)
	assert.Empty(t, briefing.Meetings)
}

func TestAggregateDay_OrderIndependent(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 60, types.ValueHigh),
		auditResult("m2", "2026-03-02", "11:00", 30, types.ValueMedium),
		auditResult("m3", "2026-03-02", "14:00", 45, types.ValueLow),
		auditResult("m4", "2026-03-02", "16:00", 25, types.ValueHigh),
	}

	want := AggregateDay("2026-03-02", results)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]types.AuditResult, len(results))
		copy(shuffled, results)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, AggregateDay("2026-03-02", shuffled))
	}
}

func TestAggregateDay_MeetingsSortedByStartTime(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m2", "2026-03-02", "14:00", 30, types.ValueMedium),
		auditResult("m3", "2026-03-02", "09:00", 30, types.ValueMedium),
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueMedium),
	}

	briefing := AggregateDay("2026-03-02", results)
	require.Len(t, briefing.Meetings, 3)

	// Sorted by start time, ID as tiebreak.
	assert.Equal(t, "m1", briefing.Meetings[0].Entry.ID)
	assert.Equal(t, "m3", briefing.Meetings[1].Entry.ID)
	assert.Equal(t, "m2", briefing.Meetings[2].Entry.ID)
}

func TestFilterByDate(t *testing.T) {
	results := []types.AuditResult{
		auditResult("m1", "2026-03-02", "09:00", 30, types.ValueHigh),
		auditResult("m2", "2026-03-03", "09:00", 30, types.ValueHigh),
		auditResult("m3", "2026-03-02", "11:00", 30, types.ValueLow),
	}

	filtered := FilterByDate(results, "2026-03-02")
	require.Len(t, filtered, 2)
	assert.Equal(t, "m1", filtered[0].Entry.ID)
	assert.Equal(t, "m3", filtered[1].Entry.ID)

	assert.Empty(t, FilterByDate(results, "2026-03-04"))
}
