package auditing

import (
	"math"
	"sort"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// AggregateDay reduces one day's classified meetings into a briefing.
// The accumulation is commutative: shuffling the input does not change
// the totals. Meetings are returned ordered by start time for display.
func AggregateDay(date string, results []types.AuditResult) types.DailyBriefing {
	totalMinutes := 0
	strategicMinutes := 0
	for i := range results {
		totalMinutes += results[i].Entry.DurationMinutes
		if results[i].StrategicValue == types.ValueHigh {
			strategicMinutes += results[i].Entry.DurationMinutes
		}
	}

	strategicPct := 0
	if totalMinutes > 0 {
		strategicPct = int(math.Round(float64(strategicMinutes) / float64(totalMinutes) * 100))
	}

	meetings := make([]types.AuditResult, len(results))
	copy(meetings, results)
	sort.SliceStable(meetings, func(i, j int) bool {
		if meetings[i].Entry.StartTime != meetings[j].Entry.StartTime {
			return meetings[i].Entry.StartTime < meetings[j].Entry.StartTime
		}
		return meetings[i].Entry.ID < meetings[j].Entry.ID
	})

	return types.DailyBriefing{
		Date:                date,
		TotalMeetings:       len(results),
		TotalHours:          roundHours(totalMinutes),
		StrategicHours:      roundHours(strategicMinutes),
		StrategicPercentage: strategicPct,
		Meetings:            meetings,
	}
}

// FilterByDate selects the results whose entry falls on the given
// YYYY-MM-DD date.
func FilterByDate(results []types.AuditResult, date string) []types.AuditResult {
	filtered := []types.AuditResult{}
	for i := range results {
		if results[i].Entry.Date == date {
			filtered = append(filtered, results[i])
		}
	}
	return filtered
}

// roundHours converts minutes to hours rounded to one decimal place.
func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
