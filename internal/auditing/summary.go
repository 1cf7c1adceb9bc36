package auditing

import (
	"math"
	"sort"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// Summarize reduces all classified meetings into the audit counters.
// Like AggregateDay it is a commutative reduction over the input.
func Summarize(results []types.AuditResult) types.AuditSummary {
	summary := types.AuditSummary{TotalMeetings: len(results)}

	cleanCount := 0
	for i := range results {
		r := &results[i]
		if r.StrategicValue == types.ValueHigh {
			summary.HighStrategicValue++
		}
		if r.StrategicValue == types.ValueLow || r.Flagged() {
			summary.NeedsAttention++
		}
		if !r.Flagged() {
			cleanCount++
		}
	}

	if len(results) > 0 {
		summary.HealthScore = int(math.Round(float64(cleanCount) / float64(len(results)) * 100))
	}
	return summary
}

// SortByScore orders results lowest score first so problem meetings
// surface at the top of the audit view. The sort is stable with entry
// ID as tiebreak, so repeated audits render identically.
func SortByScore(results []types.AuditResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].AlignmentScore != results[j].AlignmentScore {
			return results[i].AlignmentScore < results[j].AlignmentScore
		}
		return results[i].Entry.ID < results[j].Entry.ID
	})
}

// FilterByValue selects results in the given strategic-value tier.
// This is a view-level selection over already-classified meetings,
// never a re-score.
func FilterByValue(results []types.AuditResult, tier types.StrategicValue) []types.AuditResult {
	filtered := []types.AuditResult{}
	for i := range results {
		if results[i].StrategicValue == tier {
			filtered = append(filtered, results[i])
		}
	}
	return filtered
}

// FilterFlagged selects results that carry at least one flag.
func FilterFlagged(results []types.AuditResult) []types.AuditResult {
	filtered := []types.AuditResult{}
	for i := range results {
		if results[i].Flagged() {
			filtered = append(filtered, results[i])
		}
	}
	return filtered
}

// AvailableDates returns the sorted distinct dates present in a set of
// calendar entries.
func AvailableDates(entries []types.CalendarEntry) []string {
	seen := make(map[string]bool, len(entries))
	dates := []string{}
	for i := range entries {
		if !seen[entries[i].Date] {
			seen[entries[i].Date] = true
			dates = append(dates, entries[i].Date)
		}
	}
	sort.Strings(dates)
	return dates
}
