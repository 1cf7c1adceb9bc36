// Package auditing implements the alignment scoring engine: it
// classifies calendar entries against a profile of objectives and
// attendance rules, and reduces classified meetings into daily
// briefings and audit summaries.
package auditing

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// Default scoring constants. A profile may override any of them via
// its weights block; these are the documented configuration defaults.
const (
	defaultBaselineScore          = 50
	defaultKeyResultBonus         = 12
	defaultKeyResultBonusTail     = 6
	defaultMustAvoidPenalty       = 30
	defaultMustPrioritizeBonus    = 15
	defaultAsyncPenalty           = 8
	defaultLargeMeetingPenalty    = 10
	defaultDurationCeilingMinutes = 60
	defaultLargeGroupThreshold    = 6

	// Number of matched key results that earn the full bonus before
	// diminishing returns kick in.
	keyResultFullBonusCount = 2
)

// Tier thresholds, inclusive lower bounds. Shared constants so the
// tier is never re-derived with different numbers per call site.
const (
	highValueThreshold   = 70
	mediumValueThreshold = 40
)

// TierForScore derives the strategic-value tier from an alignment score.
func TierForScore(score int) types.StrategicValue {
	switch {
	case score >= highValueThreshold:
		return types.ValueHigh
	case score >= mediumValueThreshold:
		return types.ValueMedium
	default:
		return types.ValueLow
	}
}

// resolveWeights fills zero-valued profile weights with the defaults.
func resolveWeights(w types.ScoringWeights) types.ScoringWeights {
	if w.BaselineScore == 0 {
		w.BaselineScore = defaultBaselineScore
	}
	if w.KeyResultBonus == 0 {
		w.KeyResultBonus = defaultKeyResultBonus
	}
	if w.KeyResultBonusTail == 0 {
		w.KeyResultBonusTail = defaultKeyResultBonusTail
	}
	if w.MustAvoidPenalty == 0 {
		w.MustAvoidPenalty = defaultMustAvoidPenalty
	}
	if w.MustPrioritizeBonus == 0 {
		w.MustPrioritizeBonus = defaultMustPrioritizeBonus
	}
	if w.AsyncPenalty == 0 {
		w.AsyncPenalty = defaultAsyncPenalty
	}
	if w.LargeMeetingPenalty == 0 {
		w.LargeMeetingPenalty = defaultLargeMeetingPenalty
	}
	if w.DurationCeilingMin == 0 {
		w.DurationCeilingMin = defaultDurationCeilingMinutes
	}
	if w.LargeGroupThreshold == 0 {
		w.LargeGroupThreshold = defaultLargeGroupThreshold
	}
	return w
}

// Classify scores one calendar entry against the profile. It is a pure
// function: identical input and profile always yield identical output,
// and neither argument is mutated.
func Classify(entry *types.CalendarEntry, profile *types.Profile) (*types.AuditResult, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	w := resolveWeights(profile.Weights)
	searchText := strings.ToLower(entry.Title + " " + entry.Description)

	score := w.BaselineScore
	flags := []string{}

	// OKR keyword matching: a fixed bonus per distinct key result,
	// diminishing after the first few so a keyword-stuffed invite
	// cannot run the score away.
	okrLabels, matchedKeyResults := matchObjectives(searchText, profile.Objectives)
	for i := 0; i < matchedKeyResults; i++ {
		if i < keyResultFullBonusCount {
			score += w.KeyResultBonus
		} else {
			score += w.KeyResultBonusTail
		}
	}

	// Attendance rules, in profile order.
	mustAvoidFired := false
	mustPrioritizeFired := false
	for i := range profile.AttendanceRules {
		rule := &profile.AttendanceRules[i]
		if !ruleMatches(rule, entry.MeetingType, searchText) {
			continue
		}
		switch rule.Kind {
		case types.RuleMustAvoid:
			mustAvoidFired = true
			score -= w.MustAvoidPenalty
			flags = append(flags, "must-avoid: "+rule.Reason)
		case types.RuleMustPrioritize:
			mustPrioritizeFired = true
			score += w.MustPrioritizeBonus
		}
	}

	// Duration/efficiency heuristic: status updates and overlong
	// meetings with no recognized strategic tie.
	hasStrategicMatch := matchedKeyResults > 0 || mustPrioritizeFired
	if !hasStrategicMatch {
		switch {
		case entry.MeetingType == types.MeetingTypeStatusUpdate:
			score -= w.AsyncPenalty
			flags = append(flags, "status update with no strategic tie - consider converting to async update")
		case entry.DurationMinutes > w.DurationCeilingMin:
			score -= w.AsyncPenalty
			flags = append(flags, fmt.Sprintf("long meeting (%d min) with no clear strategic tie", entry.DurationMinutes))
		}
	}

	// Attendee-count heuristic: big rooms with low OKR relevance.
	attendeeFlagFired := false
	if len(entry.Attendees) > w.LargeGroupThreshold && matchedKeyResults == 0 {
		attendeeFlagFired = true
		score -= w.LargeMeetingPenalty
		flags = append(flags, fmt.Sprintf("large meeting (%d attendees) with low alignment - consider delegating", len(entry.Attendees)))
	}

	score = clampScore(score)
	tier := TierForScore(score)

	return &types.AuditResult{
		Entry:          *entry,
		AlignmentScore: score,
		StrategicValue: tier,
		Flags:          flags,
		Recommendation: recommend(tier, mustAvoidFired, attendeeFlagFired),
		OKRRelevance:   okrLabels,
	}, nil
}

// ClassifyAll classifies a batch of entries in parallel. Classification
// of each entry is independent, so results are identical to a
// sequential pass and are returned in input order.
func ClassifyAll(ctx context.Context, entries []types.CalendarEntry, profile *types.Profile) ([]types.AuditResult, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}
	if err := checkUniqueIDs(entries); err != nil {
		return nil, err
	}

	results := make([]types.AuditResult, len(entries))
	g, _ := errgroup.WithContext(ctx)
	for i := range entries {
		g.Go(func() error {
			result, err := Classify(&entries[i], profile)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entries[i].ID, err)
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// recommend derives the recommendation from the tier and fired flags.
// A must-avoid match dominates everything else: such a meeting is never
// recommended Keep, even when OKR and must-prioritize bonuses push the
// score into the High tier.
func recommend(tier types.StrategicValue, mustAvoid, attendeeFlag bool) types.Recommendation {
	switch {
	case mustAvoid && tier == types.ValueLow:
		return types.RecommendDecline
	case mustAvoid:
		return types.RecommendDelegate
	case tier == types.ValueMedium:
		return types.RecommendDelegate
	case tier == types.ValueLow && attendeeFlag:
		return types.RecommendDelegate
	default:
		return types.RecommendKeep
	}
}

// matchObjectives returns the labels of objectives with at least one
// matched key result (in objective definition order) and the total
// count of distinct matched key results.
func matchObjectives(searchText string, objectives []types.Objective) ([]string, int) {
	labels := []string{}
	matched := 0
	for i := range objectives {
		objectiveHit := false
		for j := range objectives[i].KeyResults {
			if keywordMatch(searchText, objectives[i].KeyResults[j].Keywords) {
				matched++
				objectiveHit = true
			}
		}
		if objectiveHit {
			labels = append(labels, objectives[i].Label)
		}
	}
	return labels, matched
}

// keywordMatch reports whether any keyword occurs in the text.
// Matching is case-insensitive substring matching, same as the
// keyword search used elsewhere in the engine.
func keywordMatch(searchText string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(searchText, kw) {
			return true
		}
	}
	return false
}

// ruleMatches reports whether an attendance rule applies to an entry,
// either by meeting type or by a descriptive pattern.
func ruleMatches(rule *types.AttendanceRule, meetingType, searchText string) bool {
	for _, mt := range rule.MeetingTypes {
		if strings.EqualFold(mt, meetingType) {
			return true
		}
	}
	return keywordMatch(searchText, rule.Patterns)
}

func checkProfile(profile *types.Profile) error {
	if profile == nil {
		return &ConfigurationError{Message: "profile is nil"}
	}
	if len(profile.Objectives) == 0 {
		return &ConfigurationError{Message: "profile has no objectives"}
	}
	return nil
}

func validateEntry(entry *types.CalendarEntry) error {
	if entry == nil {
		return &ValidationError{Message: "calendar entry is nil"}
	}
	if entry.Date == "" {
		return &ValidationError{Field: "date", Message: "missing required field"}
	}
	if entry.StartTime == "" {
		return &ValidationError{Field: "start_time", Message: "missing required field"}
	}
	if entry.EndTime == "" {
		return &ValidationError{Field: "end_time", Message: "missing required field"}
	}
	if entry.DurationMinutes <= 0 {
		return &ValidationError{Field: "duration_minutes", Message: "must be positive"}
	}
	return nil
}

func checkUniqueIDs(entries []types.CalendarEntry) error {
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		id := entries[i].ID
		if seen[id] {
			return &ValidationError{Field: "id", Message: fmt.Sprintf("duplicate calendar entry id %q", id)}
		}
		seen[id] = true
	}
	return nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
