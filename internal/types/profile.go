package types

// KeyResult is a measurable sub-target of an objective. Keywords drive
// lexical matching of the key result against meeting titles and
// descriptions.
type KeyResult struct {
	Name     string   `json:"name"`
	Target   float64  `json:"target"`
	Current  float64  `json:"current"`
	Keywords []string `json:"keywords"`
}

// Objective is a named goal with its key results.
type Objective struct {
	Label      string      `json:"label"`
	KeyResults []KeyResult `json:"key_results"`
}

// AttendanceRuleKind classifies an attendance rule.
type AttendanceRuleKind string

// Attendance rule kinds.
const (
	RuleMustAvoid      AttendanceRuleKind = "must_avoid"
	RuleMustPrioritize AttendanceRuleKind = "must_prioritize"
)

// AttendanceRule marks meeting types or descriptive patterns as
// must-avoid or must-prioritize, with a human-readable reason that
// is surfaced in flags.
type AttendanceRule struct {
	Kind         AttendanceRuleKind `json:"kind"`
	MeetingTypes []string           `json:"meeting_types,omitempty"`
	Patterns     []string           `json:"patterns,omitempty"`
	Reason       string             `json:"reason"`
}

// TimeAllocation groups meeting types into buckets with a target share
// of total meeting time.
type TimeAllocation struct {
	Bucket        string   `json:"bucket"`
	MeetingTypes  []string `json:"meeting_types"`
	TargetPercent int      `json:"target_percent"`
}

// ScoringWeights holds the tunable constants of the classifier. Zero
// values fall back to the package defaults in internal/auditing.
type ScoringWeights struct {
	BaselineScore       int `json:"baseline_score,omitempty"`
	KeyResultBonus      int `json:"key_result_bonus,omitempty"`
	KeyResultBonusTail  int `json:"key_result_bonus_tail,omitempty"`
	MustAvoidPenalty    int `json:"must_avoid_penalty,omitempty"`
	MustPrioritizeBonus int `json:"must_prioritize_bonus,omitempty"`
	AsyncPenalty        int `json:"async_penalty,omitempty"`
	LargeMeetingPenalty int `json:"large_meeting_penalty,omitempty"`
	DurationCeilingMin  int `json:"duration_ceiling_minutes,omitempty"`
	LargeGroupThreshold int `json:"large_group_threshold,omitempty"`
}

// Profile is the parsed representation of the user's objectives,
// attendance rules and time-allocation targets. It is produced by
// configuration loading and consumed read-only by the classifier.
type Profile struct {
	Objectives      []Objective      `json:"objectives"`
	AttendanceRules []AttendanceRule `json:"attendance_rules"`
	TimeAllocations []TimeAllocation `json:"time_allocations,omitempty"`
	Weights         ScoringWeights   `json:"weights,omitempty"`
}
