package types

// Severity ranks how strongly a style issue violates the guide.
type Severity string

// Severity levels, from most to least severe.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// StyleRuleCategory groups style rules by the concern they check.
type StyleRuleCategory string

// Style rule categories.
const (
	CategoryStructure     StyleRuleCategory = "Structure"
	CategoryTone          StyleRuleCategory = "Tone"
	CategoryClarity       StyleRuleCategory = "Clarity"
	CategorySpecificity   StyleRuleCategory = "Specificity"
	CategoryActionability StyleRuleCategory = "Actionability"
	CategoryData          StyleRuleCategory = "Data"
)

// StyleRuleKind selects the detection machinery for a rule.
type StyleRuleKind string

// Style rule kinds. Term and pattern rules flag matching sentences;
// structural rules flag the document as a whole.
const (
	RuleKindTerms      StyleRuleKind = "terms"
	RuleKindPatterns   StyleRuleKind = "patterns"
	RuleKindStructural StyleRuleKind = "structural"
)

// StyleRule is one named check from the communication style guide.
// Rules are evaluated in definition order so issue ordering is stable.
type StyleRule struct {
	Name       string            `json:"name"`
	Category   StyleRuleCategory `json:"category"`
	Kind       StyleRuleKind     `json:"kind"`
	Severity   Severity          `json:"severity"`
	Terms      []string          `json:"terms,omitempty"`
	Patterns   []string          `json:"patterns,omitempty"`
	Check      string            `json:"check,omitempty"`
	Issue      string            `json:"issue"`
	Suggestion string            `json:"suggestion"`
}

// StyleGuide is the parsed communication style guide: an ordered rule
// list plus the per-severity penalties applied while scoring.
type StyleGuide struct {
	Rules     []StyleRule      `json:"rules"`
	Penalties map[Severity]int `json:"penalties,omitempty"`
}

// StyleIssue is a single finding from the style analyzer.
type StyleIssue struct {
	Category   StyleRuleCategory `json:"category"`
	Severity   Severity          `json:"severity"`
	Matched    string            `json:"matched,omitempty"`
	Issue      string            `json:"issue"`
	Suggestion string            `json:"suggestion"`
}

// StyleReport is the result of analyzing one block of text.
type StyleReport struct {
	Score   int          `json:"score"`
	Summary string       `json:"summary"`
	Issues  []StyleIssue `json:"issues"`
}
