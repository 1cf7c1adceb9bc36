// Package stylecheck implements the communication style analyzer: it
// checks a block of drafted text against a configured style guide and
// produces a score with categorized issues and suggested fixes.
package stylecheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// Default per-severity score penalties. A guide may override them via
// its penalties block.
const (
	defaultHighPenalty   = 20
	defaultMediumPenalty = 10
	defaultLowPenalty    = 5
)

// Score bands for the one-line summary.
const (
	excellentThreshold = 85
	goodThreshold      = 70
	revisionThreshold  = 50
)

// Analyze checks text against the style guide. It is a pure function:
// neither argument is mutated and identical input yields an identical
// report. Issues are reported in rule definition order, not document
// scan order, so severity classes group predictably for the caller.
func Analyze(text string, guide *types.StyleGuide) (*types.StyleReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "text is empty, nothing to analyze"}
	}
	if guide == nil {
		return nil, &ConfigurationError{Message: "style guide is nil"}
	}
	if len(guide.Rules) == 0 {
		return nil, &ConfigurationError{Message: "style guide has no rules"}
	}

	doc := newDocument(text)

	issues := []types.StyleIssue{}
	for i := range guide.Rules {
		rule := &guide.Rules[i]
		ruleIssues, err := evaluateRule(rule, doc)
		if err != nil {
			return nil, err
		}
		issues = append(issues, ruleIssues...)
	}

	score := scoreIssues(issues, guide.Penalties)
	return &types.StyleReport{
		Score:   score,
		Summary: summaryForScore(score),
		Issues:  issues,
	}, nil
}

// document holds the derived views of the input text that rules match
// against, computed once per analysis.
type document struct {
	text      string
	lower     string
	sentences []string
	firstLine string
	wordCount int
}

func newDocument(text string) *document {
	trimmed := strings.TrimSpace(text)
	firstLine := trimmed
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		firstLine = trimmed[:idx]
	}
	return &document{
		text:      text,
		lower:     strings.ToLower(text),
		sentences: splitSentences(text),
		firstLine: strings.ToLower(strings.TrimSpace(firstLine)),
		wordCount: len(strings.Fields(text)),
	}
}

func evaluateRule(rule *types.StyleRule, doc *document) ([]types.StyleIssue, error) {
	switch rule.Kind {
	case types.RuleKindTerms:
		return matchTerms(rule, doc), nil
	case types.RuleKindPatterns:
		return matchPatterns(rule, doc)
	case types.RuleKindStructural:
		check, ok := structuralChecks[rule.Check]
		if !ok {
			return nil, &ConfigurationError{Message: fmt.Sprintf("unknown structural check %q in rule %q", rule.Check, rule.Name)}
		}
		matched, fired := check(doc)
		if !fired {
			return nil, nil
		}
		return []types.StyleIssue{{
			Category:   rule.Category,
			Severity:   rule.Severity,
			Matched:    matched,
			Issue:      rule.Issue,
			Suggestion: rule.Suggestion,
		}}, nil
	default:
		return nil, &ConfigurationError{Message: fmt.Sprintf("unknown rule kind %q in rule %q", rule.Kind, rule.Name)}
	}
}

// matchTerms flags one issue per banned term found, in term definition
// order. Matching is case-insensitive substring matching over each
// sentence.
func matchTerms(rule *types.StyleRule, doc *document) []types.StyleIssue {
	issues := []types.StyleIssue{}
	for _, term := range rule.Terms {
		termLower := strings.ToLower(strings.TrimSpace(term))
		if termLower == "" {
			continue
		}
		for _, sentence := range doc.sentences {
			if strings.Contains(strings.ToLower(sentence), termLower) {
				issues = append(issues, types.StyleIssue{
					Category:   rule.Category,
					Severity:   rule.Severity,
					Matched:    term,
					Issue:      fmt.Sprintf("%s: %q", rule.Issue, term),
					Suggestion: rule.Suggestion,
				})
				break
			}
		}
	}
	return issues
}

// matchPatterns flags the first sentence matching each pattern.
func matchPatterns(rule *types.StyleRule, doc *document) ([]types.StyleIssue, error) {
	issues := []types.StyleIssue{}
	for _, pattern := range rule.Patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("invalid pattern in rule %q", rule.Name), Cause: err}
		}
		for _, sentence := range doc.sentences {
			if match := re.FindString(sentence); match != "" {
				issues = append(issues, types.StyleIssue{
					Category:   rule.Category,
					Severity:   rule.Severity,
					Matched:    match,
					Issue:      fmt.Sprintf("%s: %q", rule.Issue, match),
					Suggestion: rule.Suggestion,
				})
				break
			}
		}
	}
	return issues, nil
}

func scoreIssues(issues []types.StyleIssue, penalties map[types.Severity]int) int {
	score := 100
	for i := range issues {
		score -= penaltyFor(issues[i].Severity, penalties)
	}
	if score < 0 {
		score = 0
	}
	return score
}

func penaltyFor(severity types.Severity, penalties map[types.Severity]int) int {
	if p, ok := penalties[severity]; ok && p > 0 {
		return p
	}
	switch severity {
	case types.SeverityHigh:
		return defaultHighPenalty
	case types.SeverityMedium:
		return defaultMediumPenalty
	default:
		return defaultLowPenalty
	}
}

// summaryForScore selects the one-line summary from fixed score bands.
func summaryForScore(score int) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent - follows the communication style guide well."
	case score >= goodThreshold:
		return "Good structure, minor issues - consider the suggestions."
	case score >= revisionThreshold:
		return "Needs revision - several areas need attention."
	default:
		return "Significant rework needed to align with the style guide."
	}
}
