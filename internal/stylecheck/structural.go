package stylecheck

import (
	"fmt"
	"regexp"
	"strings"
)

// structuralCheck inspects the document as a whole. It returns the
// matched text (may be empty) and whether the rule fired.
type structuralCheck func(doc *document) (matched string, fired bool)

// structuralChecks maps rule identifiers to their predicates. New
// checks are additive entries here, not new branching in the analyzer.
var structuralChecks = map[string]structuralCheck{
	"bluf":             checkBLUF,
	"passive_voice":    checkPassiveVoice,
	"action_items":     checkActionItems,
	"metrics":          checkMetrics,
	"over_apologizing": checkOverApologizing,
}

// blufIndicators mark a first line that leads with the conclusion.
var blufIndicators = []string{
	"status:", "decision:", "ask:", "summary:", "tldr:", "tl;dr:",
	"recommendation:", "request:", "update:", "issue:", "action:",
}

// contextStarters mark a first line that buries the lede in context.
var contextStarters = []string{
	"as you know", "i wanted to", "i'm writing to", "following up",
	"per our", "regarding", "in reference", "as discussed",
	"sorry to bother",
}

var (
	passiveVoicePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(was|were|been|being|is|are|am)\s+\w+ed\b`),
		regexp.MustCompile(`\b(has|have|had)\s+been\s+\w+ed\b`),
	}

	actionItemPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(next steps?|action items?|todo|to-do)\b`),
		regexp.MustCompile(`\b(will|shall)\s+\w+`),
		regexp.MustCompile(`\[@\w+\]`),
		regexp.MustCompile(`\b(by|deadline|due)\s+\w+day\b`),
	}

	metricPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\d+\s*(hours?|days?|weeks?|months?)`),
		regexp.MustCompile(`\$\d+`),
		regexp.MustCompile(`\d+\s*(users?|customers?|requests?|errors?)`),
	}

	overApologyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bsorry\b.*\bsorry\b`),
		regexp.MustCompile(`\bapologize\b.*\bapologize\b`),
		regexp.MustCompile(`^\s*sorry\b`),
	}

	// statusIndicators mark text that reads like a progress report, for
	// which quantified metrics are expected.
	statusIndicators = []string{"update", "progress", "status", "report", "weekly"}
)

// Longer messages are expected to state next steps; shorter ones get a
// pass.
const actionItemWordThreshold = 50

// Occasional passive voice is tolerated; only excessive use fires.
const passiveVoiceThreshold = 2

// checkBLUF fires when the first line neither leads with a conclusion
// marker nor states the point, but instead opens with context.
func checkBLUF(doc *document) (string, bool) {
	for _, indicator := range blufIndicators {
		if strings.Contains(doc.firstLine, indicator) {
			return "", false
		}
	}
	for _, starter := range contextStarters {
		if strings.HasPrefix(doc.firstLine, starter) {
			return starter, true
		}
	}
	return "", false
}

func checkPassiveVoice(doc *document) (string, bool) {
	count := 0
	for _, re := range passiveVoicePatterns {
		count += len(re.FindAllString(doc.lower, -1))
	}
	if count > passiveVoiceThreshold {
		return fmt.Sprintf("%d passive constructions", count), true
	}
	return "", false
}

func checkActionItems(doc *document) (string, bool) {
	if doc.wordCount <= actionItemWordThreshold {
		return "", false
	}
	for _, re := range actionItemPatterns {
		if re.MatchString(doc.lower) {
			return "", false
		}
	}
	return "", true
}

// checkMetrics fires when text discusses progress but carries no
// numeral, percentage, dollar amount or count.
func checkMetrics(doc *document) (string, bool) {
	isStatus := false
	for _, indicator := range statusIndicators {
		if strings.Contains(doc.lower, indicator) {
			isStatus = true
			break
		}
	}
	if !isStatus {
		return "", false
	}
	for _, re := range metricPatterns {
		if re.MatchString(doc.text) {
			return "", false
		}
	}
	return "", true
}

func checkOverApologizing(doc *document) (string, bool) {
	for _, re := range overApologyPatterns {
		if match := re.FindString(doc.lower); match != "" {
			return strings.TrimSpace(match), true
		}
	}
	return "", false
}
