// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/chief-of-staff/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAuditSummary outputs the calendar health overview.
func (p *Printer) PrintAuditSummary(summary *types.AuditSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Meetings analyzed:    %d\n", summary.TotalMeetings))
	sb.WriteString(fmt.Sprintf("High strategic value: %d\n", summary.HighStrategicValue))
	sb.WriteString(fmt.Sprintf("Needs attention:      %d\n", summary.NeedsAttention))
	sb.WriteString(fmt.Sprintf("Calendar health:      %d/100", summary.HealthScore))

	p.printBox("CALENDAR AUDIT", sb.String())
}

// PrintAuditResults outputs the given meetings under a title box. The
// caller decides the selection (all meetings, or just flagged ones).
func (p *Printer) PrintAuditResults(title string, results []types.AuditResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("%s (%d/100, %s)\n", r.Entry.Title, r.AlignmentScore, r.StrategicValue))
		for _, flag := range r.Flags {
			sb.WriteString(fmt.Sprintf("  ! %s\n", flag))
		}
		sb.WriteString(fmt.Sprintf("  -> %s\n", r.Recommendation))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBriefing outputs the daily briefing.
func (p *Printer) PrintBriefing(briefing *types.DailyBriefing) {
	if briefing == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Date:            %s\n", briefing.Date))
	sb.WriteString(fmt.Sprintf("Meetings:        %d (%.1fh)\n", briefing.TotalMeetings, briefing.TotalHours))
	sb.WriteString(fmt.Sprintf("Strategic time:  %d%%\n", briefing.StrategicPercentage))
	sb.WriteString("\n")

	for _, m := range briefing.Meetings {
		marker := " "
		if m.Flagged() {
			marker = "!"
		}
		sb.WriteString(fmt.Sprintf("%s %s-%s %s (%d)\n",
			marker, m.Entry.StartTime, m.Entry.EndTime, m.Entry.Title, m.AlignmentScore))
	}

	p.printBox("DAILY BRIEFING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStyleReport outputs a style check report.
func (p *Printer) PrintStyleReport(report *types.StyleReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %d/100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Summary: %s\n", report.Summary))

	if len(report.Issues) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("[%s/%s] %s\n", issue.Category, issue.Severity, issue.Issue))
			if issue.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("  -> %s\n", issue.Suggestion))
			}
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	}

	p.printBox("STYLE CHECK", strings.TrimSuffix(sb.String(), "\n"))
}
