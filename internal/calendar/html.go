package calendar

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML extracts the plain text of an HTML fragment. Text without
// markup passes through unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	// Collapse the whitespace left behind by removed tags.
	return strings.Join(strings.Fields(doc.Text()), " ")
}
