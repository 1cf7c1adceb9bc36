package stylecheck

import "strings"

// Common abbreviations that end in a period but do not terminate a
// sentence. Lowercased, without the trailing period.
var abbreviations = map[string]bool{
	"e.g": true, "i.e": true, "etc": true, "vs": true,
	"mr": true, "mrs": true, "ms": true, "dr": true,
	"approx": true, "dept": true, "inc": true, "no": true,
}

// splitSentences segments text into sentences on terminal punctuation
// (. ! ?), tolerating common abbreviations so they do not cause false
// splits. Whitespace-only segments are dropped.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// A terminator only ends the sentence if followed by
		// whitespace or end of text.
		if i+1 < len(runes) && !isSpace(runes[i+1]) {
			continue
		}

		if r == '.' && isAbbreviation(current.String()) {
			continue
		}

		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// isAbbreviation reports whether the text so far ends in a known
// abbreviation (including its trailing period).
func isAbbreviation(soFar string) bool {
	trimmed := strings.TrimSuffix(soFar, ".")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	return abbreviations[last]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
