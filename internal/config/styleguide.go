package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/chief-of-staff/internal/schemas"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// LoadStyleGuide loads a communication style guide from a JSON file,
// validating against the style guide schema when it can be located.
func LoadStyleGuide(path string) (*types.StyleGuide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style guide file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/style_guide.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("style guide does not validate against schema: %w", err)
			}
		}
	}

	var guide types.StyleGuide
	if err := json.Unmarshal(data, &guide); err != nil {
		return nil, fmt.Errorf("failed to parse style guide JSON: %w", err)
	}

	if len(guide.Rules) == 0 {
		return nil, fmt.Errorf("style guide error: no rules defined in %s", path)
	}
	for i := range guide.Rules {
		if guide.Rules[i].Name == "" {
			return nil, fmt.Errorf("style guide error: rule %d has no name", i)
		}
	}

	return &guide, nil
}

// DefaultStyleGuide returns the built-in communication style guide.
// Rule order here is report order: structure first, then clarity and
// specificity, tone last.
func DefaultStyleGuide() *types.StyleGuide {
	return &types.StyleGuide{
		Rules: []types.StyleRule{
			{
				Name:       "bluf",
				Category:   types.CategoryStructure,
				Kind:       types.RuleKindStructural,
				Check:      "bluf",
				Severity:   types.SeverityHigh,
				Issue:      "Message doesn't lead with the main point",
				Suggestion: "Start with the conclusion, decision, or ask. Add context after.",
			},
			{
				Name:       "passive_voice",
				Category:   types.CategoryClarity,
				Kind:       types.RuleKindStructural,
				Check:      "passive_voice",
				Severity:   types.SeverityMedium,
				Issue:      "Excessive passive voice detected",
				Suggestion: "Use active voice to maintain accountability, e.g. 'The team completed...' instead of 'It was completed...'.",
			},
			{
				Name:     "vague_terms",
				Category: types.CategorySpecificity,
				Kind:     types.RuleKindTerms,
				Severity: types.SeverityMedium,
				Terms: []string{
					"significant", "substantial", "considerable", "notable",
					"good progress", "great progress", "some progress",
					"a lot", "lots of", "soon", "shortly", "eventually",
				},
				Issue:      "Vague term found",
				Suggestion: "Replace with a specific number, e.g. 'significant improvement' becomes '35% improvement'.",
			},
			{
				Name:       "action_items",
				Category:   types.CategoryActionability,
				Kind:       types.RuleKindStructural,
				Check:      "action_items",
				Severity:   types.SeverityHigh,
				Issue:      "No clear action items or next steps detected",
				Suggestion: "Add a 'Next steps' section with specific actions, owners, and deadlines.",
			},
			{
				Name:       "metrics",
				Category:   types.CategoryData,
				Kind:       types.RuleKindStructural,
				Check:      "metrics",
				Severity:   types.SeverityMedium,
				Issue:      "Status update lacks quantified metrics",
				Suggestion: "Include specific numbers: completion %, time spent, items remaining.",
			},
			{
				Name:     "banned_openers",
				Category: types.CategoryTone,
				Kind:     types.RuleKindTerms,
				Severity: types.SeverityMedium,
				Terms: []string{
					"sorry to bother", "quick sync", "just checking in",
					"touch base", "touching base", "circle back",
					"ping you", "loop you in",
				},
				Issue:      "Filler phrase detected",
				Suggestion: "Be direct. State the specific topic and the ask.",
			},
			{
				Name:       "over_apologizing",
				Category:   types.CategoryTone,
				Kind:       types.RuleKindStructural,
				Check:      "over_apologizing",
				Severity:   types.SeverityLow,
				Issue:      "Over-apologizing detected",
				Suggestion: "Reduce apologies. State the problem directly and move to the solution.",
			},
		},
	}
}
