package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/chief-of-staff/internal/schemas"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// LoadProfile loads an OKR profile from a JSON file. When the profile
// schema can be located it is validated first, so malformed profiles
// are rejected before any classification is attempted.
func LoadProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/okr_profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("profile does not validate against schema: %w", err)
			}
			// Schema loading problems are not the profile's fault;
			// structural checks below still apply.
		}
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if len(profile.Objectives) == 0 {
		return nil, fmt.Errorf("profile error: no objectives defined in %s", path)
	}
	for i := range profile.Objectives {
		if profile.Objectives[i].Label == "" {
			return nil, fmt.Errorf("profile error: objective %d has no label", i)
		}
	}

	return &profile, nil
}

// DefaultProfile returns the built-in CTO profile. It mirrors the
// shipped sample configuration and serves as the zero-config default
// for the CLI.
func DefaultProfile() *types.Profile {
	return &types.Profile{
		Objectives: []types.Objective{
			{
				Label: "Platform Modernization",
				KeyResults: []types.KeyResult{
					{
						Name:     "Migrate core services to Kubernetes",
						Target:   100,
						Current:  60,
						Keywords: []string{"kubernetes", "k8s", "migration", "deployment", "devops", "ci/cd"},
					},
					{
						Name:     "Improve platform uptime",
						Target:   99.95,
						Current:  99.9,
						Keywords: []string{"uptime", "infrastructure", "platform", "architecture"},
					},
				},
			},
			{
				Label: "Build World-Class Engineering Team",
				KeyResults: []types.KeyResult{
					{
						Name:     "Hire staff and principal engineers",
						Target:   5,
						Current:  2,
						Keywords: []string{"hire", "hiring", "interview", "staff engineer", "principal"},
					},
					{
						Name:     "Reduce engineering attrition",
						Target:   8,
						Current:  12,
						Keywords: []string{"attrition", "mentorship", "mentor", "career growth", "1:1"},
					},
				},
			},
			{
				Label: "AI/ML Integration",
				KeyResults: []types.KeyResult{
					{
						Name:     "Ship AI-assisted search",
						Target:   1,
						Current:  0,
						Keywords: []string{"machine learning", "artificial intelligence", "search"},
					},
					{
						Name:     "Stand up data science function",
						Target:   3,
						Current:  1,
						Keywords: []string{"data science", "model", "poc"},
					},
				},
			},
		},
		AttendanceRules: []types.AttendanceRule{
			{
				Kind:     types.RuleMustAvoid,
				Patterns: []string{"junior", "intern", "new hire", "onboarding", "coffee chat"},
				Reason:   "junior-level activity - delegate to the engineering manager",
			},
			{
				Kind:         types.RuleMustAvoid,
				MeetingTypes: []string{types.MeetingTypeStandup, types.MeetingTypeSprintCeremony},
				Reason:       "team ceremony - executive attendance rarely necessary",
			},
			{
				Kind: types.RuleMustPrioritize,
				MeetingTypes: []string{
					types.MeetingTypeArchitecture,
					types.MeetingTypeStrategicPlanning,
					types.MeetingTypeBoardPrep,
					types.MeetingTypeIncidentReview,
				},
				Reason: "core strategic meeting type",
			},
			{
				Kind:     types.RuleMustPrioritize,
				Patterns: []string{"board", "investor", "ceo", "cfo"},
				Reason:   "senior-level engagement",
			},
		},
		TimeAllocations: []types.TimeAllocation{
			{
				Bucket:        "strategic",
				MeetingTypes:  []string{types.MeetingTypeArchitecture, types.MeetingTypeStrategicPlanning, types.MeetingTypeBoardPrep, types.MeetingTypeHiring},
				TargetPercent: 60,
			},
			{
				Bucket:        "enablement",
				MeetingTypes:  []string{types.MeetingTypeOneOnOne, types.MeetingTypeInterview, types.MeetingTypeIncidentReview},
				TargetPercent: 25,
			},
			{
				Bucket:        "admin",
				MeetingTypes:  []string{types.MeetingTypeStandup, types.MeetingTypeStatusUpdate, types.MeetingTypePrep, types.MeetingTypeAdhoc},
				TargetPercent: 15,
			},
		},
	}
}
