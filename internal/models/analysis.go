package models

import "fmt"

// Expected list lengths in the analysis contract.
const (
	KeyFeatureCount = 4
	SuggestionCount = 3
)

// AIAnalysis is the structured result the AI backend must return. All seven
// fields are required; absence of any one is a contract violation, never
// something to default around.
type AIAnalysis struct {
	Summary               string   `json:"summary"`
	KeyFeatures           []string `json:"keyFeatures"`
	TargetAudience        string   `json:"targetAudience"`
	TechStackRating       string   `json:"techStackRating"`
	Suggestions           []string `json:"suggestions"`
	ProjectType           string   `json:"projectType"`
	GithubActionsWorkflow string   `json:"githubActionsWorkflow"`
}

// Validate checks the response contract. A missing JSON field decodes to its
// zero value, so empty strings and wrong-length lists are both rejected.
func (a *AIAnalysis) Validate() error {
	if a.Summary == "" {
		return fmt.Errorf("missing field %q", "summary")
	}
	if len(a.KeyFeatures) != KeyFeatureCount {
		return fmt.Errorf("keyFeatures has %d items, want %d", len(a.KeyFeatures), KeyFeatureCount)
	}
	if a.TargetAudience == "" {
		return fmt.Errorf("missing field %q", "targetAudience")
	}
	if a.TechStackRating == "" {
		return fmt.Errorf("missing field %q", "techStackRating")
	}
	if len(a.Suggestions) != SuggestionCount {
		return fmt.Errorf("suggestions has %d items, want %d", len(a.Suggestions), SuggestionCount)
	}
	if a.ProjectType == "" {
		return fmt.Errorf("missing field %q", "projectType")
	}
	if a.GithubActionsWorkflow == "" {
		return fmt.Errorf("missing field %q", "githubActionsWorkflow")
	}
	return nil
}
