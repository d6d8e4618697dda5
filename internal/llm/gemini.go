package llm

import (
	"context"
	"fmt"

	genai "google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider wraps the official genai client, asking for
// application/json output constrained to the analysis schema.
type GeminiProvider struct {
	cli   *genai.Client
	model string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{cli: cli, model: model}, nil
}

func (p *GeminiProvider) Name() string { return "gemini:" + p.model }

var geminiAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":               {Type: genai.TypeString},
		"keyFeatures":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"targetAudience":        {Type: genai.TypeString},
		"techStackRating":       {Type: genai.TypeString},
		"suggestions":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"projectType":           {Type: genai.TypeString},
		"githubActionsWorkflow": {Type: genai.TypeString},
	},
	Required: []string{
		"summary", "keyFeatures", "targetAudience", "techStackRating",
		"suggestions", "projectType", "githubActionsWorkflow",
	},
}

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.cli.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   geminiAnalysisSchema,
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
