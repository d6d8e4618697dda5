package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider talks to an OpenAI-compatible chat completion endpoint with
// a strict JSON-schema response format mirroring AIAnalysis.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = resolveBaseURL(baseURL, cfg.BaseURL)
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string { return "openai:" + p.model }

// resolveBaseURL keeps the SDK's default endpoint when no override is set.
func resolveBaseURL(baseURL, fallback string) string {
	if baseURL == "" {
		return fallback
	}
	return strings.TrimSuffix(baseURL, "/")
}

// analysisSchema declares every field required so conforming backends cannot
// omit any of them. The response is still validated after parsing.
var analysisSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"summary":               {Type: jsonschema.String},
		"keyFeatures":           {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
		"targetAudience":        {Type: jsonschema.String},
		"techStackRating":       {Type: jsonschema.String},
		"suggestions":           {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
		"projectType":           {Type: jsonschema.String},
		"githubActionsWorkflow": {Type: jsonschema.String},
	},
	Required: []string{
		"summary", "keyFeatures", "targetAudience", "techStackRating",
		"suggestions", "projectType", "githubActionsWorkflow",
	},
	AdditionalProperties: false,
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "repo_analysis",
				Schema: &analysisSchema,
				Strict: true,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
