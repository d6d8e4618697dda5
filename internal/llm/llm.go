package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

var (
	// ErrRequestFailed means the completion call itself did not succeed
	// (transport, credential, backend error). Remedy: check configuration.
	ErrRequestFailed = errors.New("AI request failed")
	// ErrInvalidResponse means the backend answered but the text is not the
	// JSON object the contract requires. Remedy: retry the action.
	ErrInvalidResponse = errors.New("AI response invalid")
)

// Client turns an analysis context into one AI completion and validates the
// structured result. One attempt per call: no caching, no retry.
type Client struct {
	provider Provider
}

func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}

// Analyze builds the prompt for ctx, invokes the provider, and parses the
// response under the seven-field contract. A partially populated analysis is
// never returned.
func (c *Client) Analyze(ctx context.Context, analysisCtx models.AnalysisContext) (*models.AIAnalysis, error) {
	prompt := BuildPrompt(analysisCtx)

	raw, err := c.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return ParseAnalysis(raw)
}

// ParseAnalysis strictly parses completion text into an AIAnalysis. The
// schema is declared required to the backend, but that declaration is not
// trusted: missing fields and wrong-length lists are rejected here.
func ParseAnalysis(raw string) (*models.AIAnalysis, error) {
	content := stripCodeFences(raw)

	var analysis models.AIAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %v", ErrInvalidResponse, err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &analysis, nil
}

// stripCodeFences removes markdown code fences that some models wrap around
// JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		}
		if i := strings.LastIndex(s, "```"); i != -1 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
