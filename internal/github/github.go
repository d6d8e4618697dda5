package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

// ErrNotFound covers every non-success status from the repository endpoint:
// the API reports 404 for both missing and private repositories.
var ErrNotFound = errors.New("repository not found or private")

// Client is a thin wrapper around the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the given API base URL. token may be empty;
// unauthenticated lookups work within GitHub's public rate limits.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
}

// Lookup fetches the metadata snapshot for an "owner/name" reference.
func (c *Client) Lookup(ctx context.Context, ref string) (*models.Repo, error) {
	owner, name, err := SplitRef(ref)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s", c.baseURL,
		url.PathEscape(owner), url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s (status %d)", ErrNotFound, ref, resp.StatusCode)
	}

	var repo models.Repo
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, fmt.Errorf("parsing response for %s: %w", ref, err)
	}
	if repo.Topics == nil {
		repo.Topics = []string{}
	}
	return &repo, nil
}

// SplitRef parses an "owner/name" reference.
func SplitRef(ref string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSpace(ref), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository reference %q (want owner/name)", ref)
	}
	return parts[0], parts[1], nil
}
