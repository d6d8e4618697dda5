package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloWorldJSON = `{
	"id": 1296269,
	"name": "Hello-World",
	"full_name": "octocat/Hello-World",
	"description": "My first repository on GitHub!",
	"html_url": "https://github.com/octocat/Hello-World",
	"stargazers_count": 1500,
	"forks_count": 200,
	"language": "C",
	"owner": {"login": "octocat", "avatar_url": "https://avatars.githubusercontent.com/u/583231"},
	"topics": ["octocat", "example"],
	"updated_at": "2024-01-01T00:00:00Z"
}`

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/Hello-World", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(helloWorldJSON))
	}))
	defer srv.Close()

	repo, err := NewClient(srv.URL, "").Lookup(context.Background(), "octocat/Hello-World")
	require.NoError(t, err)

	assert.Equal(t, "octocat/Hello-World", repo.FullName)
	assert.Equal(t, 1500, repo.Stars)
	assert.Equal(t, 200, repo.Forks)
	assert.Equal(t, "octocat", repo.Owner.Login)
	require.NotNil(t, repo.Language)
	assert.Equal(t, "C", *repo.Language)
	assert.Equal(t, []string{"octocat", "example"}, repo.Topics)
}

func TestLookupSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(helloWorldJSON))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok123").Lookup(context.Background(), "octocat/Hello-World")
	require.NoError(t, err)
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Lookup(context.Background(), "nobody/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSplitRef(t *testing.T) {
	owner, name, err := SplitRef("octocat/Hello-World")
	require.NoError(t, err)
	assert.Equal(t, "octocat", owner)
	assert.Equal(t, "Hello-World", name)

	for _, bad := range []string{"", "justaname", "a/b/c", "/x", "x/"} {
		_, _, err := SplitRef(bad)
		assert.Error(t, err, bad)
	}
}
