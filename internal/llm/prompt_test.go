package llm

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

func TestBuildPromptGithub(t *testing.T) {
	desc := "A hello world repo"
	lang := "Go"
	repo := &models.Repo{
		FullName:    "octocat/Hello-World",
		Description: &desc,
		Language:    &lang,
		Topics:      []string{"example", "demo"},
	}

	prompt := BuildPrompt(models.GithubContext(repo))

	assert.Contains(t, prompt, "octocat/Hello-World")
	assert.Contains(t, prompt, "Description: A hello world repo")
	assert.Contains(t, prompt, "Primary language: Go")
	assert.Contains(t, prompt, "Topics: example, demo")
	assert.Contains(t, prompt, `"githubActionsWorkflow"`)
}

func TestBuildPromptGithubPlaceholders(t *testing.T) {
	prompt := BuildPrompt(models.GithubContext(&models.Repo{FullName: "a/b"}))

	assert.Contains(t, prompt, "No description provided")
	assert.Contains(t, prompt, "Primary language: Unknown")
}

func TestBuildPromptFileListingCap(t *testing.T) {
	files := make([]string, 250)
	for i := range files {
		files[i] = fmt.Sprintf("src/file-%03d.js", i)
	}
	p := &models.LocalProject{Name: "big", Description: "d", Files: files}

	prompt := BuildPrompt(models.LocalContext(p))

	assert.Equal(t, 100, strings.Count(prompt, "src/file-"), "listing is capped at 100 paths")
	assert.Contains(t, prompt, "250 files total")
}

func TestBuildPromptKeyFileContentCap(t *testing.T) {
	long := strings.Repeat("x", 5000)
	p := &models.LocalProject{
		Name:        "big",
		Description: "d",
		Files:       []string{"package.json"},
		KeyFiles:    map[string]string{"package.json": long},
	}

	prompt := BuildPrompt(models.LocalContext(p))

	require.Contains(t, prompt, "--- package.json ---")
	assert.Contains(t, prompt, strings.Repeat("x", 2000))
	assert.NotContains(t, prompt, strings.Repeat("x", 2001))
}

func TestBuildPromptKeyFileCapCountsCharacters(t *testing.T) {
	// 2500 characters, 5000 bytes: the cap must keep 2000 characters and
	// never leave a broken rune at the cut.
	long := strings.Repeat("ü", 2500)
	p := &models.LocalProject{
		Name:        "big",
		Description: "d",
		Files:       []string{"README.md"},
		KeyFiles:    map[string]string{"README.md": long},
	}

	prompt := BuildPrompt(models.LocalContext(p))

	assert.True(t, utf8.ValidString(prompt))
	assert.Contains(t, prompt, strings.Repeat("ü", 2000))
	assert.NotContains(t, prompt, strings.Repeat("ü", 2001))
}

func TestBuildPromptDeterministicKeyFileOrder(t *testing.T) {
	p := &models.LocalProject{
		Name:        "p",
		Description: "d",
		Files:       []string{"b", "a"},
		KeyFiles:    map[string]string{"b/go.mod": "module b", "a/go.mod": "module a"},
	}
	ctx := models.LocalContext(p)

	first := BuildPrompt(ctx)
	for range 10 {
		assert.Equal(t, first, BuildPrompt(ctx))
	}
	assert.Less(t, strings.Index(first, "a/go.mod"), strings.Index(first, "b/go.mod"))
}
