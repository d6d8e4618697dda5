package llm

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

// Prompt size caps. The file listing and each key-file block are bounded so
// the prompt stays a sane size no matter what gets uploaded.
const (
	maxListedFiles  = 100
	maxKeyFileChars = 2000
)

const instructionBlock = `Respond with a JSON object containing exactly these fields:
- "summary": a concise summary of the project and what it does
- "keyFeatures": an array of exactly 4 key feature strings
- "targetAudience": who this project is for
- "techStackRating": a short assessment of the technology choices
- "suggestions": an array of exactly 3 improvement suggestions
- "projectType": a short label for the kind of project (e.g. "Node.js web app")
- "githubActionsWorkflow": a complete, deployable GitHub Actions workflow in YAML, appropriate for the detected project type

Return ONLY valid JSON. No markdown, no code fences.`

// BuildPrompt renders the analysis prompt for either context variant.
// The output is deterministic for a given context.
func BuildPrompt(ctx models.AnalysisContext) string {
	var b strings.Builder

	switch ctx.Kind {
	case models.ContextGithub:
		writeRepoPrompt(&b, ctx.Repo)
	case models.ContextLocal:
		writeLocalPrompt(&b, ctx.Local)
	}

	b.WriteString("\n")
	b.WriteString(instructionBlock)
	return b.String()
}

func writeRepoPrompt(b *strings.Builder, repo *models.Repo) {
	description := "No description provided"
	if repo.Description != nil && *repo.Description != "" {
		description = *repo.Description
	}
	language := "Unknown"
	if repo.Language != nil && *repo.Language != "" {
		language = *repo.Language
	}

	fmt.Fprintf(b, "Analyze the GitHub repository %s for deployment.\n\n", repo.FullName)
	fmt.Fprintf(b, "Description: %s\n", description)
	fmt.Fprintf(b, "Primary language: %s\n", language)
	fmt.Fprintf(b, "Topics: %s\n", strings.Join(repo.Topics, ", "))
}

func writeLocalPrompt(b *strings.Builder, p *models.LocalProject) {
	fmt.Fprintf(b, "Analyze the uploaded project %s for deployment.\n\n", p.Name)
	fmt.Fprintf(b, "Description: %s\n", p.Description)

	listed := p.Files
	if len(listed) > maxListedFiles {
		listed = listed[:maxListedFiles]
	}
	fmt.Fprintf(b, "\nFile listing (%d files total):\n%s\n", len(p.Files), strings.Join(listed, "\n"))

	paths := make([]string, 0, len(p.KeyFiles))
	for path := range p.KeyFiles {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		content := p.KeyFiles[path]
		// Cap is in characters, not bytes: never cut a rune in half.
		if utf8.RuneCountInString(content) > maxKeyFileChars {
			content = string([]rune(content)[:maxKeyFileChars])
		}
		fmt.Fprintf(b, "\n--- %s ---\n%s\n", path, content)
	}
}
