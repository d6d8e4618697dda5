package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
	"gopkg.in/yaml.v3"
)

// Display shows an analysis in the requested format ("human" or "json").
func Display(ctx models.AnalysisContext, analysis *models.AIAnalysis, format string) error {
	if format == "json" {
		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	displayHuman(ctx, analysis)
	return nil
}

func displayHuman(ctx models.AnalysisContext, analysis *models.AIAnalysis) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	white.Printf("%s", ctx.DisplayName())
	fmt.Printf("  (%s)\n", analysis.ProjectType)

	if ctx.Kind == models.ContextGithub {
		repo := ctx.Repo
		fmt.Printf("★ %d   ⑂ %d", repo.Stars, repo.Forks)
		if repo.Language != nil {
			fmt.Printf("   %s", *repo.Language)
		}
		fmt.Println()
	} else {
		fmt.Printf("%d files in archive\n", len(ctx.Local.Files))
	}
	fmt.Println()

	cyan.Println("SUMMARY")
	fmt.Printf("   %s\n\n", analysis.Summary)

	cyan.Println("KEY FEATURES")
	for i, f := range analysis.KeyFeatures {
		fmt.Printf("   %d. %s\n", i+1, f)
	}
	fmt.Println()

	cyan.Println("TARGET AUDIENCE")
	fmt.Printf("   %s\n\n", analysis.TargetAudience)

	cyan.Println("TECH STACK")
	fmt.Printf("   %s\n\n", analysis.TechStackRating)

	yellow.Println("SUGGESTIONS")
	for i, s := range analysis.Suggestions {
		fmt.Printf("   %d. %s\n", i+1, s)
	}
	fmt.Println()

	green.Println("GITHUB ACTIONS WORKFLOW")
	for _, line := range strings.Split(strings.TrimRight(analysis.GithubActionsWorkflow, "\n"), "\n") {
		fmt.Printf("   %s\n", line)
	}
	fmt.Println()
}

// SaveWorkflow writes the generated workflow to path after checking it parses
// as YAML. An unparseable workflow is still written; the model occasionally
// emits sloppy YAML and the user may want to fix it by hand.
func SaveWorkflow(analysis *models.AIAnalysis, path string) error {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(analysis.GithubActionsWorkflow), &doc); err != nil {
		fmt.Printf("  WARN: generated workflow is not valid YAML: %v\n", err)
	}
	if err := os.WriteFile(path, []byte(analysis.GithubActionsWorkflow), 0o644); err != nil {
		return fmt.Errorf("writing workflow: %w", err)
	}
	fmt.Printf("Workflow saved to %s\n", path)
	return nil
}
