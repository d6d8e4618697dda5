package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thatadevbrasil/GITLENS-AI/internal/config"
	"github.com/thatadevbrasil/GITLENS-AI/internal/github"
	"github.com/thatadevbrasil/GITLENS-AI/internal/llm"
	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
	"github.com/thatadevbrasil/GITLENS-AI/internal/pipeline"
	"github.com/thatadevbrasil/GITLENS-AI/internal/project"
	"github.com/thatadevbrasil/GITLENS-AI/internal/render"
	"github.com/thatadevbrasil/GITLENS-AI/internal/session"
)

func main() {
	root := &cobra.Command{
		Use:   "gitlens-ai",
		Short: "AI deployment analysis for GitHub repos and project archives",
	}

	root.AddCommand(analyzeCmd(), uploadCmd(), batchCmd(),
		loginCmd(), logoutCmd(), whoamiCmd(), upgradeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// latestAnalysis guards against a superseded query overwriting a newer
// result. Single-query actions apply their result through it.
var latestAnalysis session.ResultSlot[models.AIAnalysis]

func analyzeCmd() *cobra.Command {
	var format, workflowPath string

	cmd := &cobra.Command{
		Use:   "analyze [owner/repo]",
		Short: "Fetch a GitHub repository and generate a deployment analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			aiClient, err := newAnalysisClient(ctx, cfg)
			if err != nil {
				return userMessage(err)
			}

			s := newSpinner(" Looking up " + args[0] + "...")
			s.Start()
			repo, err := github.NewClient(cfg.GitHubAPI, cfg.GitHubToken).Lookup(ctx, args[0])
			s.Stop()
			if err != nil {
				return userMessage(err)
			}

			analysisCtx := project.FromRepository(repo)
			analysis, err := runAnalysis(ctx, aiClient, analysisCtx)
			if err != nil {
				return userMessage(err)
			}

			if err := render.Display(analysisCtx, analysis, format); err != nil {
				return err
			}
			if workflowPath != "" {
				return render.SaveWorkflow(analysis, workflowPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "human", "Output format (human, json)")
	cmd.Flags().StringVar(&workflowPath, "save-workflow", "", "Write the generated workflow YAML to this path")
	return cmd
}

func uploadCmd() *cobra.Command {
	var format, workflowPath string

	cmd := &cobra.Command{
		Use:   "upload [archive.zip]",
		Short: "Analyze an uploaded project archive (Pro feature)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			// Entitlement first: no archive or network work for free tiers.
			user, err := session.NewStore(cfg.ProfilePath).Load()
			if err != nil {
				return userMessage(err)
			}
			if err := (session.Session{User: user}).RequireUpload(); err != nil {
				return userMessage(err)
			}

			aiClient, err := newAnalysisClient(ctx, cfg)
			if err != nil {
				return userMessage(err)
			}

			analysisCtx, err := project.FromZipFile(args[0])
			if err != nil {
				return userMessage(err)
			}
			fmt.Printf("Ingested %s (%d files, %d key files)\n",
				analysisCtx.Local.Name, len(analysisCtx.Local.Files), len(analysisCtx.Local.KeyFiles))

			analysis, err := runAnalysis(ctx, aiClient, analysisCtx)
			if err != nil {
				return userMessage(err)
			}

			if err := render.Display(analysisCtx, analysis, format); err != nil {
				return err
			}
			if workflowPath != "" {
				return render.SaveWorkflow(analysis, workflowPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "human", "Output format (human, json)")
	cmd.Flags().StringVar(&workflowPath, "save-workflow", "", "Write the generated workflow YAML to this path")
	return cmd
}

func batchCmd() *cobra.Command {
	var concurrency int
	var format string

	cmd := &cobra.Command{
		Use:   "batch [owner/repo...]",
		Short: "Analyze several repositories concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := config.Load()

			aiClient, err := newAnalysisClient(ctx, cfg)
			if err != nil {
				return userMessage(err)
			}

			fmt.Printf("Analyzing %d repositories...\n", len(args))
			gh := github.NewClient(cfg.GitHubAPI, cfg.GitHubToken)
			results, err := pipeline.Run(ctx, gh, aiClient, args, pipeline.Options{Concurrency: concurrency})
			if err != nil {
				return userMessage(err)
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					continue
				}
				if err := render.Display(r.Context, r.Analysis, format); err != nil {
					return err
				}
			}
			if failed > 0 {
				fmt.Printf("%d of %d repositories failed (see warnings above)\n", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 3, "Number of repos analyzed in parallel")
	cmd.Flags().StringVarP(&format, "output", "o", "human", "Output format (human, json)")
	return cmd
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Log in with an email address (simulated, no password)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			user := session.NewUser(uuid.NewString(), args[0])
			if err := session.NewStore(cfg.ProfilePath).Save(user); err != nil {
				return userMessage(err)
			}
			fmt.Printf("Logged in as %s (%s tier)\n", user.Name, user.Tier)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := session.NewStore(cfg.ProfilePath).Clear(); err != nil {
				return userMessage(err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			user, err := session.NewStore(cfg.ProfilePath).Load()
			if err != nil {
				return userMessage(err)
			}
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s>  tier: %s\n", user.Name, user.Email, user.Tier)
			return nil
		},
	}
}

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the current profile to the Pro tier (simulated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			store := session.NewStore(cfg.ProfilePath)
			user, err := store.Load()
			if err != nil {
				return userMessage(err)
			}
			if user == nil {
				return fmt.Errorf("not logged in - run `gitlens-ai login <email>` first")
			}
			user.Tier = models.TierPro
			if err := store.Save(user); err != nil {
				return userMessage(err)
			}
			fmt.Printf("%s is now on the Pro tier\n", user.Name)
			return nil
		},
	}
}

func newAnalysisClient(ctx context.Context, cfg *config.Config) (*llm.Client, error) {
	provider, err := llm.NewProvider(ctx, llm.ProviderConfig{
		Provider:     cfg.Provider,
		BaseURL:      cfg.LLMBaseURL,
		APIKey:       cfg.LLMAPIKey,
		GeminiAPIKey: cfg.GeminiAPIKey,
		Model:        cfg.LLMModel,
	})
	if err != nil {
		return nil, err
	}
	return llm.NewClient(provider), nil
}

// runAnalysis executes one AI call behind a spinner and applies the result
// through the stale-result guard.
func runAnalysis(ctx context.Context, aiClient *llm.Client, analysisCtx models.AnalysisContext) (*models.AIAnalysis, error) {
	token := latestAnalysis.Begin()

	s := newSpinner(" Generating AI analysis...")
	s.Start()
	analysis, err := aiClient.Analyze(ctx, analysisCtx)
	s.Stop()
	if err != nil {
		return nil, err
	}

	if !latestAnalysis.Apply(token, analysis) {
		return nil, fmt.Errorf("analysis superseded by a newer query")
	}
	return latestAnalysis.Current(), nil
}

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = suffix
	return s
}

// userMessage converts core errors into one actionable message per action.
// The credential/transport vs bad-response distinction matters: the remedies
// differ.
func userMessage(err error) error {
	switch {
	case errors.Is(err, github.ErrNotFound):
		return fmt.Errorf("repository not found or private - check the owner/name reference")
	case errors.Is(err, session.ErrGatedFeature):
		return err
	case errors.Is(err, project.ErrUnsupportedFile):
		return fmt.Errorf("%v - only .zip archives are accepted", err)
	case errors.Is(err, project.ErrMalformedArchive):
		return fmt.Errorf("could not read the archive: %v", err)
	case errors.Is(err, llm.ErrMissingAPIKey):
		return fmt.Errorf("%v - configure a credential in the environment or .env", err)
	case errors.Is(err, llm.ErrRequestFailed):
		return fmt.Errorf("%v - check your API key and network, then try again", err)
	case errors.Is(err, llm.ErrInvalidResponse):
		return fmt.Errorf("%v - the AI returned an unusable answer, retry the analysis", err)
	default:
		return err
	}
}
