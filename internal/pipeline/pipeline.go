package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
	"github.com/thatadevbrasil/GITLENS-AI/internal/project"
	"golang.org/x/sync/errgroup"
)

// Fetcher looks up repository metadata by "owner/name" reference.
type Fetcher interface {
	Lookup(ctx context.Context, ref string) (*models.Repo, error)
}

// Analyzer produces the AI analysis for a context.
type Analyzer interface {
	Analyze(ctx context.Context, analysisCtx models.AnalysisContext) (*models.AIAnalysis, error)
}

type Options struct {
	// Concurrency bounds the number of in-flight repo analyses.
	Concurrency int
}

// Result pairs one reference with its outcome. Err is set when that ref
// failed; the batch keeps going.
type Result struct {
	Ref      string
	Context  models.AnalysisContext
	Analysis *models.AIAnalysis
	Err      error
}

// Run fetches and analyzes each repository reference with bounded
// concurrency. Per-ref failures become warnings in the result set rather than
// aborting the whole batch.
func Run(ctx context.Context, gh Fetcher, ai Analyzer, refs []string, opts Options) ([]Result, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no repository references given")
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 3
	}

	results := make([]Result, len(refs))

	var done atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, ref := range refs {
		g.Go(func() error {
			results[i] = analyzeOne(gCtx, gh, ai, ref)
			if results[i].Err != nil {
				fmt.Printf("  WARN: %s: %v\n", ref, results[i].Err)
			}

			n := done.Add(1)
			fmt.Printf("  Analyzed %d/%d\n", n, len(refs))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func analyzeOne(ctx context.Context, gh Fetcher, ai Analyzer, ref string) Result {
	repo, err := gh.Lookup(ctx, ref)
	if err != nil {
		return Result{Ref: ref, Err: err}
	}

	analysisCtx := project.FromRepository(repo)
	analysis, err := ai.Analyze(ctx, analysisCtx)
	if err != nil {
		return Result{Ref: ref, Context: analysisCtx, Err: err}
	}

	return Result{Ref: ref, Context: analysisCtx, Analysis: analysis}
}
