package models

// ContextKind tags the active variant of an AnalysisContext.
type ContextKind string

const (
	ContextGithub ContextKind = "github"
	ContextLocal  ContextKind = "local"
)

// AnalysisContext is a closed two-variant union: a GitHub repository snapshot
// or an ingested local archive. Exactly one variant pointer is non-nil;
// consumers must switch on Kind before touching variant fields.
type AnalysisContext struct {
	Kind  ContextKind   `json:"kind"`
	Repo  *Repo         `json:"repo,omitempty"`
	Local *LocalProject `json:"local,omitempty"`
}

// GithubContext wraps a repository snapshot under the github tag.
func GithubContext(repo *Repo) AnalysisContext {
	return AnalysisContext{Kind: ContextGithub, Repo: repo}
}

// LocalContext wraps an ingested archive under the local tag.
func LocalContext(project *LocalProject) AnalysisContext {
	return AnalysisContext{Kind: ContextLocal, Local: project}
}

// DisplayName is what the UI layer labels the result with.
func (c AnalysisContext) DisplayName() string {
	switch c.Kind {
	case ContextGithub:
		return c.Repo.FullName
	case ContextLocal:
		return c.Local.Name
	}
	return ""
}
