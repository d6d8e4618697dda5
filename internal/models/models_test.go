package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextConstructors(t *testing.T) {
	repo := &Repo{FullName: "octocat/Hello-World"}
	gh := GithubContext(repo)
	assert.Equal(t, ContextGithub, gh.Kind)
	assert.Equal(t, "octocat/Hello-World", gh.DisplayName())
	assert.Nil(t, gh.Local)

	local := LocalContext(&LocalProject{Name: "myproject"})
	assert.Equal(t, ContextLocal, local.Kind)
	assert.Equal(t, "myproject", local.DisplayName())
	assert.Nil(t, local.Repo)
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "ada", DisplayNameFromEmail("ada@example.com"))
	assert.Equal(t, "no-at-sign", DisplayNameFromEmail("no-at-sign"))
}

func TestAIAnalysisValidate(t *testing.T) {
	valid := AIAnalysis{
		Summary:               "s",
		KeyFeatures:           []string{"a", "b", "c", "d"},
		TargetAudience:        "t",
		TechStackRating:       "r",
		Suggestions:           []string{"x", "y", "z"},
		ProjectType:           "p",
		GithubActionsWorkflow: "w",
	}
	assert.NoError(t, valid.Validate())

	broken := valid
	broken.Suggestions = nil
	assert.Error(t, broken.Validate())

	broken = valid
	broken.GithubActionsWorkflow = ""
	assert.Error(t, broken.Validate())
}
