package models

import "time"

// Repo is an immutable snapshot of a repository as returned by the GitHub
// REST API (GET /repos/{owner}/{repo}). Fetched once per query and discarded
// when the next query starts.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    *string   `json:"language"`
	Owner       RepoOwner `json:"owner"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RepoOwner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}
