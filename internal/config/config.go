package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	GitHubToken string
	GitHubAPI   string

	Provider     string
	LLMBaseURL   string
	LLMAPIKey    string
	GeminiAPIKey string
	LLMModel     string

	ProfilePath string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		GitHubAPI:   os.Getenv("GITHUB_API_URL"),

		Provider:     strings.ToLower(os.Getenv("LLM_PROVIDER")),
		LLMBaseURL:   os.Getenv("LLM_BASE_URL"),
		LLMAPIKey:    os.Getenv("LLM_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LLMModel:     os.Getenv("LLM_MODEL"),

		ProfilePath: os.Getenv("PROFILE_PATH"),
	}

	if cfg.GitHubAPI == "" {
		cfg.GitHubAPI = "https://api.github.com"
	}
	cfg.GitHubAPI = strings.TrimSuffix(cfg.GitHubAPI, "/")

	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = "https://api.openai.com/v1"
	}

	if cfg.ProfilePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.ProfilePath = filepath.Join(home, ".gitlens-ai", "profile.json")
	}

	return cfg
}
