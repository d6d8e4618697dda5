package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

// Store persists the simulated user profile as a single JSON file: read once
// at startup, written on every profile change, removed on logout. There is no
// real authentication behind it.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored profile, or (nil, nil) when no one is "logged in".
func (s *Store) Load() (*models.User, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return &u, nil
}

func (s *Store) Save(u *models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating profile dir: %w", err)
	}
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Clear removes the profile. Missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing profile: %w", err)
	}
	return nil
}
