package models

// LocalProject describes an uploaded project archive after ingestion.
// Built once per upload; immutable afterward.
type LocalProject struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Files       []string          `json:"files"`
	KeyFiles    map[string]string `json:"key_files"`
}
