package project

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

var (
	// ErrMalformedArchive means the archive could not be opened or decoded.
	ErrMalformedArchive = errors.New("archive is malformed or corrupt")
	// ErrUnsupportedFile means the upload is not a zip archive.
	ErrUnsupportedFile = errors.New("unsupported file type (want .zip)")
)

// Placeholder description when an archive ships no README.
const noReadmeDescription = "Uploaded project (no README found)"

const maxDescriptionLen = 300

// keyFileNames is the allow-list of files worth feeding to the analysis
// prompt: package manifests, lock files, READMEs and container definitions.
// Matched against the lowercased base name of each entry.
var keyFileNames = map[string]bool{
	"package.json":        true,
	"package-lock.json":   true,
	"yarn.lock":           true,
	"pnpm-lock.yaml":      true,
	"requirements.txt":    true,
	"pyproject.toml":      true,
	"pipfile":             true,
	"go.mod":              true,
	"go.sum":              true,
	"cargo.toml":          true,
	"cargo.lock":          true,
	"pom.xml":             true,
	"build.gradle":        true,
	"gemfile":             true,
	"composer.json":       true,
	"dockerfile":          true,
	"docker-compose.yml":  true,
	"docker-compose.yaml": true,
	"makefile":            true,
	"readme":              true,
	"readme.md":           true,
}

// readmeNames are the allow-list members whose content also becomes the
// project description.
var readmeNames = map[string]bool{
	"readme":    true,
	"readme.md": true,
}

// Entry is one member of an uploaded archive.
type Entry struct {
	Path  string
	IsDir bool
}

// ContentReader decodes the text content of an archive entry by path.
type ContentReader func(path string) (string, error)

// FromRepository wraps a fetched repository snapshot verbatim under the
// github tag. Validation is the caller's job: the upstream lookup already
// confirmed the repository exists.
func FromRepository(repo *models.Repo) models.AnalysisContext {
	return models.GithubContext(repo)
}

// FromArchive normalizes an archive listing into a local analysis context.
// It walks entries in order, collects allow-listed key files, and derives the
// description from the README when one is present. Entitlement for the upload
// path is checked by the caller before any of this runs.
func FromArchive(name string, entries []Entry, read ContentReader) (models.AnalysisContext, error) {
	files := make([]string, 0, len(entries))
	keyFiles := make(map[string]string)
	readme := ""

	for _, e := range entries {
		files = append(files, e.Path)
		if e.IsDir {
			continue
		}
		base := strings.ToLower(path.Base(e.Path))
		if !keyFileNames[base] {
			continue
		}
		content, err := read(e.Path)
		if err != nil {
			return models.AnalysisContext{}, fmt.Errorf("%w: reading %s: %v", ErrMalformedArchive, e.Path, err)
		}
		keyFiles[e.Path] = content
		if readmeNames[base] && readme == "" {
			readme = content
		}
	}

	description := noReadmeDescription
	if readme != "" {
		description = truncateDescription(readme)
	}

	return models.LocalContext(&models.LocalProject{
		Name:        strings.TrimSuffix(name, path.Ext(name)),
		Description: description,
		Files:       files,
		KeyFiles:    keyFiles,
	}), nil
}

// FromZipFile opens an uploaded .zip from disk and ingests it.
func FromZipFile(zipPath string) (models.AnalysisContext, error) {
	if !strings.EqualFold(filepath.Ext(zipPath), ".zip") {
		return models.AnalysisContext{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(zipPath))
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return models.AnalysisContext{}, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}
	defer func() { _ = r.Close() }()

	entries := make([]Entry, 0, len(r.File))
	byPath := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries = append(entries, Entry{Path: f.Name, IsDir: f.FileInfo().IsDir()})
		byPath[f.Name] = f
	}

	read := func(p string) (string, error) {
		f, ok := byPath[p]
		if !ok {
			return "", fmt.Errorf("no such entry %s", p)
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer func() { _ = rc.Close() }()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return FromArchive(filepath.Base(zipPath), entries, read)
}

// truncateDescription caps README-derived descriptions at 300 characters,
// appending an ellipsis marker when content was cut. The cap is measured in
// runes so multi-byte text is never split mid-character.
func truncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= maxDescriptionLen {
		return s
	}
	return string([]rune(s)[:maxDescriptionLen]) + "..."
}
