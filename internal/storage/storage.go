package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/nsaa-volleyball/internal/result"
)

// Store handles persistence of the aggregated results document
type Store struct {
	path string
}

// New creates a Store writing to the given file path. A leading ~/ is
// expanded to the user's home directory.
func New(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	return &Store{
		path: path,
	}, nil
}

// Path returns the configured output path.
func (s *Store) Path() string {
	return s.path
}

// Write serializes the document to the store's path and returns the
// absolute path written. Missing parent directories are created.
// Non-ASCII text is written literally and HTML characters are left
// unescaped, so the file reads like the pages it came from.
func (s *Store) Write(doc *result.Document) (string, error) {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}

	if err := os.WriteFile(abs, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}

	return abs, nil
}

// Load reads a previously written document from disk. The read-side
// commands require one, so a missing file is an error here.
func (s *Store) Load() (*result.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}

	var doc result.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}

	// Ensure the team map is initialized
	if doc.ByTeam == nil {
		doc.ByTeam = make(map[string][]*result.Record)
	}

	return &doc, nil
}
