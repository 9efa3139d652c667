package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/printgrid/pkg/errors"
)

// FileStore persists templates as JSON files in a config directory, one
// file per template, for CLI use.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a file-based template store. If baseDir is empty,
// it defaults to ~/.config/printgrid/templates.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "printgrid", "templates")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create template dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) path(id string) string {
	// Template ids are user input; keep them out of path traversal.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(id)
	return filepath.Join(s.baseDir, safe+".json")
}

// Load reads every template file in the directory. Files that fail to
// parse are skipped rather than failing the whole load.
func (s *FileStore) Load(ctx context.Context) ([]Stored, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read template dir %s", s.baseDir)
	}

	var out []Stored
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name()))
		if err != nil {
			continue
		}
		var t Stored
		if err := json.Unmarshal(data, &t); err != nil || t.ID == "" {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Save writes the template to its JSON file.
func (s *FileStore) Save(ctx context.Context, t Stored) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal template %s", t.ID)
	}
	if err := os.WriteFile(s.path(t.ID), data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write template %s", t.ID)
	}
	return nil
}

// Delete removes the template's file. Missing files are not an error.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "delete template %s", id)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
