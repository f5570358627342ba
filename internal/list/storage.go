package list

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persister loads and saves the full shopping-list state. The state is a
// single value: every save is a complete overwrite.
type Persister interface {
	Load() ([]RecipeGroup, error)
	Save(groups []RecipeGroup) error
}

// FileStore persists the shopping list as one JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed persister at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the standard shopping-list location under the user's
// config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, "recifree", "shopping-list.json"), nil
}

// Load reads the persisted list. A missing file is an empty list, not an
// error; a corrupt payload is an error the caller may degrade on.
func (f *FileStore) Load() ([]RecipeGroup, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var groups []RecipeGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return groups, nil
}

// Save overwrites the persisted list with the given state.
func (f *FileStore) Save(groups []RecipeGroup) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating list directory: %w", err)
	}

	if groups == nil {
		groups = []RecipeGroup{}
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling shopping list: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}
