package retropda

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ParseError reports a manifest file that exists but cannot be used.
type ParseError struct {
	Path  string
	Index int // -1 when the whole document is bad
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("manifest %s: entry %d: %v", e.Path, e.Index, e.Err)
	}
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ManifestStore persists installed bookmarks as a JSON array.
type ManifestStore struct {
	dir  string
	path string
}

// NewManifestStore creates a store for cfg.DataDir/cfg.ManifestName.
// Nothing is touched on disk until Append.
func NewManifestStore(cfg *Config) *ManifestStore {
	return &ManifestStore{dir: cfg.DataDir, path: cfg.ManifestPath()}
}

// Path returns the manifest file location.
func (s *ManifestStore) Path() string {
	return s.path
}

// Load reads every entry. A missing file is an empty manifest.
func (s *ManifestStore) Load() ([]ManifestEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ManifestEntry{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: s.path, Index: -1, Err: err}
	}

	entries := make([]ManifestEntry, 0, len(raw))
	for i, item := range raw {
		entry, err := decodeEntry(item)
		if err != nil {
			return nil, &ParseError{Path: s.path, Index: i, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeEntry(item map[string]json.RawMessage) (ManifestEntry, error) {
	var entry ManifestEntry
	name, ok := item["name"]
	if !ok {
		return entry, errors.New(`missing "name"`)
	}
	if err := json.Unmarshal(name, &entry.Name); err != nil {
		return entry, fmt.Errorf(`"name": %w`, err)
	}
	path, ok := item["path"]
	if !ok {
		return entry, errors.New(`missing "path"`)
	}
	if err := json.Unmarshal(path, &entry.Path); err != nil {
		return entry, fmt.Errorf(`"path": %w`, err)
	}
	if strings.TrimSpace(entry.Name) == "" {
		return entry, errors.New(`empty "name"`)
	}
	if strings.TrimSpace(entry.Path) == "" {
		return entry, errors.New(`empty "path"`)
	}
	return entry, nil
}

// Append adds entry to the end of the manifest and rewrites the whole file.
func (s *ManifestStore) Append(entry ManifestEntry) error {
	if strings.TrimSpace(entry.Name) == "" || strings.TrimSpace(entry.Path) == "" {
		return errors.New("manifest entry needs a name and a path")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	entries, err := s.Load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// EntryForFile builds the bookmark recorded for a picked file.
func EntryForFile(path string) ManifestEntry {
	return ManifestEntry{Name: filepath.Base(path), Path: path}
}
