package retropda

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sqweek/dialog"
)

// Picker asks the user for a file. An empty path with a nil error means
// the user cancelled.
type Picker interface {
	PickFile(startDir, extension string) (string, error)
}

// NativePicker opens the host's file dialog.
type NativePicker struct {
	Title string
}

// PickFile implements Picker.
func (p NativePicker) PickFile(startDir, extension string) (string, error) {
	b := dialog.File().Title(p.Title).SetStartDir(startDir)
	if extension != "" {
		b = b.Filter(filterLabel(extension), extension)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return path, nil
}

func filterLabel(extension string) string {
	if extension == "py" {
		return "Python Files (*.py)"
	}
	return fmt.Sprintf("%s Files (*.%s)", strings.ToUpper(extension), extension)
}

// ManifestInstaller records a picked file in the manifest. The file itself
// is never opened or run: installed entries are bookmarks.
type ManifestInstaller struct {
	Store     *ManifestStore
	Picker    Picker
	StartDir  string
	Extension string
}

// NewManifestInstaller wires the native picker to store using cfg.
func NewManifestInstaller(store *ManifestStore, cfg *Config) *ManifestInstaller {
	start, err := os.UserHomeDir()
	if err != nil {
		start = "."
	}
	return &ManifestInstaller{
		Store:     store,
		Picker:    NativePicker{Title: "Select Python Extension"},
		StartDir:  start,
		Extension: cfg.ExtensionFilter,
	}
}

// Install implements Installer.
func (m *ManifestInstaller) Install() (ManifestEntry, bool, error) {
	path, err := m.Picker.PickFile(m.StartDir, m.Extension)
	if err != nil {
		return ManifestEntry{}, false, err
	}
	if path == "" {
		return ManifestEntry{}, false, nil
	}
	entry := EntryForFile(path)
	if err := m.Store.Append(entry); err != nil {
		return ManifestEntry{}, false, err
	}
	return entry, true, nil
}
