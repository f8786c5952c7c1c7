// Package tools provides the built-in views shown on the home grid.
package tools

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/phroun/retropda"
	"github.com/phroun/retropda/pkg/runner"
)

// Built-in tool names, in home-grid order.
const (
	NameFileExplorer = "File Explorer"
	NameTerminal     = "Terminal"
	NameExtensions   = "Extensions"
	NameCalculator   = "Calculator"
)

// Deps is what the built-in tools need from the application.
type Deps struct {
	Config   *retropda.Config
	Manifest *retropda.ManifestStore
	Logger   *retropda.Logger
	// RunnerOptions are passed to every new command runner.
	RunnerOptions []runner.Option
	// FileRoot overrides the file browser root (default FilesystemRoot()).
	FileRoot string
}

// Builtin returns descriptors for the four standard tools.
func Builtin(d Deps) []retropda.ToolDescriptor {
	logger := d.Logger
	if logger == nil {
		logger = retropda.NewNopLogger()
	}
	cfg := d.Config
	if cfg == nil {
		cfg = retropda.DefaultConfig()
	}
	root := d.FileRoot
	if root == "" {
		root = FilesystemRoot()
	}

	return []retropda.ToolDescriptor{
		{
			Name: NameFileExplorer,
			Icon: loadIcon(cfg.IconsDir, "folder.png", theme.FolderIcon(), logger),
			Factory: func(e retropda.Emitter) retropda.View {
				return NewFileBrowser(root, cfg.ShowHidden, logger.Named("files"), e)
			},
		},
		{
			Name: NameTerminal,
			Icon: loadIcon(cfg.IconsDir, "terminal.png", theme.ComputerIcon(), logger),
			Factory: func(e retropda.Emitter) retropda.View {
				return NewCommandRunner(logger.Named("terminal"), e, d.RunnerOptions...)
			},
		},
		{
			Name: NameExtensions,
			Icon: loadIcon(cfg.IconsDir, "install.png", theme.DownloadIcon(), logger),
			Factory: func(e retropda.Emitter) retropda.View {
				return NewManifestViewer(d.Manifest, logger.Named("extensions"), e)
			},
		},
		{
			Name: NameCalculator,
			Icon: loadIcon(cfg.IconsDir, "calc.png", theme.GridIcon(), logger),
			Factory: func(e retropda.Emitter) retropda.View {
				return NewCalculator(e)
			},
		},
	}
}

// loadIcon reads dir/file when an icon directory is configured, falling
// back to a theme icon.
func loadIcon(dir, file string, fallback fyne.Resource, logger *retropda.Logger) fyne.Resource {
	if dir == "" {
		return fallback
	}
	res, err := fyne.LoadResourceFromPath(filepath.Join(dir, file))
	if err != nil {
		logger.Debug("icon %s: %v", file, err)
		return fallback
	}
	return res
}

func title(name string) *widget.Label {
	return widget.NewLabelWithStyle(fmt.Sprintf("[ %s ]", name), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true, Bold: true})
}

func homeButton(e retropda.Emitter) *widget.Button {
	return widget.NewButton("Return to Main Menu", navigateHome(e))
}
