package pdagui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/phroun/retropda"
	"github.com/phroun/retropda/pkg/tools"
)

// Options tweaks assembly, mainly for tests.
type Options struct {
	// Installer replaces the native-dialog installer.
	Installer retropda.Installer
	// Tools are registered after the built-in ones.
	Tools []retropda.ToolDescriptor
	// FileRoot overrides the file browser root.
	FileRoot string
	// Quit replaces fyne.App.Quit for the quit shortcut.
	Quit func()
}

// App is one running PDA window.
type App struct {
	Config   *retropda.Config
	Logger   *retropda.Logger
	Manifest *retropda.ManifestStore
	Registry *retropda.Registry
	Shell    *retropda.Shell
	Window   fyne.Window

	watcher *retropda.ManifestWatcher
}

// New builds the window and everything shown in it. Nothing is displayed
// until Run.
func New(fyneApp fyne.App, cfg *retropda.Config, logger *retropda.Logger, opts Options) (*App, error) {
	if cfg == nil {
		cfg = retropda.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = retropda.NewNopLogger()
	}

	quitKey, err := ParseShortcut(cfg.QuitShortcut)
	if err != nil {
		return nil, fmt.Errorf("quit_shortcut: %w", err)
	}

	var font fyne.Resource
	if cfg.FontFile != "" {
		if font, err = fyne.LoadResourceFromPath(cfg.FontFile); err != nil {
			logger.Warn("font %s: %v", cfg.FontFile, err)
			font = nil
		}
	}
	fyneApp.Settings().SetTheme(NewRetroTheme(cfg.FontSize, font))
	win := fyneApp.NewWindow(cfg.Title)
	if cfg.Fullscreen {
		win.SetFullScreen(true)
	} else {
		win.Resize(fyne.NewSize(480, 640))
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Manifest: retropda.NewManifestStore(cfg),
		Registry: retropda.NewRegistry(),
		Window:   win,
	}

	builtin := tools.Builtin(tools.Deps{
		Config:   cfg,
		Manifest: a.Manifest,
		Logger:   logger,
		FileRoot: opts.FileRoot,
	})
	if err := a.Registry.RegisterAll(builtin...); err != nil {
		return nil, fmt.Errorf("register built-in tools: %w", err)
	}
	if err := a.Registry.RegisterAll(opts.Tools...); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	installer := opts.Installer
	if installer == nil {
		installer = retropda.NewManifestInstaller(a.Manifest, cfg)
	}

	shell, err := retropda.NewShell(retropda.ShellOptions{
		Registry: a.Registry,
		Display:  retropda.NewWindowDisplay(win),
		Home: retropda.NewHomeFactory(retropda.HomeOptions{
			Title:    cfg.Title,
			Columns:  cfg.Columns,
			Registry: a.Registry,
			Manifest: a.Manifest,
			Logger:   logger,
			Window:   win,
		}),
		Installer: installer,
		Logger:    logger,
		OnError: func(err error) {
			dialog.ShowError(err, win)
		},
	})
	if err != nil {
		return nil, err
	}
	a.Shell = shell

	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.Shell.Dispatch(retropda.NavigateHome{})
		}
	})
	if quitKey != nil {
		quit := opts.Quit
		if quit == nil {
			quit = fyneApp.Quit
		}
		win.Canvas().AddShortcut(quitKey, func(fyne.Shortcut) {
			logger.Info("quit via %s", cfg.QuitShortcut)
			quit()
		})
	}

	a.watcher = retropda.NewManifestWatcher(a.Manifest, logger, func() {
		fyne.Do(func() {
			a.Shell.Dispatch(retropda.ManifestChanged{})
		})
	})
	return a, nil
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := a.watcher.Run(ctx); err != nil {
			a.Logger.Warn("manifest watcher stopped: %v", err)
		}
	}()

	a.Window.SetOnClosed(func() {
		cancel()
		a.Shell.Close()
	})
	a.Logger.Info("%s: manifest at %s", a.Config.Title, a.Manifest.Path())
	a.Window.ShowAndRun()
	_ = a.Logger.Sync()
}
