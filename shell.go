package retropda

import (
	"fmt"

	"github.com/google/uuid"
)

// Display is the single slot the shell draws into, usually a window.
type Display interface {
	Show(View)
}

// Installer runs the install action. ok is false when the user cancelled.
type Installer interface {
	Install() (entry ManifestEntry, ok bool, err error)
}

// ShellOptions configures a Shell.
type ShellOptions struct {
	Registry  *Registry
	Display   Display
	Home      Factory
	Installer Installer
	Logger    *Logger
	// OnError is told about failures that have no other place to go, such as
	// a failed install. It may be nil.
	OnError func(error)
}

// Shell owns the one visible view. Tool views are built fresh on every
// activation and closed when they are replaced; home is built once.
type Shell struct {
	registry  *Registry
	display   Display
	installer Installer
	logger    *Logger
	onError   func(error)

	home         View
	current      View
	activeTool   string
	activationID string
}

// NewShell builds the home view and shows it.
func NewShell(opts ShellOptions) (*Shell, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("shell: registry is required")
	}
	if opts.Display == nil {
		return nil, fmt.Errorf("shell: display is required")
	}
	if opts.Home == nil {
		return nil, fmt.Errorf("shell: home factory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewNopLogger()
	}
	s := &Shell{
		registry:  opts.Registry,
		display:   opts.Display,
		installer: opts.Installer,
		logger:    logger.Named("shell"),
		onError:   opts.OnError,
	}
	s.home = opts.Home(s)
	s.current = s.home
	s.display.Show(s.home)
	return s, nil
}

// Emit implements Emitter so views can be handed the shell directly.
func (s *Shell) Emit(i Intent) {
	s.Dispatch(i)
}

// Dispatch handles one intent. Errors are logged and passed to OnError.
func (s *Shell) Dispatch(i Intent) {
	var err error
	switch msg := i.(type) {
	case NavigateHome:
		s.ReturnHome()
	case ActivateTool:
		err = s.Activate(msg.Name)
	case InstallRequested:
		err = s.install()
	case ManifestChanged:
		s.refresh()
	default:
		err = fmt.Errorf("shell: unhandled intent %T", i)
	}
	if err != nil {
		s.logger.Warn("%v", err)
		if s.onError != nil {
			s.onError(err)
		}
	}
}

// Activate replaces the visible view with a new instance of the named tool.
func (s *Shell) Activate(name string) error {
	tool, ok := s.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownTool)
	}
	s.closeActive()

	id := uuid.NewString()
	view := tool.Factory(s)
	s.current = view
	s.activeTool = tool.Name
	s.activationID = id
	s.display.Show(view)
	s.logger.Debug("mounted %s (%s)", tool.Name, id)
	return nil
}

// ReturnHome closes the active tool, if any, and shows the refreshed home.
func (s *Shell) ReturnHome() {
	s.closeActive()
	s.current = s.home
	if r, ok := s.home.(Refresher); ok {
		r.Refresh()
	}
	s.display.Show(s.home)
}

func (s *Shell) closeActive() {
	if s.current == nil || s.current == s.home {
		return
	}
	s.current.Close()
	s.logger.Debug("unmounted %s (%s)", s.activeTool, s.activationID)
	s.current = nil
	s.activeTool = ""
	s.activationID = ""
}

func (s *Shell) install() error {
	if s.installer == nil {
		return fmt.Errorf("install: no installer configured")
	}
	entry, ok, err := s.installer.Install()
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}
	if !ok {
		return nil
	}
	s.logger.Info("installed %s from %s", entry.Name, entry.Path)
	s.refresh()
	return nil
}

// refresh re-reads manifest data in the visible view and in home.
func (s *Shell) refresh() {
	if s.current != s.home {
		if r, ok := s.current.(Refresher); ok {
			r.Refresh()
		}
	}
	if r, ok := s.home.(Refresher); ok {
		r.Refresh()
	}
}

// Current returns the visible view.
func (s *Shell) Current() View {
	return s.current
}

// Home returns the resident home view.
func (s *Shell) Home() View {
	return s.home
}

// IsHome reports whether home is visible.
func (s *Shell) IsHome() bool {
	return s.current == s.home
}

// ActiveTool returns the name of the visible tool, or "" at home.
func (s *Shell) ActiveTool() string {
	return s.activeTool
}

// ActivationID identifies the current tool activation in log lines. It is
// empty at home.
func (s *Shell) ActivationID() string {
	return s.activationID
}

// Close closes the active tool. Call it when the window goes away.
func (s *Shell) Close() {
	s.closeActive()
	s.current = s.home
}
