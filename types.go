package retropda

import (
	"fyne.io/fyne/v2"
)

// View is anything the shell can place in its single view slot.
type View interface {
	// Object returns the canvas object to display.
	Object() fyne.CanvasObject
	// Close releases whatever the view holds. The shell calls it exactly
	// once, when the view is replaced.
	Close()
}

// Refresher is implemented by views that show manifest data.
type Refresher interface {
	Refresh()
}

// Intent is a message a view sends to the shell instead of reaching up to
// it directly.
type Intent interface {
	intent()
}

// NavigateHome asks the shell to return to the home view.
type NavigateHome struct{}

// ActivateTool asks the shell to open the named tool.
type ActivateTool struct {
	Name string
}

// InstallRequested asks the shell to run the install action.
type InstallRequested struct{}

// ManifestChanged tells the shell the manifest was modified on disk.
type ManifestChanged struct{}

func (NavigateHome) intent()     {}
func (ActivateTool) intent()     {}
func (InstallRequested) intent() {}
func (ManifestChanged) intent()  {}

// Emitter receives intents from views.
type Emitter interface {
	Emit(Intent)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(Intent)

// Emit calls f(i).
func (f EmitterFunc) Emit(i Intent) { f(i) }

// Factory builds a fresh tool view. The emitter is the view's only route
// back to the shell.
type Factory func(Emitter) View

// ToolDescriptor describes one entry on the home grid.
type ToolDescriptor struct {
	Name    string
	Icon    fyne.Resource
	Factory Factory
}

// ManifestEntry is one installed bookmark.
type ManifestEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
