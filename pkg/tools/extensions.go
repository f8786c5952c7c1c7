package tools

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/phroun/retropda"
)

// ManifestViewer lists installed bookmarks and offers the install action.
type ManifestViewer struct {
	store  *retropda.ManifestStore
	logger *retropda.Logger

	names  []string
	status *widget.Label
	list   *homeList
	object fyne.CanvasObject
}

// NewManifestViewer builds the view and loads the manifest.
func NewManifestViewer(store *retropda.ManifestStore, logger *retropda.Logger, e retropda.Emitter) *ManifestViewer {
	v := &ManifestViewer{
		store:  store,
		logger: logger,
		status: widget.NewLabel(""),
	}
	v.list = &homeList{onEscape: navigateHome(e)}
	v.list.Length = func() int { return len(v.names) }
	v.list.CreateItem = func() fyne.CanvasObject { return widget.NewLabel("") }
	v.list.UpdateItem = func(i widget.ListItemID, o fyne.CanvasObject) {
		o.(*widget.Label).SetText(v.names[i])
	}
	v.list.ExtendBaseWidget(v.list)
	install := widget.NewButton("Install New Extension", func() {
		e.Emit(retropda.InstallRequested{})
	})
	v.object = container.NewBorder(
		container.NewVBox(title("Installed Extensions"), v.status),
		container.NewVBox(install, homeButton(e)),
		nil, nil,
		v.list,
	)
	v.Refresh()
	return v
}

// Refresh reloads the manifest.
func (v *ManifestViewer) Refresh() {
	entries, err := v.store.Load()
	if err != nil {
		v.logger.Error("load manifest: %v", err)
		v.names = nil
		v.status.SetText("! " + err.Error())
		v.list.Refresh()
		return
	}
	v.names = make([]string, len(entries))
	for i, entry := range entries {
		v.names[i] = entry.Name
	}
	v.status.SetText("")
	v.list.Refresh()
}

// Names returns the names currently listed.
func (v *ManifestViewer) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Status returns the error line, or "" when the manifest loaded.
func (v *ManifestViewer) Status() string { return v.status.Text }

// Object implements retropda.View.
func (v *ManifestViewer) Object() fyne.CanvasObject { return v.object }

// Close implements retropda.View.
func (v *ManifestViewer) Close() {}
