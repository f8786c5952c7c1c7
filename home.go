package retropda

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HomeOptions configures the home grid.
type HomeOptions struct {
	Title    string
	Columns  int
	Registry *Registry
	Manifest *ManifestStore
	Logger   *Logger
	// Window is used as the parent for bookmark dialogs. It may be nil.
	Window fyne.Window
}

// HomeView shows one button per registered tool and the installed
// bookmarks underneath.
type HomeView struct {
	opts    HomeOptions
	emitter Emitter
	logger  *Logger

	tiles        []*toolTile
	installed    []ManifestEntry
	installedBox *fyne.Container
	object       fyne.CanvasObject
}

// NewHomeFactory returns a Factory suitable for ShellOptions.Home.
func NewHomeFactory(opts HomeOptions) Factory {
	return func(e Emitter) View {
		return NewHomeView(opts, e)
	}
}

// NewHomeView builds the grid and loads the manifest once.
func NewHomeView(opts HomeOptions, e Emitter) *HomeView {
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	if opts.Logger == nil {
		opts.Logger = NewNopLogger()
	}
	h := &HomeView{
		opts:         opts,
		emitter:      e,
		logger:       opts.Logger.Named("home"),
		installedBox: container.NewVBox(),
	}

	grid := container.NewGridWithColumns(opts.Columns)
	for _, tool := range opts.Registry.Tools() {
		name := tool.Name
		icon := tool.Icon
		if icon == nil {
			icon = theme.FileApplicationIcon()
		}
		tile := newToolTile(name, icon, func() {
			h.Select(name)
		})
		h.tiles = append(h.tiles, tile)
		grid.Add(tile)
	}

	header := widget.NewLabelWithStyle(fmt.Sprintf("[ %s ]", opts.Title), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true, Bold: true})
	installedHeader := widget.NewLabelWithStyle("[ Installed ]", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	h.object = container.NewVBox(header, grid, widget.NewSeparator(), installedHeader, h.installedBox)
	h.Refresh()
	return h
}

// Select asks the shell to open the named tool.
func (h *HomeView) Select(name string) {
	h.emitter.Emit(ActivateTool{Name: name})
}

// Refresh re-reads the manifest and rebuilds the installed list.
func (h *HomeView) Refresh() {
	h.installedBox.RemoveAll()
	if h.opts.Manifest == nil {
		h.installed = nil
		return
	}
	entries, err := h.opts.Manifest.Load()
	if err != nil {
		h.logger.Error("load manifest: %v", err)
		h.installed = nil
		h.installedBox.Add(widget.NewLabel("! " + err.Error()))
		return
	}
	h.installed = entries
	if len(entries) == 0 {
		h.installedBox.Add(widget.NewLabel("(none)"))
		return
	}
	for _, entry := range entries {
		h.installedBox.Add(widget.NewButton(entry.Name, func() {
			h.showBookmark(entry)
		}))
	}
	h.installedBox.Refresh()
}

func (h *HomeView) showBookmark(entry ManifestEntry) {
	h.logger.Debug("bookmark %s selected", entry.Name)
	if h.opts.Window == nil {
		return
	}
	dialog.ShowInformation(entry.Name, entry.Path, h.opts.Window)
}

// Installed returns the bookmarks shown by the last Refresh.
func (h *HomeView) Installed() []ManifestEntry {
	out := make([]ManifestEntry, len(h.installed))
	copy(out, h.installed)
	return out
}

// Tile returns the grid entry for the named tool, or nil.
func (h *HomeView) Tile(name string) fyne.Tappable {
	for _, t := range h.tiles {
		if t.name == name {
			return t
		}
	}
	return nil
}

// Object implements View.
func (h *HomeView) Object() fyne.CanvasObject {
	return h.object
}

// Close implements View. Home is resident, so there is nothing to release.
func (h *HomeView) Close() {}

const tileIconSize = 48

// toolTile is a tappable grid entry with the icon above the label.
type toolTile struct {
	widget.BaseWidget
	name     string
	icon     fyne.Resource
	onTapped func()
}

func newToolTile(name string, icon fyne.Resource, tapped func()) *toolTile {
	t := &toolTile{name: name, icon: icon, onTapped: tapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *toolTile) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

func (t *toolTile) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	img := canvas.NewImageFromResource(t.icon)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSquareSize(tileIconSize))
	label := widget.NewLabelWithStyle(t.name, fyne.TextAlignCenter, fyne.TextStyle{})
	return &toolTileRenderer{
		tile:    t,
		bg:      bg,
		content: container.NewVBox(container.NewCenter(img), label),
	}
}

type toolTileRenderer struct {
	tile    *toolTile
	bg      *canvas.Rectangle
	content *fyne.Container
}

func (r *toolTileRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.content.Resize(size)
	r.content.Move(fyne.NewPos(0, 0))
}

func (r *toolTileRenderer) MinSize() fyne.Size {
	pad := theme.Padding() * 2
	return r.content.MinSize().AddWidthHeight(pad, pad)
}

func (r *toolTileRenderer) Refresh() {
	r.bg.FillColor = theme.Color(theme.ColorNameButton)
	r.bg.Refresh()
	r.content.Refresh()
}

func (r *toolTileRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.content}
}

func (r *toolTileRenderer) Destroy() {}
