package tools

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/phroun/retropda"
)

// Focused widgets receive key events instead of the window canvas, so every
// focusable widget in a tool view handles Escape itself.

func navigateHome(e retropda.Emitter) func() {
	return func() { e.Emit(retropda.NavigateHome{}) }
}

// commandEntry is a single-line entry that leaves the tool on Escape and
// passes window-level shortcuts (quit) up to the canvas.
type commandEntry struct {
	widget.Entry
	onEscape func()
}

func newCommandEntry(onEscape func()) *commandEntry {
	e := &commandEntry{onEscape: onEscape}
	e.ExtendBaseWidget(e)
	return e
}

func (e *commandEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(ev)
}

func (e *commandEntry) TypedShortcut(s fyne.Shortcut) {
	e.Entry.TypedShortcut(s)
	if _, ok := s.(*desktop.CustomShortcut); !ok {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(e)
	if sc, ok := c.(fyne.Shortcutable); ok {
		sc.TypedShortcut(s)
	}
}

type homeTree struct {
	widget.Tree
	onEscape func()
}

func (t *homeTree) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && t.onEscape != nil {
		t.onEscape()
		return
	}
	t.Tree.TypedKey(ev)
}

type homeList struct {
	widget.List
	onEscape func()
}

func (l *homeList) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && l.onEscape != nil {
		l.onEscape()
		return
	}
	l.List.TypedKey(ev)
}
