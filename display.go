package retropda

import "fyne.io/fyne/v2"

// WindowDisplay shows views as the whole content of a window.
type WindowDisplay struct {
	win fyne.Window
}

// NewWindowDisplay wraps win.
func NewWindowDisplay(win fyne.Window) *WindowDisplay {
	return &WindowDisplay{win: win}
}

// Show implements Display.
func (d *WindowDisplay) Show(v View) {
	d.win.SetContent(v.Object())
}

// Window returns the wrapped window.
func (d *WindowDisplay) Window() fyne.Window {
	return d.win
}
