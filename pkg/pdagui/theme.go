// Package pdagui assembles the PDA window: theme, tools, shell and the
// manifest watcher.
package pdagui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Retro palette
var (
	colorWindow = color.NRGBA{R: 192, G: 192, B: 192, A: 255}
	colorButton = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	colorBase   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorText   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorHover  = color.NRGBA{R: 176, G: 176, B: 176, A: 255}
	colorPlace  = color.NRGBA{R: 96, G: 96, B: 96, A: 255}
)

// RetroTheme is a grey, monospace, always-light theme.
type RetroTheme struct {
	textSize float32
	font     fyne.Resource
}

var _ fyne.Theme = (*RetroTheme)(nil)

// NewRetroTheme returns the theme with the given text size in points. A nil
// font keeps the bundled monospace face.
func NewRetroTheme(textSize int, font fyne.Resource) *RetroTheme {
	if textSize <= 0 {
		textSize = 14
	}
	return &RetroTheme{textSize: float32(textSize), font: font}
}

func (t *RetroTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return colorWindow
	case theme.ColorNameButton, theme.ColorNameHeaderBackground:
		return colorButton
	case theme.ColorNameInputBackground:
		return colorBase
	case theme.ColorNameForeground, theme.ColorNameForegroundOnPrimary:
		return colorText
	case theme.ColorNameHover:
		return colorHover
	case theme.ColorNamePlaceHolder:
		return colorPlace
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (t *RetroTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Symbol {
		return t.font
	}
	style.Monospace = true
	return theme.DefaultTheme().Font(style)
}

func (t *RetroTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *RetroTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.textSize
	}
	return theme.DefaultTheme().Size(name)
}
