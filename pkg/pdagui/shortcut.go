package pdagui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// ParseShortcut turns a string like "Cmd+Q", "Ctrl+Q" or "Alt+F4" into a
// desktop shortcut. An empty string returns nil, meaning disabled.
//
// The shortcut needs a modifier other than Shift, since the desktop driver
// only reports such combinations as shortcuts.
func ParseShortcut(s string) (*desktop.CustomShortcut, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "+")
	key := strings.TrimSpace(parts[len(parts)-1])
	if key == "" {
		return nil, fmt.Errorf("shortcut %q: missing key", s)
	}

	var mod fyne.KeyModifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mod |= fyne.KeyModifierControl
		case "cmd", "command", "super", "meta":
			mod |= fyne.KeyModifierSuper
		case "alt", "option":
			mod |= fyne.KeyModifierAlt
		case "shift":
			mod |= fyne.KeyModifierShift
		default:
			return nil, fmt.Errorf("shortcut %q: unknown modifier %q", s, p)
		}
	}
	if mod&^fyne.KeyModifierShift == 0 {
		return nil, fmt.Errorf("shortcut %q: needs Ctrl, Cmd or Alt", s)
	}

	// fyne key names are "Q", "F4", "Escape"...
	name := strings.ToUpper(key[:1]) + strings.ToLower(key[1:])
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(name), Modifier: mod}, nil
}
