package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/phroun/retropda"
)

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printEntries writes one "name  path" line per entry. On a terminal the
// name column is padded and long paths are shortened to fit the width.
func printEntries(w io.Writer, entries []retropda.ManifestEntry, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, entries)
	}
	width, tty := terminalWidth(w)
	if !tty {
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Path); err != nil {
				return err
			}
		}
		return nil
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "(no entries)")
		return err
	}
	nameWidth := 0
	for _, e := range entries {
		nameWidth = max(nameWidth, len(e.Name))
	}
	for _, e := range entries {
		path := shorten(e.Path, width-nameWidth-2)
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", nameWidth, e.Name, path); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

// shorten keeps the tail of s, which is the informative part of a path.
func shorten(s string, limit int) string {
	r := []rune(s)
	if limit < 4 || len(r) <= limit {
		return s
	}
	return "..." + string(r[len(r)-(limit-3):])
}
