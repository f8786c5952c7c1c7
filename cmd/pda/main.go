// pda - retro PDA desktop shell
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	flag "github.com/spf13/pflag"

	"github.com/phroun/retropda"
	"github.com/phroun/retropda/pkg/pdagui"
)

const appID = "io.github.phroun.retropda"

func main() {
	configPath := flag.StringP("config", "c", retropda.DefaultConfigPath(), "path to pda.yaml")
	debug := flag.BoolP("debug", "d", false, "enable debug logging")
	windowed := flag.BoolP("windowed", "w", false, "run in a window instead of full screen")
	flag.Parse()

	cfg, err := retropda.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pda: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if *windowed {
		cfg.Fullscreen = false
	}

	logger := retropda.NewLogger(cfg.Debug)
	pda, err := pdagui.New(app.NewWithID(appID), cfg, logger, pdagui.Options{})
	if err != nil {
		logger.Error("start: %v", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	pda.Run()
}
