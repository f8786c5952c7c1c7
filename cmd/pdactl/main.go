// pdactl inspects and edits the PDA manifest without starting the GUI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pdactl:", err)
		os.Exit(1)
	}
}
