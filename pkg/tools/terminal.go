package tools

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/phroun/retropda"
	"github.com/phroun/retropda/pkg/runner"
)

// CommandRunner is a transcript plus a one-line command entry. Commands run
// on the UI goroutine and block it until they exit.
type CommandRunner struct {
	runner *runner.Runner
	logger *retropda.Logger

	output *widget.TextGrid
	input  *commandEntry
	object fyne.CanvasObject
}

// NewCommandRunner builds the view. opts are passed to runner.New.
func NewCommandRunner(logger *retropda.Logger, e retropda.Emitter, opts ...runner.Option) *CommandRunner {
	v := &CommandRunner{
		logger: logger,
		output: widget.NewTextGrid(),
		input:  newCommandEntry(navigateHome(e)),
	}
	v.runner = runner.New(opts...)
	v.output.SetText(v.runner.Text())

	v.input.SetPlaceHolder("Enter Command...")
	v.input.OnSubmitted = v.Submit

	v.object = container.NewBorder(
		title("Terminal Interface"),
		container.NewVBox(v.input, homeButton(e)),
		nil, nil,
		container.NewScroll(v.output),
	)
	return v
}

// Submit runs line. Blank lines leave the transcript and entry untouched.
func (v *CommandRunner) Submit(line string) {
	res, err := v.runner.Submit(context.Background(), line)
	if res == nil && err == nil {
		return
	}
	if err != nil {
		v.logger.Warn("command runner: %v", err)
	} else if res.ExitCode != 0 {
		v.logger.Debug("%q exited with status %d", res.Command, res.ExitCode)
	}
	v.output.SetText(v.runner.Text())
	v.input.SetText("")
}

// Transcript returns the transcript lines.
func (v *CommandRunner) Transcript() []string { return v.runner.Lines() }

// Input returns the command entry.
func (v *CommandRunner) Input() fyne.Focusable { return v.input }

// Object implements retropda.View.
func (v *CommandRunner) Object() fyne.CanvasObject { return v.object }

// Close implements retropda.View.
func (v *CommandRunner) Close() {
	v.input.OnSubmitted = nil
}
