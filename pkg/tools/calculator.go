package tools

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/phroun/retropda"
	"github.com/phroun/retropda/pkg/calc"
)

// Calculator is a keypad over calc.Calculator.
type Calculator struct {
	calc    calc.Calculator
	display *widget.Label
	buttons map[string]*widget.Button
	object  fyne.CanvasObject
}

// NewCalculator builds the keypad view.
func NewCalculator(e retropda.Emitter) *Calculator {
	v := &Calculator{
		display: widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true, Bold: true}),
		buttons: make(map[string]*widget.Button),
	}

	rows := container.NewVBox()
	for _, row := range calc.Keypad {
		grid := container.NewGridWithColumns(4)
		for _, key := range row {
			btn := widget.NewButton(key, func() {
				v.Press(key)
			})
			v.buttons[key] = btn
			grid.Add(btn)
		}
		rows.Add(grid)
	}

	v.object = container.NewVBox(
		title("Calculator"),
		v.display,
		rows,
		homeButton(e),
	)
	return v
}

// Press applies key and updates the display.
func (v *Calculator) Press(key string) {
	v.calc.Press(key)
	v.display.SetText(v.calc.Display())
}

// Display returns the display text.
func (v *Calculator) Display() string { return v.display.Text }

// Input returns the accumulator.
func (v *Calculator) Input() string { return v.calc.Input() }

// Button returns the keypad button for key, or nil.
func (v *Calculator) Button(key string) *widget.Button { return v.buttons[key] }

// Object implements retropda.View.
func (v *Calculator) Object() fyne.CanvasObject { return v.object }

// Close implements retropda.View.
func (v *Calculator) Close() {}
