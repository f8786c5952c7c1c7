package calc

import "strconv"

// Special keys and the marker shown after a failed evaluation.
const (
	KeyClear    = "C"
	KeyEquals   = "="
	ErrorMarker = "Error"
)

// Keypad is the button layout, row by row.
var Keypad = [][]string{
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{"C", "0", "=", "+"},
	{"(", ")", "."},
}

// Calculator holds the accumulated input and what the display shows.
// The zero value is ready to use.
type Calculator struct {
	input   string
	display string
	lastErr error
}

// Press applies one key.
func (c *Calculator) Press(key string) {
	switch key {
	case KeyClear:
		c.input = ""
		c.display = ""
		c.lastErr = nil
	case KeyEquals:
		c.evaluate()
	default:
		c.input += key
		c.display = c.input
	}
}

func (c *Calculator) evaluate() {
	v, err := Evaluate(c.input)
	if err != nil {
		c.lastErr = err
		c.input = ""
		c.display = ErrorMarker
		return
	}
	c.lastErr = nil
	c.input = Format(v)
	c.display = c.input
}

// Input returns the accumulator.
func (c *Calculator) Input() string { return c.input }

// Display returns the display text.
func (c *Calculator) Display() string { return c.display }

// Err returns why the last evaluation failed, or nil.
func (c *Calculator) Err() error { return c.lastErr }

// Format renders v with the fewest digits that round-trip; integral values
// have no decimal point.
func Format(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
