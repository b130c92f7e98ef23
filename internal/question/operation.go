package question

// Operation identifies one of the four arithmetic operations a game
// session can be configured with. The string values match the wire
// format used by the backend.
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
)

// Operations lists every known operation in display order.
var Operations = []Operation{Addition, Subtraction, Multiplication, Division}

// Valid reports whether op is one of the four known operations.
func (op Operation) Valid() bool {
	switch op {
	case Addition, Subtraction, Multiplication, Division:
		return true
	}
	return false
}

// Symbol returns the display symbol for the operation. The second
// return value is false for unknown operations.
func (op Operation) Symbol() (string, bool) {
	switch op {
	case Addition:
		return "+", true
	case Subtraction:
		return "-", true
	case Multiplication:
		return "×", true
	case Division:
		return "÷", true
	}
	return "", false
}

// FilterValid returns the subset of ops that are known operations,
// preserving order. Unknown entries are silently dropped.
func FilterValid(ops []Operation) []Operation {
	var out []Operation
	for _, op := range ops {
		if op.Valid() {
			out = append(out, op)
		}
	}
	return out
}
