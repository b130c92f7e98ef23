package question

// RawQuestion is a question exactly as the backend delivers it: two
// operands, an operation, and the correct answer. Immutable once
// received.
type RawQuestion struct {
	NumberA       int       `json:"numberA"`
	NumberB       int       `json:"numberB"`
	Operation     Operation `json:"operation"`
	CorrectAnswer int       `json:"correctAnswer"`
}

// Formatted is a RawQuestion made ready for display: a rendered prompt
// plus the shuffled answer options. Derived once by Format and never
// mutated afterwards.
type Formatted struct {
	RawQuestion

	// Text is the rendered prompt, e.g. "7 × 8".
	Text string

	// Options holds exactly 4 distinct answer strings, one of which is
	// the correct answer, in randomized order. A placeholder question
	// carries a single "Error" entry instead.
	Options []string
}

// placeholderText marks a question that could not be formatted.
const placeholderText = "Error formatting question"

// IsPlaceholder reports whether f is the substitute emitted when a raw
// question could not be formatted.
func (f Formatted) IsPlaceholder() bool {
	return f.Text == placeholderText
}
