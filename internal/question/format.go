package question

import "fmt"

// Format converts a batch of raw questions into display-ready form.
// It is total: a raw question that cannot be formatted (unknown
// operation, option generation failure) becomes a placeholder entry so
// a single malformed question never aborts the whole batch.
func Format(raw []RawQuestion) []Formatted {
	out := make([]Formatted, 0, len(raw))
	for _, q := range raw {
		out = append(out, formatOne(q))
	}
	return out
}

func formatOne(q RawQuestion) Formatted {
	sym, ok := q.Operation.Symbol()
	if !ok {
		return placeholder(q)
	}

	opts, err := GenerateOptions(q.CorrectAnswer, q.Operation)
	if err != nil {
		return placeholder(q)
	}

	return Formatted{
		RawQuestion: q,
		Text:        fmt.Sprintf("%d %s %d", q.NumberA, sym, q.NumberB),
		Options:     opts,
	}
}

func placeholder(q RawQuestion) Formatted {
	return Formatted{
		RawQuestion: q,
		Text:        placeholderText,
		Options:     []string{"Error"},
	}
}
