package question

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// OptionCount is the number of answer options shown per question.
const OptionCount = 4

// attemptsPerSpread caps how many candidates are drawn at a given
// perturbation spread before the spread is widened. Widening guarantees
// termination even for answers with very few valid neighbours (e.g. 1).
const attemptsPerSpread = 64

// GenerateOptions produces OptionCount distinct positive answer strings
// for the given correct answer, including the correct answer itself, in
// randomized order. Distractors are the correct answer perturbed by a
// small operation-dependent delta.
func GenerateOptions(correct int, op Operation) ([]string, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("generate options: unknown operation %q", op)
	}
	if correct <= 0 {
		return nil, fmt.Errorf("generate options: non-positive answer %d", correct)
	}

	opts := []string{strconv.Itoa(correct)}
	seen := map[string]bool{opts[0]: true}
	spread := baseSpread(op)

	for len(opts) < OptionCount {
		found := false
		for attempt := 0; attempt < attemptsPerSpread; attempt++ {
			c := candidate(correct, op, spread)
			s := strconv.Itoa(c)
			if c > 0 && !seen[s] {
				opts = append(opts, s)
				seen[s] = true
				found = true
				break
			}
		}
		if !found {
			// Too few valid neighbours at this spread; widen and retry.
			spread *= 2
		}
	}

	rand.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts, nil
}

// baseSpread returns the initial perturbation spread for an operation.
// Addition and subtraction distractors land within ±5 of the answer,
// multiplication within ±2, division within ±3.
func baseSpread(op Operation) int {
	if op == Division {
		return 3
	}
	return 5
}

// candidate draws one distractor candidate. The caller filters out
// non-positive values and duplicates.
func candidate(correct int, op Operation, spread int) int {
	switch op {
	case Addition, Subtraction:
		return correct + rand.IntN(2*spread+1) - spread
	case Multiplication:
		return correct + rand.IntN(spread) - spread/2
	case Division:
		// Answers of 1 have no room below; draw from a small fixed pool.
		if correct == 1 {
			return rand.IntN(4) + 1
		}
		sign := 1
		if rand.IntN(2) == 0 {
			sign = -1
		}
		return correct + sign*(rand.IntN(spread)+1)
	}
	return 0
}
