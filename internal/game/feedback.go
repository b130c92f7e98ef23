package game

import "math/rand/v2"

// Feedback phrase pools shown after an answer is submitted. One entry
// is picked pseudo-randomly per submission.
var (
	successPhrases = []string{
		"Nice one!",
		"Correct!",
		"You got it!",
		"Sharp work!",
		"Ninja move!",
	}

	encouragementPhrases = []string{
		"Not quite — keep going!",
		"Almost! The next one is yours.",
		"Good try!",
		"Shake it off, next question!",
		"Keep at it!",
	}
)

func pickFeedback(correct bool) string {
	if correct {
		return successPhrases[rand.IntN(len(successPhrases))]
	}
	return encouragementPhrases[rand.IntN(len(encouragementPhrases))]
}
