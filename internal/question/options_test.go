package question

import (
	"strconv"
	"testing"
)

func TestGenerateOptions_Properties(t *testing.T) {
	answers := []int{1, 2, 5, 7, 12, 48, 100, 144}

	for _, op := range Operations {
		for _, answer := range answers {
			opts, err := GenerateOptions(answer, op)
			if err != nil {
				t.Fatalf("GenerateOptions(%d, %s) error: %v", answer, op, err)
			}
			if len(opts) != OptionCount {
				t.Fatalf("GenerateOptions(%d, %s) returned %d options, want %d", answer, op, len(opts), OptionCount)
			}

			seen := make(map[string]bool)
			foundCorrect := false
			for _, o := range opts {
				if seen[o] {
					t.Errorf("GenerateOptions(%d, %s) returned duplicate %q", answer, op, o)
				}
				seen[o] = true

				n, convErr := strconv.Atoi(o)
				if convErr != nil {
					t.Errorf("GenerateOptions(%d, %s) returned non-numeric %q", answer, op, o)
					continue
				}
				if n <= 0 {
					t.Errorf("GenerateOptions(%d, %s) returned non-positive %d", answer, op, n)
				}
				if n == answer {
					foundCorrect = true
				}
			}
			if !foundCorrect {
				t.Errorf("GenerateOptions(%d, %s) missing the correct answer in %v", answer, op, opts)
			}
		}
	}
}

func TestGenerateOptions_DivisionByOnePool(t *testing.T) {
	// Answer 1 for division has only {2, 3, 4} as valid distractors.
	for i := 0; i < 50; i++ {
		opts, err := GenerateOptions(1, Division)
		if err != nil {
			t.Fatalf("GenerateOptions(1, division) error: %v", err)
		}
		for _, o := range opts {
			n, _ := strconv.Atoi(o)
			if n < 1 || n > 4 {
				t.Fatalf("GenerateOptions(1, division) returned %q, want value in 1..4", o)
			}
		}
	}
}

func TestGenerateOptions_SmallAnswersTerminate(t *testing.T) {
	// Tiny answers leave few positive neighbours; the widening fallback
	// must still fill all slots.
	for answer := 1; answer <= 3; answer++ {
		for _, op := range Operations {
			opts, err := GenerateOptions(answer, op)
			if err != nil {
				t.Fatalf("GenerateOptions(%d, %s) error: %v", answer, op, err)
			}
			if len(opts) != OptionCount {
				t.Fatalf("GenerateOptions(%d, %s) = %v, want %d options", answer, op, opts, OptionCount)
			}
		}
	}
}

func TestGenerateOptions_Rejections(t *testing.T) {
	if _, err := GenerateOptions(10, Operation("modulo")); err == nil {
		t.Error("expected error for unknown operation")
	}
	if _, err := GenerateOptions(0, Addition); err == nil {
		t.Error("expected error for non-positive answer")
	}
	if _, err := GenerateOptions(-4, Division); err == nil {
		t.Error("expected error for negative answer")
	}
}
