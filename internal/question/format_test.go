package question

import "testing"

func TestFormat_RendersText(t *testing.T) {
	raw := []RawQuestion{
		{NumberA: 3, NumberB: 4, Operation: Addition, CorrectAnswer: 7},
		{NumberA: 9, NumberB: 3, Operation: Division, CorrectAnswer: 3},
		{NumberA: 6, NumberB: 7, Operation: Multiplication, CorrectAnswer: 42},
		{NumberA: 10, NumberB: 2, Operation: Subtraction, CorrectAnswer: 8},
	}

	got := Format(raw)
	if len(got) != len(raw) {
		t.Fatalf("Format returned %d questions, want %d", len(got), len(raw))
	}

	wantText := []string{"3 + 4", "9 ÷ 3", "6 × 7", "10 - 2"}
	for i, q := range got {
		if q.Text != wantText[i] {
			t.Errorf("question %d text = %q, want %q", i, q.Text, wantText[i])
		}
		if len(q.Options) != OptionCount {
			t.Errorf("question %d has %d options, want %d", i, len(q.Options), OptionCount)
		}
		if q.IsPlaceholder() {
			t.Errorf("question %d unexpectedly a placeholder", i)
		}
	}
}

func TestFormat_BadEntryDoesNotAbortBatch(t *testing.T) {
	raw := []RawQuestion{
		{NumberA: 3, NumberB: 4, Operation: Addition, CorrectAnswer: 7},
		{NumberA: 1, NumberB: 1, Operation: Operation("exponent"), CorrectAnswer: 1},
		{NumberA: 5, NumberB: 5, Operation: Multiplication, CorrectAnswer: 25},
	}

	got := Format(raw)
	if len(got) != 3 {
		t.Fatalf("Format returned %d questions, want 3", len(got))
	}

	if got[0].IsPlaceholder() || got[2].IsPlaceholder() {
		t.Error("sibling questions must not be affected by a malformed entry")
	}
	if !got[1].IsPlaceholder() {
		t.Error("malformed entry should become a placeholder")
	}
	if len(got[1].Options) != 1 || got[1].Options[0] != "Error" {
		t.Errorf("placeholder options = %v, want [Error]", got[1].Options)
	}
}

func TestFormat_GeneratorFailureBecomesPlaceholder(t *testing.T) {
	raw := []RawQuestion{
		// Backend bug: a zero answer cannot seed a positive option set.
		{NumberA: 0, NumberB: 5, Operation: Multiplication, CorrectAnswer: 0},
	}

	got := Format(raw)
	if !got[0].IsPlaceholder() {
		t.Error("expected placeholder for unusable correct answer")
	}
}

func TestFormat_EmptyBatch(t *testing.T) {
	if got := Format(nil); len(got) != 0 {
		t.Errorf("Format(nil) = %v, want empty", got)
	}
}
