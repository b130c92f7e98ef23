package setup

import (
	"testing"

	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/question"
	"github.com/numberninja/numberninja/internal/screens/gamescreen"
	"github.com/numberninja/numberninja/internal/ui/components"
)

func newTestInput(value string) components.TextInput {
	return components.NewTextInput("", value, true, 4)
}

func TestBuildConfig_Defaults(t *testing.T) {
	s := New(gamescreen.Deps{})

	cfg, err := s.buildConfig()
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}

	if len(cfg.Operations) != 1 || cfg.Operations[0] != question.Addition {
		t.Errorf("operations = %v, want [addition]", cfg.Operations)
	}
	if cfg.Mode != game.ModePractice {
		t.Errorf("mode = %q, want practice", cfg.Mode)
	}
	if cfg.TermA.Min != 1 || cfg.TermA.Max != 10 {
		t.Errorf("term A range = %+v, want 1-10", cfg.TermA)
	}
	if cfg.TimeLimit != 60 {
		t.Errorf("time limit = %d, want 60", cfg.TimeLimit)
	}
}

func TestBuildConfig_NoOperations(t *testing.T) {
	s := New(gamescreen.Deps{})
	s.ops[question.Addition] = false

	if _, err := s.buildConfig(); err == nil {
		t.Fatal("expected error with no operations selected")
	}
}

func TestBuildConfig_EmptyRange(t *testing.T) {
	s := New(gamescreen.Deps{})
	s.inputs[0] = newTestInput("20")
	s.inputs[1] = newTestInput("10")

	if _, err := s.buildConfig(); err == nil {
		t.Fatal("expected error when min exceeds max")
	}
}

func TestBuildConfig_NonNumericInput(t *testing.T) {
	s := New(gamescreen.Deps{})
	s.inputs[4] = newTestInput("")

	if _, err := s.buildConfig(); err == nil {
		t.Fatal("expected error for empty time limit")
	}
}

func TestToggleOperations(t *testing.T) {
	s := New(gamescreen.Deps{})

	s.row = rowDivision
	s.toggle()
	if !s.ops[question.Division] {
		t.Error("expected division toggled on")
	}

	s.toggle()
	if s.ops[question.Division] {
		t.Error("expected division toggled off")
	}
}

func TestToggleMode(t *testing.T) {
	s := New(gamescreen.Deps{})

	s.toggleMode()
	if s.mode != game.ModeTest {
		t.Errorf("mode = %q, want test", s.mode)
	}
	s.toggleMode()
	if s.mode != game.ModePractice {
		t.Errorf("mode = %q, want practice", s.mode)
	}
}

func TestSetRowClamps(t *testing.T) {
	s := New(gamescreen.Deps{})

	s.setRow(-5)
	if s.row != 0 {
		t.Errorf("row = %d, want 0", s.row)
	}
	s.setRow(rowCount + 5)
	if s.row != rowCount-1 {
		t.Errorf("row = %d, want %d", s.row, rowCount-1)
	}
}
