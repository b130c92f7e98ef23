package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/numberninja/numberninja/internal/api"
	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/question"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long:  "Start a game from flags, skipping the menus. Without game flags, opens the setup screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := playConfig(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, cfg, cfg == nil)
	},
}

func init() {
	playCmd.Flags().StringSlice("operations", []string{"addition"}, "Operations: addition, subtraction, multiplication, division")
	playCmd.Flags().String("mode", "practice", "Game mode: practice or test")
	playCmd.Flags().Int("min-a", 1, "First number minimum")
	playCmd.Flags().Int("max-a", 10, "First number maximum")
	playCmd.Flags().Int("min-b", 1, "Second number minimum")
	playCmd.Flags().Int("max-b", 10, "Second number maximum")
	playCmd.Flags().Int("time-limit", 60, "Time limit in seconds, 0 for untimed")
}

// playConfig builds a session config from the game flags, or returns
// nil when none were given.
func playConfig(cmd *cobra.Command) (*game.SessionConfig, error) {
	flagNames := []string{"operations", "mode", "min-a", "max-a", "min-b", "max-b", "time-limit"}
	changed := false
	for _, f := range flagNames {
		if cmd.Flags().Changed(f) {
			changed = true
			break
		}
	}
	if !changed {
		return nil, nil
	}

	opNames, _ := cmd.Flags().GetStringSlice("operations")
	var ops []question.Operation
	for _, name := range opNames {
		op := question.Operation(name)
		if !op.Valid() {
			return nil, fmt.Errorf("unknown operation %q", name)
		}
		ops = append(ops, op)
	}

	mode, _ := cmd.Flags().GetString("mode")
	if mode != string(game.ModePractice) && mode != string(game.ModeTest) {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	minA, _ := cmd.Flags().GetInt("min-a")
	maxA, _ := cmd.Flags().GetInt("max-a")
	minB, _ := cmd.Flags().GetInt("min-b")
	maxB, _ := cmd.Flags().GetInt("max-b")
	if minA > maxA || minB > maxB {
		return nil, fmt.Errorf("number range is empty")
	}

	timeLimit, _ := cmd.Flags().GetInt("time-limit")
	if timeLimit < 0 {
		return nil, fmt.Errorf("time limit cannot be negative")
	}

	return &game.SessionConfig{
		Operations: ops,
		TermA:      api.Range{Min: minA, Max: maxA},
		TermB:      api.Range{Min: minB, Max: maxB},
		Mode:       game.Mode(mode),
		TimeLimit:  timeLimit,
	}, nil
}
