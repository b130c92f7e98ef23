package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/numberninja/numberninja/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show game statistics from the local log",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd, "")
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return err
		}
		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return err
		}

		if stats.GamesCompleted == 0 && stats.GamesCancelled == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		fmt.Printf("Games completed:  %d\n", stats.GamesCompleted)
		fmt.Printf("Games cancelled:  %d\n", stats.GamesCancelled)

		total := stats.TotalCorrect + stats.TotalWrong
		if total > 0 {
			accuracy := float64(stats.TotalCorrect) / float64(total) * 100
			fmt.Printf("Questions:        %d (%d correct, %.0f%%)\n", total, stats.TotalCorrect, accuracy)
		}
		fmt.Printf("Time played:      %d:%02d\n", stats.TotalTimeSecs/60, stats.TotalTimeSecs%60)

		if len(stats.PerOperation) > 0 {
			fmt.Println("\nBy operation:")
			for _, op := range stats.PerOperation {
				var accuracy float64
				if op.Attempted > 0 {
					accuracy = float64(op.Correct) / float64(op.Attempted) * 100
				}
				fmt.Printf("  %-15s %d/%d correct (%.0f%%)\n", op.Operation, op.Correct, op.Attempted, accuracy)
			}
		}

		return nil
	},
}
