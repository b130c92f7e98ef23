package cmd

import (
	"github.com/spf13/cobra"

	"github.com/numberninja/numberninja/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "numberninja",
	Short: "Terminal math quiz game",
	Long:  "Number Ninja — a timed arithmetic quiz for the terminal. Pick your operations and ranges, answer fast, beat your score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NINJA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
