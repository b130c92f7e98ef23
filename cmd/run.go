package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/numberninja/numberninja/internal/api"
	"github.com/numberninja/numberninja/internal/app"
	"github.com/numberninja/numberninja/internal/auth"
	"github.com/numberninja/numberninja/internal/config"
	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/screens/gamescreen"
	"github.com/numberninja/numberninja/internal/store"
	"github.com/numberninja/numberninja/internal/telemetry"
)

// runApp loads configuration, opens the store, builds dependencies,
// and launches the TUI. A non-nil initial config starts a game
// immediately; startAtSetup opens the setup form instead of the menu.
func runApp(cmd *cobra.Command, initial *game.SessionConfig, startAtSetup bool) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
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
		return fmt.Errorf("event repo: %w", err)
	}

	authProvider, err := auth.NewFileProvider(cfg.CredentialsPath)
	if err != nil {
		return fmt.Errorf("credentials: %w", err)
	}

	client := api.NewClient(cfg.APIURL, authProvider, log)

	return app.Run(app.Options{
		Deps: gamescreen.Deps{
			Service: client,
			Auth:    authProvider,
			Events:  telemetry.NewLog(log),
			Repo:    repo,
			Log:     log,
		},
		StartAtSetup:  startAtSetup,
		InitialConfig: initial,
	})
}

// newLogger builds the application logger. The TUI owns the terminal,
// so logs go to the configured file or nowhere at all.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closeLog, nil
}
