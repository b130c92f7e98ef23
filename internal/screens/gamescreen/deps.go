// Package gamescreen drives an active game session: it owns the game
// engine, pumps its clock into the Bubble Tea loop, and persists the
// outcome to the local event log.
package gamescreen

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/numberninja/numberninja/internal/auth"
	"github.com/numberninja/numberninja/internal/game"
	"github.com/numberninja/numberninja/internal/store"
	"github.com/numberninja/numberninja/internal/telemetry"
)

// Deps are the injected services shared by the interactive screens.
type Deps struct {
	Service game.Service
	Auth    auth.Provider
	Events  telemetry.Recorder
	Repo    store.EventRepo
	Clock   clockwork.Clock
	Log     zerolog.Logger
}
