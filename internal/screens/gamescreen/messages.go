package gamescreen

import (
	"time"

	"github.com/numberninja/numberninja/internal/game"
)

// startedMsg is sent when engine startup (session create + question
// fetch) has finished.
type startedMsg struct {
	Err error
}

// tickMsg carries one engine clock tick.
type tickMsg game.Tick

// clockStoppedMsg is sent when the engine clock shuts down and no more
// ticks will arrive.
type clockStoppedMsg struct{}

// redrawMsg refreshes the elapsed-time display once per second.
type redrawMsg time.Time

// finalizedMsg is sent when answer submission has finished.
type finalizedMsg struct {
	Results *game.Results
	Err     error
}

// persistedMsg is sent when the outcome has been written to the local
// event log.
type persistedMsg struct {
	Err error
}
