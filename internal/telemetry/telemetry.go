// Package telemetry is the outbound analytics boundary. The engine
// emits named events with structured parameters; recorders fan them
// out. Recording is fire-and-forget and must never block gameplay.
package telemetry

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event names emitted by the game engine.
const (
	EventGameStarted   = "game_started"
	EventGameCompleted = "game_completed"
	EventGameCancelled = "game_cancelled"
)

// Params carries the structured parameters of one event.
type Params map[string]any

// Recorder receives events and uncaught errors.
type Recorder interface {
	Event(name string, params Params)
	Error(err error)
}

// Log is a Recorder writing structured events through zerolog. Every
// event carries a per-launch client id so log lines from one run can
// be grouped.
type Log struct {
	log      zerolog.Logger
	clientID string
}

// NewLog creates a zerolog-backed Recorder.
func NewLog(log zerolog.Logger) *Log {
	return &Log{
		log:      log.With().Str("component", "telemetry").Logger(),
		clientID: uuid.New().String(),
	}
}

func (l *Log) Event(name string, params Params) {
	ev := l.log.Info().Str("event", name).Str("client_id", l.clientID)
	for k, v := range params {
		ev = ev.Interface(k, v)
	}
	ev.Msg("telemetry event")
}

func (l *Log) Error(err error) {
	l.log.Error().Str("client_id", l.clientID).Err(err).Msg("forwarded error")
}

// Nop discards everything. Used when telemetry is disabled.
type Nop struct{}

func (Nop) Event(name string, params Params) {}
func (Nop) Error(err error)                  {}

// Multi fans events out to several recorders.
type Multi []Recorder

func (m Multi) Event(name string, params Params) {
	for _, r := range m {
		r.Event(name, params)
	}
}

func (m Multi) Error(err error) {
	for _, r := range m {
		r.Error(err)
	}
}
