// Package snapshots persists simulation state to disk so a run can be
// inspected after the process exits. Writes are atomic and old files are
// pruned on a rolling window.
package snapshots

import (
	"time"

	"virtualtd-service/internal/domain"
)

// State is the payload captured at the end of a simulation cycle.
type State struct {
	RunID     string             `json:"run_id"`
	Cycle     int                `json:"cycle"`
	SavedAt   time.Time          `json:"saved_at"`
	Standings []domain.TeamRow   `json:"standings"`
	Players   []domain.PlayerRow `json:"players"`
}

// Saver persists cycle state. Implementations must be safe for use from
// the cycle loop goroutine.
type Saver interface {
	SaveState(state State) error
}

// NopSaver discards every state. It is the default when snapshots are
// disabled by configuration.
type NopSaver struct{}

func (NopSaver) SaveState(State) error { return nil }
