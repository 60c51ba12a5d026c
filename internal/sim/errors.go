// Package sim implements the season-cycle engine: match outcome odds,
// probabilistic line-up selection, match and season-half simulation, the
// transfer-window mutator and the squad decision engine, orchestrated by
// the LeagueSimulator.
package sim

import (
	"fmt"

	"virtualtd-service/internal/domain"
)

// InvalidSquadStateError reports a line-up draw that hit a hierarchy cell
// with no player in it.
type InvalidSquadStateError struct {
	Team string
	Slot domain.Slot
}

func (e *InvalidSquadStateError) Error() string {
	return fmt.Sprintf("invalid squad state for %s: no player at %s/%s",
		e.Team, e.Slot.Position, e.Slot.Tier)
}

// Transfer rejection reasons.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonSlotFilled        = "slot_filled"
)

// TransferError reports one rejected acquisition. Rejections are local;
// the rest of the batch still runs.
type TransferError struct {
	Player string
	Reason string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s rejected: %s", e.Player, e.Reason)
}
