package sim

import (
	"log/slog"

	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/logging"
	"virtualtd-service/internal/metrics"
)

// ContractExtension sets a named player's remaining contract years.
type ContractExtension struct {
	Name  string `json:"player_name"`
	Years int    `json:"contract_years"`
}

// TierChange reassigns a named player's hierarchy tier.
type TierChange struct {
	Name string      `json:"player_name"`
	Tier domain.Tier `json:"squad_hierarchy"`
}

// TransferResult reports the fate of one proposed acquisition. Rejections
// carry a *TransferError; the batch continues past them.
type TransferResult struct {
	Player   string `json:"player_name"`
	Accepted bool   `json:"accepted"`
	Err      error  `json:"-"`
	Reason   string `json:"reason,omitempty"`
}

// DecisionEngine owns the managed team's player slice for one transfer
// window. Operations apply in the exact order given; selling before
// buying and buying before selling are different programs, so there is no
// reordering and no batch rollback.
type DecisionEngine struct {
	team     string
	rows     []domain.PlayerRow
	balance  float64
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewDecisionEngine takes ownership of the rows and immediately applies
// auto-termination: players out of contract or aged 35 and over go first,
// then academy players aged 21 and over. Starters and subs are exempt
// from the academy cutoff.
func NewDecisionEngine(team string, rows []domain.PlayerRow, logger *slog.Logger, recorder *metrics.Recorder) *DecisionEngine {
	e := &DecisionEngine{
		team:     team,
		rows:     append([]domain.PlayerRow(nil), rows...),
		logger:   logger,
		recorder: recorder,
	}
	e.autoTerminate()
	return e
}

func (e *DecisionEngine) autoTerminate() {
	terminated := e.removeWhere(func(r domain.PlayerRow) bool {
		return r.ContractYears <= 0 || r.Age >= 35
	})
	terminated += e.removeWhere(func(r domain.PlayerRow) bool {
		return r.Tier == domain.TierAcademy && r.Age >= 21
	})
	if terminated > 0 {
		logging.Info(e.logger, "auto-terminated players",
			logging.FieldTeam, e.team,
			logging.FieldCount, terminated,
		)
	}
}

func (e *DecisionEngine) removeWhere(pred func(domain.PlayerRow) bool) int {
	kept := e.rows[:0]
	removed := 0
	for _, r := range e.rows {
		if pred(r) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	e.rows = kept
	return removed
}

// Balance returns the spendable money accumulated through sales.
func (e *DecisionEngine) Balance() float64 {
	return e.balance
}

// Squad returns a copy of the current working slice.
func (e *DecisionEngine) Squad() []domain.PlayerRow {
	return append([]domain.PlayerRow(nil), e.rows...)
}

// Sell removes the named players and credits their value to the balance.
// Unknown names are ignored. It returns the credited sum.
func (e *DecisionEngine) Sell(names []string) float64 {
	selling := make(map[string]bool, len(names))
	for _, n := range names {
		selling[n] = true
	}

	var credited float64
	e.removeWhere(func(r domain.PlayerRow) bool {
		if !selling[r.Name] {
			return false
		}
		credited += r.Value
		return true
	})
	e.balance += credited
	return credited
}

// Extend sets the remaining contract years for each named player. Unknown
// names are ignored.
func (e *DecisionEngine) Extend(extensions []ContractExtension) {
	for _, ext := range extensions {
		for i := range e.rows {
			if e.rows[i].Name == ext.Name {
				e.rows[i].ContractYears = float64(ext.Years)
			}
		}
	}
}

// Promote reassigns the hierarchy tier for each named player. Unknown
// names are ignored.
func (e *DecisionEngine) Promote(changes []TierChange) {
	for _, change := range changes {
		for i := range e.rows {
			if e.rows[i].Name == change.Name {
				e.rows[i].Tier = change.Tier
			}
		}
	}
}

// Assess reports, per position, which tier slots are currently unfilled.
// Positions with a full tier set are omitted. It is read-only.
func (e *DecisionEngine) Assess() map[domain.Position][]domain.Tier {
	filled := make(map[domain.Slot]bool, len(e.rows))
	for _, r := range e.rows {
		filled[domain.Slot{Position: r.Position, Tier: r.Tier}] = true
	}

	open := make(map[domain.Position][]domain.Tier)
	for _, pos := range domain.Positions() {
		for _, tier := range domain.Tiers() {
			if !filled[domain.Slot{Position: pos, Tier: tier}] {
				open[pos] = append(open[pos], tier)
			}
		}
	}
	return open
}

// Buy validates and executes proposed acquisitions in order. A buy needs
// the candidate's value within the remaining balance and the target
// (position, tier) cell empty. A rejected buy leaves the balance and the
// squad untouched and the batch moves on.
func (e *DecisionEngine) Buy(transfers []domain.Transfer) []TransferResult {
	results := make([]TransferResult, 0, len(transfers))
	for _, transfer := range transfers {
		result := e.buyOne(transfer)
		results = append(results, result)
	}
	return results
}

func (e *DecisionEngine) buyOne(transfer domain.Transfer) TransferResult {
	candidate := transfer.Player

	if candidate.Value > e.balance {
		return e.reject(candidate.Name, ReasonInsufficientFunds)
	}
	target := domain.Slot{Position: candidate.Position, Tier: transfer.Tier}
	for _, r := range e.rows {
		if r.Position == target.Position && r.Tier == target.Tier {
			return e.reject(candidate.Name, ReasonSlotFilled)
		}
	}

	e.balance -= candidate.Value
	candidate.Tier = transfer.Tier
	candidate.ContractYears = float64(transfer.ContractYears)
	e.rows = append(e.rows, domain.PlayerRow{
		Player: candidate,
		Team:   e.team,
		MyTeam: true,
	})
	logging.Info(e.logger, "transfer accepted",
		logging.FieldTeam, e.team,
		logging.FieldPlayer, candidate.Name,
		"value", candidate.Value,
	)
	return TransferResult{Player: candidate.Name, Accepted: true}
}

func (e *DecisionEngine) reject(player, reason string) TransferResult {
	e.recorder.RecordTransferRejected(reason)
	logging.Warn(e.logger, "transfer rejected",
		logging.FieldTeam, e.team,
		logging.FieldPlayer, player,
		"reason", reason,
	)
	return TransferResult{
		Player: player,
		Reason: reason,
		Err:    &TransferError{Player: player, Reason: reason},
	}
}
