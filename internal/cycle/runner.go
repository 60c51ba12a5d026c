// Package cycle drives the simulation clock: on every tick one season
// half plays out, a transfer window advances the population, routine
// squad decisions apply, and the resulting state is snapshotted. Two
// halves complete a season.
package cycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"virtualtd-service/internal/domain"
	"virtualtd-service/internal/logging"
	"virtualtd-service/internal/metrics"
	"virtualtd-service/internal/sim"
	"virtualtd-service/internal/snapshots"
)

const defaultInterval = 30 * time.Second

// halvesPerSeason is fixed: a season is two round-robin halves.
const halvesPerSeason = 2

// Simulator is the slice of the league simulator the runner drives.
type Simulator interface {
	MyTeam() string
	RunSeasonHalf(instruction domain.CoachInstruction) error
	RunTransferWindow() []domain.PlayerRow
	UpdateEndOfTransferWindow(rows []domain.PlayerRow)
	StartNewSeason()
	Standings() []domain.TeamRow
	Players() []domain.PlayerRow
}

// Runner advances the simulation on an interval until stopped.
type Runner struct {
	sim         Simulator
	saver       snapshots.Saver
	instruction domain.CoachInstruction
	market      []domain.Player
	logger      *slog.Logger
	metrics     *metrics.Recorder
	interval    time.Duration
	now         func() time.Time
	runID       string

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// advanceMu serializes cycles: the ticker loop and the admin
	// trigger must never mutate the tables at the same time.
	advanceMu sync.Mutex
	cycle     int
	halves    int

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the cycle loop.
type Status struct {
	RunID               string
	Cycle               int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the runner has completed a recent cycle and is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults. A nil saver disables
// snapshotting; an empty market disables scripted acquisitions.
func New(simulator Simulator, saver snapshots.Saver, instruction domain.CoachInstruction, market []domain.Player, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	if saver == nil {
		saver = snapshots.NopSaver{}
	}
	runID := uuid.NewString()
	return &Runner{
		sim:         simulator,
		saver:       saver,
		instruction: instruction,
		market:      append([]domain.Player(nil), market...),
		logger:      logger,
		metrics:     recorder,
		interval:    interval,
		now:         time.Now,
		runID:       runID,
		done:        make(chan struct{}),
		status:      Status{RunID: runID},
	}
}

// RunID identifies this simulation run.
func (r *Runner) RunID() string { return r.runID }

// Start begins cycling until the context is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "cycle runner started",
			logging.FieldRunID, r.runID,
			logging.FieldDurationMS, r.interval.Milliseconds(),
		)
		// First cycle runs on boot so the tables have standings early.
		r.advanceOnce()

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "cycle runner stopped", logging.FieldRunID, r.runID)
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "cycle runner stopped", logging.FieldRunID, r.runID)
				return
			case <-r.ticker.C:
				r.advanceOnce()
			}
		}
	}()
}

// Stop halts the cycle loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// Advance runs one cycle immediately, for the admin trigger. It shares
// the same serialization as the ticker loop.
func (r *Runner) Advance(ctx context.Context) error {
	_ = ctx
	return r.advanceOnce()
}

func (r *Runner) advanceOnce() error {
	r.advanceMu.Lock()
	defer r.advanceMu.Unlock()

	start := time.Now()
	r.recordAttempt(start)

	err := r.runCycle()
	r.metrics.RecordCycle(time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "cycle failed", err,
			logging.FieldRunID, r.runID,
			logging.FieldCycle, r.cycle,
		)
		r.recordFailure(err, start)
		return err
	}

	r.cycle++
	r.recordSuccess(start)
	logging.Info(r.logger, "cycle complete",
		logging.FieldRunID, r.runID,
		logging.FieldCycle, r.cycle,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	if saveErr := r.saver.SaveState(snapshots.State{
		RunID:     r.runID,
		Cycle:     r.cycle,
		SavedAt:   r.now().UTC(),
		Standings: r.sim.Standings(),
		Players:   r.sim.Players(),
	}); saveErr != nil {
		logging.Error(r.logger, "cycle snapshot write failed", saveErr, logging.FieldRunID, r.runID)
	}
	return nil
}

// runCycle plays one half, advances the window, applies the scripted
// squad decisions and re-absorbs the managed slice. Every second half
// rolls the season over.
func (r *Runner) runCycle() error {
	if err := r.sim.RunSeasonHalf(r.instruction); err != nil {
		return err
	}

	slice := r.sim.RunTransferWindow()
	engine := sim.NewDecisionEngine(r.sim.MyTeam(), slice, r.logger, r.metrics)
	r.applyDecisions(engine)
	r.sim.UpdateEndOfTransferWindow(engine.Squad())

	r.halves++
	if r.halves >= halvesPerSeason {
		r.sim.StartNewSeason()
		r.halves = 0
	}
	return nil
}

// applyDecisions runs the scripted transfer policy: cash in players the
// next window would terminate anyway, then fill open slots from the free
// agent market, cheapest candidate first. Accepted signings leave the
// market.
func (r *Runner) applyDecisions(engine *sim.DecisionEngine) {
	var toSell []string
	for _, row := range engine.Squad() {
		expiring := row.ContractYears <= sim.DefaultWindowStep ||
			row.Age+sim.DefaultWindowStep >= 35 ||
			(row.Tier == domain.TierAcademy && row.Age+sim.DefaultWindowStep >= 21)
		if expiring {
			toSell = append(toSell, row.Name)
		}
	}
	if len(toSell) > 0 {
		credited := engine.Sell(toSell)
		logging.Info(r.logger, "sold expiring players",
			logging.FieldCount, len(toSell),
			"credited", credited,
		)
	}

	if len(r.market) == 0 {
		return
	}
	open := engine.Assess()
	for _, pos := range domain.Positions() {
		for _, tier := range open[pos] {
			idx := r.cheapestCandidate(pos, engine.Balance())
			if idx < 0 {
				continue
			}
			results := engine.Buy([]domain.Transfer{{
				Player:        r.market[idx],
				Tier:          tier,
				ContractYears: signingContractYears,
			}})
			if results[0].Accepted {
				r.market = append(r.market[:idx], r.market[idx+1:]...)
			}
		}
	}
}

// signingContractYears is the contract offered to scripted signings.
const signingContractYears = 3

func (r *Runner) cheapestCandidate(pos domain.Position, budget float64) int {
	best := -1
	for i, p := range r.market {
		if p.Position != pos || p.Value > budget {
			continue
		}
		if best < 0 || p.Value < r.market[best].Value {
			best = i
		}
	}
	return best
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Runner) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.Cycle = r.cycle
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
