package metrics

import (
	"sync"
	"time"
)

type simStats struct {
	cycles             int
	cycleErrors        int
	lastCycleLatency   time.Duration
	matchesSimulated   int
	playersGenerated   int
	httpRequests       int
	resamples          map[string]int
	transferRejections map[string]int
}

// Recorder captures lightweight, in-memory metrics about the simulation.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats simStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: simStats{
			resamples:          make(map[string]int),
			transferRejections: make(map[string]int),
		},
		otel: otel,
	}
}

// RecordCycle increments cycle counters and stores the last observed latency.
func (r *Recorder) RecordCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.cycles++
	r.stats.lastCycleLatency = duration
	if err != nil {
		r.stats.cycleErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCycle(duration, err)
	}
}

// RecordMatchesSimulated tracks how many matches a season half simulated.
func (r *Recorder) RecordMatchesSimulated(count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.stats.matchesSimulated += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMatches(count)
	}
}

// RecordPlayersGenerated tracks population generator output.
func (r *Recorder) RecordPlayersGenerated(count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.stats.playersGenerated += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlayersGenerated(count)
	}
}

// RecordResamples tracks rejected draws in a constrained sampling loop.
func (r *Recorder) RecordResamples(kind string, count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.stats.resamples[kind] += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResamples(kind, count)
	}
}

// RecordTransferRejected tracks a rejected buy proposal by reason.
func (r *Recorder) RecordTransferRejected(reason string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.transferRejections[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTransferRejected(reason)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.httpRequests++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot is a copy of the current in-memory counters.
type Snapshot struct {
	Cycles             int
	CycleErrors        int
	LastCycleLatency   time.Duration
	MatchesSimulated   int
	PlayersGenerated   int
	HTTPRequests       int
	Resamples          map[string]int
	TransferRejections map[string]int
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Cycles:             r.stats.cycles,
		CycleErrors:        r.stats.cycleErrors,
		LastCycleLatency:   r.stats.lastCycleLatency,
		MatchesSimulated:   r.stats.matchesSimulated,
		PlayersGenerated:   r.stats.playersGenerated,
		HTTPRequests:       r.stats.httpRequests,
		Resamples:          make(map[string]int, len(r.stats.resamples)),
		TransferRejections: make(map[string]int, len(r.stats.transferRejections)),
	}
	for k, v := range r.stats.resamples {
		snap.Resamples[k] = v
	}
	for k, v := range r.stats.transferRejections {
		snap.TransferRejections[k] = v
	}
	return snap
}

// Cycles returns the total cycle runs recorded.
func (r *Recorder) Cycles() int {
	return r.Snapshot().Cycles
}

// CycleErrors returns the total failed cycle runs recorded.
func (r *Recorder) CycleErrors() int {
	return r.Snapshot().CycleErrors
}

// MatchesSimulated returns the total matches recorded.
func (r *Recorder) MatchesSimulated() int {
	return r.Snapshot().MatchesSimulated
}
