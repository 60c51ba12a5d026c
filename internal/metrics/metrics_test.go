package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderCycleCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordCycle(120*time.Millisecond, nil)
	r.RecordCycle(80*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot()
	if snap.Cycles != 2 {
		t.Fatalf("expected 2 cycles, got %d", snap.Cycles)
	}
	if snap.CycleErrors != 1 {
		t.Fatalf("expected 1 cycle error, got %d", snap.CycleErrors)
	}
	if snap.LastCycleLatency != 80*time.Millisecond {
		t.Fatalf("expected last latency 80ms, got %s", snap.LastCycleLatency)
	}
}

func TestRecorderSimulationCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordMatchesSimulated(17)
	r.RecordMatchesSimulated(17)
	r.RecordPlayersGenerated(33)
	r.RecordResamples("age", 2)
	r.RecordResamples("team_strength", 1)
	r.RecordTransferRejected("slot_filled")

	snap := r.Snapshot()
	if snap.MatchesSimulated != 34 {
		t.Fatalf("expected 34 matches, got %d", snap.MatchesSimulated)
	}
	if snap.PlayersGenerated != 33 {
		t.Fatalf("expected 33 players, got %d", snap.PlayersGenerated)
	}
	if snap.Resamples["age"] != 2 || snap.Resamples["team_strength"] != 1 {
		t.Fatalf("unexpected resample counts: %+v", snap.Resamples)
	}
	if snap.TransferRejections["slot_filled"] != 1 {
		t.Fatalf("unexpected rejection counts: %+v", snap.TransferRejections)
	}
}

func TestRecorderIgnoresNonPositiveCounts(t *testing.T) {
	r := NewRecorder()

	r.RecordMatchesSimulated(0)
	r.RecordMatchesSimulated(-3)
	r.RecordPlayersGenerated(-1)

	snap := r.Snapshot()
	if snap.MatchesSimulated != 0 || snap.PlayersGenerated != 0 {
		t.Fatalf("expected zero counts, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordCycle(time.Second, nil)
	r.RecordMatchesSimulated(5)
	r.RecordResamples("age", 1)
	r.RecordTransferRejected("funds")
	r.RecordHTTPRequest("GET", "/standings", 200, time.Millisecond)

	if snap := r.Snapshot(); snap.Cycles != 0 {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
}

func TestSetupDisabledReturnsRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(nil, TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected nil handler when disabled")
	}
	if err := shutdown(nil); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}
