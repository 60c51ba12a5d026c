package sim

import (
	"errors"
	"testing"

	"virtualtd-service/internal/domain"
)

func TestDrawSelectsOnePlayerPerPosition(t *testing.T) {
	rows := fullSquadRows("North FC", 60, false)
	selector, err := NewLineupSelector(testRNG(1), "North FC", domain.DefaultInstruction(), rows)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	lineup, err := selector.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(lineup) != 11 {
		t.Fatalf("expected 11 players, got %d", len(lineup))
	}

	seen := make(map[domain.Position]bool)
	for _, p := range lineup {
		if seen[p.Position] {
			t.Fatalf("position %s selected twice", p.Position)
		}
		seen[p.Position] = true
	}
}

func TestDrawHonorsExclusiveShare(t *testing.T) {
	rows := fullSquadRows("North FC", 60, false)
	instruction := domain.CoachInstruction{StarterShare: 100}
	selector, err := NewLineupSelector(testRNG(1), "North FC", instruction, rows)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	lineup, err := selector.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	for _, p := range lineup {
		if p.Tier != domain.TierStarter {
			t.Fatalf("starter-only instruction selected a %s", p.Tier)
		}
	}
}

func TestNewLineupSelectorRejectsZeroShares(t *testing.T) {
	rows := fullSquadRows("North FC", 60, false)
	if _, err := NewLineupSelector(testRNG(1), "North FC", domain.CoachInstruction{}, rows); err == nil {
		t.Fatal("expected error for all-zero shares")
	}
}

func TestNewLineupSelectorRejectsNegativeShare(t *testing.T) {
	rows := fullSquadRows("North FC", 60, false)
	instruction := domain.CoachInstruction{StarterShare: 70, SubShare: -1}
	if _, err := NewLineupSelector(testRNG(1), "North FC", instruction, rows); err == nil {
		t.Fatal("expected error for negative share")
	}
}

func TestDrawSurfacesEmptyCell(t *testing.T) {
	var rows []domain.PlayerRow
	for _, r := range fullSquadRows("North FC", 60, false) {
		if r.Tier == domain.TierAcademy {
			continue
		}
		rows = append(rows, r)
	}

	instruction := domain.CoachInstruction{AcademyShare: 10}
	selector, err := NewLineupSelector(testRNG(1), "North FC", instruction, rows)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	_, err = selector.Draw()
	var invalid *InvalidSquadStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidSquadStateError, got %v", err)
	}
	if invalid.Team != "North FC" || invalid.Slot.Tier != domain.TierAcademy {
		t.Fatalf("unexpected error detail: %+v", invalid)
	}
}
