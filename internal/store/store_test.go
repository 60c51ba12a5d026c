package store

import (
	"testing"

	"virtualtd-service/internal/domain"
)

func row(name, team string, myTeam bool) domain.PlayerRow {
	return domain.PlayerRow{
		Player: domain.Player{
			Name:     name,
			Position: domain.PositionStriker,
			Tier:     domain.TierStarter,
		},
		Team:   team,
		MyTeam: myTeam,
	}
}

func TestPlayerTableListIsSortedCopy(t *testing.T) {
	table := NewPlayerTable()
	table.Insert(row("Zed Vale", "North FC", false))
	table.Insert(row("Abe Holt", "North FC", false))
	table.Insert(row("Cal Vance", "East FC", true))

	rows := table.List()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Team != "East FC" || rows[1].Name != "Abe Holt" || rows[2].Name != "Zed Vale" {
		t.Fatalf("unexpected order: %+v", rows)
	}

	rows[0].Team = "mutated"
	if fresh := table.List(); fresh[0].Team != "East FC" {
		t.Fatal("List must return a copy, not shared rows")
	}
}

func TestPlayerTableUpdate(t *testing.T) {
	table := NewPlayerTable()
	table.Insert(row("Abe Holt", "North FC", false))

	ok := table.Update("Abe Holt", func(r *domain.PlayerRow) {
		r.XPoints = 12.0
	})
	if !ok {
		t.Fatal("expected update to find the row")
	}
	got, _ := table.Get("Abe Holt")
	if got.XPoints != 12.0 {
		t.Fatalf("expected xPoints 12.0, got %v", got.XPoints)
	}

	if table.Update("Nobody", func(*domain.PlayerRow) {}) {
		t.Fatal("update of a missing row must report false")
	}
}

func TestPlayerTableUpdateWhere(t *testing.T) {
	table := NewPlayerTable()
	table.Insert(row("Abe Holt", "North FC", false))
	table.Insert(row("Cal Vance", "East FC", true))

	touched := table.UpdateWhere(
		func(r domain.PlayerRow) bool { return r.MyTeam },
		func(r *domain.PlayerRow) { r.Minutes = 70 },
	)
	if touched != 1 {
		t.Fatalf("expected 1 row touched, got %d", touched)
	}
	got, _ := table.Get("Cal Vance")
	if got.Minutes != 70 {
		t.Fatalf("expected minutes 70, got %v", got.Minutes)
	}
}

func TestPlayerTableRemoveWhere(t *testing.T) {
	table := NewPlayerTable()
	table.Insert(row("Abe Holt", "North FC", false))
	table.Insert(row("Cal Vance", "East FC", true))

	removed := table.RemoveWhere(func(r domain.PlayerRow) bool { return r.Team == "East FC" })
	if removed != 1 {
		t.Fatalf("expected 1 row removed, got %d", removed)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 row left, got %d", table.Len())
	}
	if _, ok := table.Get("Cal Vance"); ok {
		t.Fatal("removed row still present")
	}
}

func TestPlayerTableReplaceAll(t *testing.T) {
	table := NewPlayerTable()
	table.Insert(row("Abe Holt", "North FC", false))

	table.ReplaceAll([]domain.PlayerRow{row("Cal Vance", "East FC", true)})
	if table.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", table.Len())
	}
	if _, ok := table.Get("Abe Holt"); ok {
		t.Fatal("replaced row still present")
	}
}

func TestTeamTablePreservesOrder(t *testing.T) {
	table := NewTeamTable([]domain.TeamRow{
		{Name: "North FC", Rank: 1},
		{Name: "East FC", Rank: 2},
	})

	rows := table.List()
	if rows[0].Name != "North FC" || rows[1].Name != "East FC" {
		t.Fatalf("unexpected order: %+v", rows)
	}

	rows[0].Name = "mutated"
	if fresh := table.List(); fresh[0].Name != "North FC" {
		t.Fatal("List must return a copy, not shared rows")
	}
}

func TestTeamTableUpdate(t *testing.T) {
	table := NewTeamTable([]domain.TeamRow{{Name: "North FC"}})

	if !table.Update("North FC", func(r *domain.TeamRow) { r.XPoints = 9 }) {
		t.Fatal("expected update to find the row")
	}
	got, ok := table.Get("North FC")
	if !ok || got.XPoints != 9 {
		t.Fatalf("unexpected row after update: %+v", got)
	}

	table.UpdateAll(func(r *domain.TeamRow) { r.XPoints = 0 })
	got, _ = table.Get("North FC")
	if got.XPoints != 0 {
		t.Fatalf("expected reset row, got %+v", got)
	}
}
