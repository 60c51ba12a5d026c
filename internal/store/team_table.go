package store

import (
	"sync"

	"virtualtd-service/internal/domain"
)

// TeamTable keeps the standings rows in rank order. Unlike the player
// table it preserves slice order, because row order is the standings.
type TeamTable struct {
	mu   sync.RWMutex
	rows []domain.TeamRow
}

// NewTeamTable constructs a table seeded with the given rows.
func NewTeamTable(rows []domain.TeamRow) *TeamTable {
	t := &TeamTable{}
	t.Replace(rows)
	return t
}

// List returns a copy of the standings in their current order.
func (t *TeamTable) List() []domain.TeamRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]domain.TeamRow, len(t.rows))
	copy(result, t.rows)
	return result
}

// Get retrieves a standings row by team name.
func (t *TeamTable) Get(name string) (domain.TeamRow, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, r := range t.rows {
		if r.Name == name {
			return r, true
		}
	}
	return domain.TeamRow{}, false
}

// Len reports the number of teams.
func (t *TeamTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Replace swaps the standings for a new snapshot.
func (t *TeamTable) Replace(rows []domain.TeamRow) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = make([]domain.TeamRow, len(rows))
	copy(t.rows, rows)
}

// Update applies fn to the named row in place. It reports whether the row
// existed.
func (t *TeamTable) Update(name string, fn func(*domain.TeamRow)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if t.rows[i].Name == name {
			fn(&t.rows[i])
			return true
		}
	}
	return false
}

// UpdateAll applies fn to every row.
func (t *TeamTable) UpdateAll(fn func(*domain.TeamRow)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		fn(&t.rows[i])
	}
}
