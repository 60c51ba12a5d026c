// Package store holds the authoritative in-memory tables for a simulation
// run. Tables are safe for concurrent readers; the cycle loop is the only
// writer.
package store

import (
	"sort"
	"sync"

	"virtualtd-service/internal/domain"
)

// PlayerTable keeps the league-wide player population keyed by player name.
// Names are unique within a run, so they serve as stable row identifiers.
type PlayerTable struct {
	mu   sync.RWMutex
	rows map[string]domain.PlayerRow
}

// NewPlayerTable constructs an empty PlayerTable.
func NewPlayerTable() *PlayerTable {
	return &PlayerTable{
		rows: make(map[string]domain.PlayerRow),
	}
}

// List returns a copy of all rows sorted by team then player name. The
// sort keeps iteration deterministic for seeded simulations.
func (t *PlayerTable) List() []domain.PlayerRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]domain.PlayerRow, 0, len(t.rows))
	for _, r := range t.rows {
		result = append(result, r)
	}
	sortRows(result)
	return result
}

// Where returns a copy of the rows matching the predicate, sorted by team
// then player name.
func (t *PlayerTable) Where(pred func(domain.PlayerRow) bool) []domain.PlayerRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []domain.PlayerRow
	for _, r := range t.rows {
		if pred(r) {
			result = append(result, r)
		}
	}
	sortRows(result)
	return result
}

// Get retrieves a row by player name.
func (t *PlayerTable) Get(name string) (domain.PlayerRow, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[name]
	return r, ok
}

// Len reports the current row count.
func (t *PlayerTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// ReplaceAll swaps the table contents for a new snapshot.
func (t *PlayerTable) ReplaceAll(rows []domain.PlayerRow) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = make(map[string]domain.PlayerRow, len(rows))
	for _, r := range rows {
		t.rows[r.Name] = r
	}
}

// Insert adds or overwrites a single row.
func (t *PlayerTable) Insert(row domain.PlayerRow) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[row.Name] = row
}

// Update applies fn to the named row in place. It reports whether the row
// existed.
func (t *PlayerTable) Update(name string, fn func(*domain.PlayerRow)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[name]
	if !ok {
		return false
	}
	fn(&r)
	t.rows[name] = r
	return true
}

// UpdateWhere applies fn to every row matching the predicate and returns
// the number of rows touched.
func (t *PlayerTable) UpdateWhere(pred func(domain.PlayerRow) bool, fn func(*domain.PlayerRow)) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	touched := 0
	for name, r := range t.rows {
		if !pred(r) {
			continue
		}
		fn(&r)
		t.rows[name] = r
		touched++
	}
	return touched
}

// RemoveWhere deletes every row matching the predicate and returns the
// number of rows removed.
func (t *PlayerTable) RemoveWhere(pred func(domain.PlayerRow) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for name, r := range t.rows {
		if pred(r) {
			delete(t.rows, name)
			removed++
		}
	}
	return removed
}

func sortRows(rows []domain.PlayerRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		return rows[i].Name < rows[j].Name
	})
}
