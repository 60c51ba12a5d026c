package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"virtualtd-service/internal/timeutil"
)

// Writer persists cycle snapshots under basePath with date-based pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window
// retention measured in days.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

func (w *Writer) statePath(state State) string {
	date := timeutil.FormatDate(state.SavedAt.UTC())
	name := fmt.Sprintf("%s-cycle-%04d.json", date, state.Cycle)
	return filepath.Join(w.basePath, state.RunID, name)
}

// SaveState writes the cycle state and prunes snapshots older than the
// retention window. The write goes through a temp file and a rename so a
// crash mid-write never leaves a truncated snapshot behind.
func (w *Writer) SaveState(state State) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if state.RunID == "" {
		return fmt.Errorf("run id required")
	}
	if state.SavedAt.IsZero() {
		state.SavedAt = w.now().UTC()
	}

	target := w.statePath(state)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.prune(state.RunID)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.prune(state.RunID)
}

// prune removes snapshots whose date prefix falls outside the retention
// window. Files that do not carry a parseable date prefix are kept.
func (w *Writer) prune(runID string) error {
	dir := filepath.Join(w.basePath, runID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -w.retentionDays)

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		date, ok := datePrefix(e.Name())
		if !ok {
			continue
		}
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
	return nil
}

func datePrefix(name string) (string, bool) {
	if len(name) < len(timeutil.DateLayout) {
		return "", false
	}
	prefix := name[:len(timeutil.DateLayout)]
	if !strings.HasPrefix(name[len(prefix):], "-cycle-") {
		return "", false
	}
	return prefix, true
}

// List returns the snapshot file names stored for a run, sorted by name.
// The date-plus-cycle naming makes that chronological order.
func (w *Writer) List(runID string) ([]string, error) {
	dir := filepath.Join(w.basePath, runID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Load reads one stored snapshot back by file name.
func (w *Writer) Load(runID, name string) (State, error) {
	var state State
	path := filepath.Join(w.basePath, runID, name)
	f, err := os.Open(path)
	if err != nil {
		return State{}, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&state); err != nil {
		return State{}, err
	}
	return state, nil
}
