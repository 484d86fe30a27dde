// Package progress tracks per-module completion state, practice streaks and
// badge progress. The ledger is session-scoped client state: it prevents
// double-awarding within a session, but an external progress store remains
// the system of record and may still reject duplicate first-pass claims.
package progress

import (
	"fmt"
	"sort"

	"github.com/ddrozdov/flashdrill/internal/model"
)

// Ledger records which (stage, mode) pairs have been rewarded for one module
// and the highest unlocked stage per mode. One ledger belongs to one active
// session; it must not be shared across concurrent sessions.
type Ledger struct {
	moduleID        string
	completed       map[string]bool
	pointsAwarded   map[string]int
	highestUnlocked map[model.Mode]int
}

// NewLedger creates an empty ledger for a module. Stage 1 of every mode
// starts unlocked.
func NewLedger(moduleID string) *Ledger {
	return &Ledger{
		moduleID:        moduleID,
		completed:       make(map[string]bool),
		pointsAwarded:   make(map[string]int),
		highestUnlocked: make(map[model.Mode]int),
	}
}

// StageKey is the ledger key for a (stage, mode) pair.
func StageKey(stage int, mode model.Mode) string {
	return fmt.Sprintf("%d-%s", stage, mode)
}

// ModuleID returns the module this ledger tracks.
func (l *Ledger) ModuleID() string { return l.moduleID }

// IsCompleted reports whether the (stage, mode) pair has already been
// rewarded.
func (l *Ledger) IsCompleted(stage int, mode model.Mode) bool {
	return l.completed[StageKey(stage, mode)]
}

// PointsFor returns the points awarded for a (stage, mode) pair, zero if it
// was never rewarded.
func (l *Ledger) PointsFor(stage int, mode model.Mode) int {
	return l.pointsAwarded[StageKey(stage, mode)]
}

// TotalPoints sums every award recorded in the ledger.
func (l *Ledger) TotalPoints() int {
	total := 0
	for _, p := range l.pointsAwarded {
		total += p
	}
	return total
}

// HighestUnlocked returns the highest unlocked stage for a mode, at least 1.
func (l *Ledger) HighestUnlocked(mode model.Mode) int {
	if s := l.highestUnlocked[mode]; s > 1 {
		return s
	}
	return 1
}

// RecordPass records a passing first-time completion and its award. It
// returns false without mutating anything when the pair was already
// rewarded. Unlock state only ever moves forward and is capped at the
// mode's highest stage.
func (l *Ledger) RecordPass(stage int, mode model.Mode, pointsAwarded int) bool {
	key := StageKey(stage, mode)
	if l.completed[key] {
		return false
	}
	l.completed[key] = true
	l.pointsAwarded[key] = pointsAwarded

	next := stage + 1
	if max := mode.MaxStage(); next > max {
		next = max
	}
	if next > l.HighestUnlocked(mode) {
		l.highestUnlocked[mode] = next
	}
	return true
}

// Snapshot returns the JSON-serializable ledger state. Completed stage keys
// are sorted for stable output.
func (l *Ledger) Snapshot() model.LedgerSnapshot {
	keys := make([]string, 0, len(l.completed))
	for k := range l.completed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	awarded := make(map[string]int, len(l.pointsAwarded))
	for k, v := range l.pointsAwarded {
		awarded[k] = v
	}
	unlocked := make(map[model.Mode]int, len(l.highestUnlocked))
	for m, s := range l.highestUnlocked {
		unlocked[m] = s
	}

	return model.LedgerSnapshot{
		ModuleID:        l.moduleID,
		CompletedStages: keys,
		PointsAwarded:   awarded,
		HighestUnlocked: unlocked,
	}
}
