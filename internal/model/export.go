package model

import (
	"fmt"
	"time"
)

// ExerciseEnvelope is the JSON wire form of an Exercise: a mode tag plus
// exactly one populated variant.
type ExerciseEnvelope struct {
	Mode      Mode               `json:"mode"`
	FillBlank *FillBlankExercise `json:"fill_blank,omitempty"`
	WordCloud *WordCloudExercise `json:"word_cloud,omitempty"`
	Verbal    *VerbalExercise    `json:"verbal,omitempty"`
}

// WrapExercise builds an envelope around a concrete exercise.
func WrapExercise(ex Exercise) ExerciseEnvelope {
	env := ExerciseEnvelope{Mode: ex.Mode()}
	switch e := ex.(type) {
	case *FillBlankExercise:
		env.FillBlank = e
	case *WordCloudExercise:
		env.WordCloud = e
	case *VerbalExercise:
		env.Verbal = e
	}
	return env
}

// Exercise unwraps the envelope back into the variant named by its mode tag.
func (env ExerciseEnvelope) Exercise() (Exercise, error) {
	switch env.Mode {
	case ModeFillBlank:
		if env.FillBlank == nil {
			return nil, fmt.Errorf("envelope mode %s has no fill_blank payload", env.Mode)
		}
		return env.FillBlank, nil
	case ModeWordCloud:
		if env.WordCloud == nil {
			return nil, fmt.Errorf("envelope mode %s has no word_cloud payload", env.Mode)
		}
		return env.WordCloud, nil
	case ModeVerbal:
		if env.Verbal == nil {
			return nil, fmt.Errorf("envelope mode %s has no verbal payload", env.Mode)
		}
		return env.Verbal, nil
	}
	return nil, fmt.Errorf("unknown envelope mode %q", env.Mode)
}

// LedgerSnapshot is the JSON-serializable state of a progress ledger.
type LedgerSnapshot struct {
	ModuleID        string         `json:"module_id"`
	CompletedStages []string       `json:"completed_stages"`
	PointsAwarded   map[string]int `json:"points_awarded"`
	HighestUnlocked map[Mode]int   `json:"highest_unlocked"`
}

// SessionExport is the top-level JSON structure for a practice session export.
// It is candidate data for an external progress store; nothing here is
// authoritative over server-side point totals.
type SessionExport struct {
	SessionID   string            `json:"session_id"`
	ModuleID    string            `json:"module_id"`
	ExportedAt  time.Time         `json:"exported_at"`
	TotalPoints int               `json:"total_points"`
	Completions []StageCompletion `json:"completions"`
	Streak      StreakData        `json:"streak"`
	Ledger      LedgerSnapshot    `json:"ledger"`
}
