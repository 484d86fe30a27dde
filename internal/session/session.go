// Package session owns one learner's pass through a module: it generates
// exercises, grades responses, and gates point awards through the progress
// ledger so a replayed stage is never rewarded twice. Ledger and streak
// state are explicit values owned here, never ambient globals, and a
// session must not be shared across goroutines.
package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ddrozdov/flashdrill/internal/exercise"
	"github.com/ddrozdov/flashdrill/internal/model"
	"github.com/ddrozdov/flashdrill/internal/points"
	"github.com/ddrozdov/flashdrill/internal/progress"
	"github.com/ddrozdov/flashdrill/internal/score"
)

// Attempt carries the caller-supplied metadata for one graded attempt.
type Attempt struct {
	CardID    string
	TimeSpent int // seconds
	OnTime    bool
}

// Session is the controller for one module practice run.
type Session struct {
	id          string
	moduleID    string
	gen         *exercise.Generator
	ledger      *progress.Ledger
	streak      model.StreakData
	completions []model.StageCompletion
	now         func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithGenerator replaces the default exercise generator.
func WithGenerator(g *exercise.Generator) Option {
	return func(s *Session) { s.gen = g }
}

// WithStreak seeds the session with existing streak state.
func WithStreak(streak model.StreakData) Option {
	return func(s *Session) { s.streak = streak }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session for a module.
func New(moduleID string, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		moduleID: moduleID,
		gen:      exercise.New(),
		ledger:   progress.NewLedger(moduleID),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Ledger exposes the session's progress ledger.
func (s *Session) Ledger() *progress.Ledger { return s.ledger }

// Streak returns the current streak state.
func (s *Session) Streak() model.StreakData { return s.streak }

// Completions returns the attempts recorded so far.
func (s *Session) Completions() []model.StageCompletion {
	out := make([]model.StageCompletion, len(s.completions))
	copy(out, s.completions)
	return out
}

// NextExercise generates an exercise for a card at the given stage.
func (s *Session) NextExercise(mode model.Mode, text string, stage int) (model.Exercise, error) {
	return s.gen.Generate(mode, text, stage)
}

// Submit grades a response and, when the attempt passes for the first time
// at its (stage, mode) pair, awards points through the ledger and advances
// the streak. The returned calculation is nil when nothing was awarded.
func (s *Session) Submit(ex model.Exercise, resp model.Response, att Attempt) (model.GradedResult, *model.PointsCalculation, error) {
	result, err := score.Grade(ex, resp)
	if err != nil {
		return model.GradedResult{}, nil, err
	}

	mode := ex.Mode()
	stage := ex.ExerciseStage()
	firstPass := !s.ledger.IsCompleted(stage, mode)

	completion := model.StageCompletion{
		ID:           uuid.NewString(),
		Stage:        stage,
		ModuleID:     s.moduleID,
		CardID:       att.CardID,
		LearningType: mode,
		Accuracy:     result.Accuracy,
		TimeSpent:    att.TimeSpent,
		IsFirstPass:  firstPass,
		IsOnTime:     att.OnTime,
		CompletedAt:  s.now(),
	}
	s.completions = append(s.completions, completion)

	if !score.Passed(result) {
		slog.Debug("attempt below pass threshold",
			"module", s.moduleID, "stage", stage, "mode", mode, "accuracy", result.Accuracy)
		return result, nil, nil
	}

	if !firstPass {
		slog.Debug("stage already rewarded, skipping award",
			"module", s.moduleID, "stage", stage, "mode", mode)
		return result, nil, nil
	}

	calc := points.Calculate(completion)
	s.ledger.RecordPass(stage, mode, calc.TotalPoints)
	s.streak, _ = progress.UpdateStreak(s.streak, completion.CompletedAt)
	result.PointsEarned = calc.TotalPoints

	slog.Debug("stage passed",
		"module", s.moduleID, "stage", stage, "mode", mode,
		"accuracy", result.Accuracy, "points", calc.TotalPoints)
	return result, &calc, nil
}

// Export packages the session outcome for an external progress store. The
// export is candidate data only; the server side remains free to reject
// duplicate first-pass claims from other sessions.
func (s *Session) Export() model.SessionExport {
	return model.SessionExport{
		SessionID:   s.id,
		ModuleID:    s.moduleID,
		ExportedAt:  s.now(),
		TotalPoints: s.ledger.TotalPoints(),
		Completions: s.Completions(),
		Streak:      s.streak,
		Ledger:      s.ledger.Snapshot(),
	}
}
