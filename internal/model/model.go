package model

import (
	"fmt"
	"time"
)

// Mode identifies one of the three exercise variants.
type Mode string

const (
	// ModeFillBlank is a multiple-choice fill-in-the-blank exercise.
	ModeFillBlank Mode = "fill_blank"
	// ModeWordCloud is a reorder-the-words exercise with decoy words mixed in.
	ModeWordCloud Mode = "word_cloud"
	// ModeVerbal is a speak-the-full-sentence exercise graded from a transcript.
	ModeVerbal Mode = "verbal"
)

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFillBlank, ModeWordCloud, ModeVerbal:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want fill_blank, word_cloud or verbal)", s)
}

// MaxStage returns the highest valid stage for the mode.
// Fill-blank and verbal ramp over nine stages; word cloud over four.
func (m Mode) MaxStage() int {
	if m == ModeWordCloud {
		return 4
	}
	return 9
}

// ClampStage forces a stage into the mode's valid range.
func (m Mode) ClampStage(stage int) int {
	if stage < 1 {
		return 1
	}
	if max := m.MaxStage(); stage > max {
		return max
	}
	return stage
}

// BlankMarker is the token substituted for removed words in display text.
const BlankMarker = "___"

// Exercise is implemented by the three mode-specific exercise variants.
type Exercise interface {
	// Mode reports which variant this exercise is.
	Mode() Mode
	// ExerciseStage reports the difficulty stage the exercise was built for.
	ExerciseStage() int
}

// Blank is a single removed word in a fill-blank exercise.
type Blank struct {
	Index         int      `json:"index"`
	CorrectAnswer string   `json:"correct_answer"`
	Choices       []string `json:"choices"`
}

// FillBlankExercise presents the source text with words replaced by blanks,
// each blank carrying a four-item choice set.
type FillBlankExercise struct {
	DisplayText    string         `json:"display_text"`
	Blanks         []Blank        `json:"blanks"`
	Stage          int            `json:"stage"`
	OriginalText   string         `json:"original_text"`
	CorrectAnswers map[int]string `json:"correct_answers"`
}

func (e *FillBlankExercise) Mode() Mode         { return ModeFillBlank }
func (e *FillBlankExercise) ExerciseStage() int { return e.Stage }

// Token is a single word instance. The ID embeds the original position so
// repeated words remain individually addressable.
type Token struct {
	Word string `json:"word"`
	ID   string `json:"id"`
}

// WordCloudExercise presents the sentence's words shuffled together with
// decoys; the learner reassembles the original order.
type WordCloudExercise struct {
	Words        []Token `json:"words"`
	Decoys       []Token `json:"decoys"`
	CorrectOrder []Token `json:"correct_order"`
	Stage        int     `json:"stage"`
	OriginalText string  `json:"original_text"`
}

func (e *WordCloudExercise) Mode() Mode         { return ModeWordCloud }
func (e *WordCloudExercise) ExerciseStage() int { return e.Stage }

// VerbalExercise hides a subset of words in the displayed text; the learner
// must speak the complete sentence, blanks included.
type VerbalExercise struct {
	DisplayText  string   `json:"display_text"`
	FullText     string   `json:"full_text"`
	Stage        int      `json:"stage"`
	WordsRemoved int      `json:"words_removed"`
	TotalWords   int      `json:"total_words"`
	RemovedWords []string `json:"removed_words"`
}

func (e *VerbalExercise) Mode() Mode         { return ModeVerbal }
func (e *VerbalExercise) ExerciseStage() int { return e.Stage }

// Response is a learner's answer to an exercise. Only the field matching the
// exercise mode is consulted.
type Response struct {
	// Answers maps blank index to the chosen word (fill-blank).
	Answers map[int]string `json:"answers,omitempty"`
	// Order is the submitted word sequence (word cloud).
	Order []string `json:"order,omitempty"`
	// Transcript is the speech-to-text output (verbal).
	Transcript string `json:"transcript,omitempty"`
}

// GradedResult is the outcome of grading one response against one exercise.
// Correct is the strict exact-match flag; Accuracy is the continuous fuzzy
// score. The pass decision used for rewards is Accuracy >= the pass
// threshold, independent of Correct.
type GradedResult struct {
	Correct      bool    `json:"correct"`
	Accuracy     float64 `json:"accuracy"`
	PointsEarned int     `json:"points_earned"`

	CorrectAnswers map[int]string `json:"correct_answers,omitempty"`
	CorrectOrder   []string       `json:"correct_order,omitempty"`
	CorrectText    string         `json:"correct_text,omitempty"`

	UserAnswers    map[int]string `json:"user_answers,omitempty"`
	UserOrder      []string       `json:"user_order,omitempty"`
	UserTranscript string         `json:"user_transcript,omitempty"`
}

// StageCompletion is an immutable record of one graded attempt, consumed by
// the points engine and emitted to the external progress store.
type StageCompletion struct {
	ID           string    `json:"id"`
	Stage        int       `json:"stage"`
	ModuleID     string    `json:"module_id"`
	CardID       string    `json:"card_id"`
	LearningType Mode      `json:"learning_type"`
	Accuracy     float64   `json:"accuracy"`
	TimeSpent    int       `json:"time_spent"` // seconds
	IsFirstPass  bool      `json:"is_first_pass"`
	IsOnTime     bool      `json:"is_on_time"`
	CompletedAt  time.Time `json:"completed_at"`
}

// PointsCalculation is a points breakdown for a single completion.
type PointsCalculation struct {
	BasePoints     int      `json:"base_points"`
	FirstPassBonus int      `json:"first_pass_bonus"`
	SpeedBonus     int      `json:"speed_bonus"`
	OnTimeBonus    int      `json:"on_time_bonus"`
	TotalPoints    int      `json:"total_points"`
	Breakdown      []string `json:"breakdown"`
}

// StreakData tracks consecutive calendar days of qualifying practice.
type StreakData struct {
	CurrentStreak    int       `json:"current_streak"`
	BestStreak       int       `json:"best_streak"`
	LastPracticeDate time.Time `json:"last_practice_date"`
	StreakActive     bool      `json:"streak_active"`
}

// BadgeProgress reports how far a user is toward one badge. Award persistence
// is external; this is derived state only.
type BadgeProgress struct {
	BadgeID     string     `json:"badge_id"`
	Category    string     `json:"category"`
	Progress    int        `json:"progress"`
	Requirement int        `json:"requirement"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

// UserStats are aggregate lifetime statistics badges are derived from.
type UserStats struct {
	TotalPoints      int `json:"total_points"`
	StagesCompleted  int `json:"stages_completed"`
	PerfectScores    int `json:"perfect_scores"`
	CurrentStreak    int `json:"current_streak"`
	BestStreak       int `json:"best_streak"`
	ModulesCompleted int `json:"modules_completed"`
	VerbalCompleted  int `json:"verbal_completed"`
}

// CardImport is one study phrase loaded from a module JSON file.
type CardImport struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Vocabulary []string `json:"vocabulary,omitempty"`
}

// ModuleImport is the JSON input format for a study module.
type ModuleImport struct {
	ModuleID   string       `json:"module_id"`
	Name       string       `json:"name"`
	Vocabulary []string     `json:"vocabulary,omitempty"`
	Cards      []CardImport `json:"cards"`
}
