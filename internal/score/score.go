// Package score grades learner responses against exercises. Exact match is
// too brittle for speech transcripts and loosely-ordered word assembly, so
// the word-cloud and verbal graders award partial credit via edit distance.
// Every grader is total: a malformed or incomplete response grades low, it
// never errors.
package score

import (
	"fmt"
	"strings"

	"github.com/ddrozdov/flashdrill/internal/model"
)

// PassThreshold is the accuracy cutoff below which no reward is granted,
// regardless of the exact-match flag.
const PassThreshold = 70.0

// Grade dispatches to the mode-specific grader for the exercise variant.
func Grade(ex model.Exercise, resp model.Response) (model.GradedResult, error) {
	switch e := ex.(type) {
	case *model.FillBlankExercise:
		return FillBlank(e, resp.Answers), nil
	case *model.WordCloudExercise:
		return WordCloud(e, resp.Order), nil
	case *model.VerbalExercise:
		return Verbal(e, resp.Transcript), nil
	}
	return model.GradedResult{}, fmt.Errorf("unknown exercise variant %T", ex)
}

// Passed reports whether a graded result clears the reward threshold.
func Passed(r model.GradedResult) bool {
	return r.Accuracy >= PassThreshold
}

// FillBlank grades per-blank exact case-insensitive matches. Blanks with no
// submitted answer count as incorrect. An exercise with no blanks grades as
// a trivially perfect result.
func FillBlank(ex *model.FillBlankExercise, answers map[int]string) model.GradedResult {
	result := model.GradedResult{
		CorrectAnswers: ex.CorrectAnswers,
		UserAnswers:    answers,
	}

	total := len(ex.Blanks)
	if total == 0 {
		result.Correct = true
		result.Accuracy = 100
		return result
	}

	correct := 0
	for _, b := range ex.Blanks {
		answer, ok := answers[b.Index]
		if ok && strings.EqualFold(strings.TrimSpace(answer), b.CorrectAnswer) {
			correct++
		}
	}

	result.Accuracy = 100 * float64(correct) / float64(total)
	result.Correct = correct == total
	return result
}

// WordCloud grades a submitted word order against the correct sequence using
// token-level edit distance. Accuracy rewards near-misses; Correct requires
// exact case-insensitive sequence equality.
func WordCloud(ex *model.WordCloudExercise, order []string) model.GradedResult {
	correctOrder := make([]string, len(ex.CorrectOrder))
	correctNorm := make([]string, len(ex.CorrectOrder))
	for i, tok := range ex.CorrectOrder {
		correctOrder[i] = tok.Word
		correctNorm[i] = normalizeWord(tok.Word)
	}
	userNorm := make([]string, len(order))
	for i, w := range order {
		userNorm[i] = normalizeWord(w)
	}

	result := model.GradedResult{
		CorrectOrder: correctOrder,
		UserOrder:    order,
	}

	maxLen := len(correctNorm)
	if len(userNorm) > maxLen {
		maxLen = len(userNorm)
	}
	if maxLen == 0 {
		result.Correct = true
		result.Accuracy = 100
		return result
	}

	dist := levenshteinTokens(correctNorm, userNorm)
	result.Accuracy = 100 * float64(maxLen-dist) / float64(maxLen)
	result.Correct = dist == 0 && len(correctNorm) == len(userNorm)
	return result
}

// Verbal grades a speech transcript against the full correct text using
// character-level edit distance over normalized forms.
func Verbal(ex *model.VerbalExercise, transcript string) model.GradedResult {
	correct := Normalize(ex.FullText)
	spoken := Normalize(transcript)

	result := model.GradedResult{
		CorrectText:    ex.FullText,
		UserTranscript: transcript,
	}

	correctRunes := []rune(correct)
	spokenRunes := []rune(spoken)
	maxLen := len(correctRunes)
	if len(spokenRunes) > maxLen {
		maxLen = len(spokenRunes)
	}
	if maxLen == 0 {
		result.Correct = true
		result.Accuracy = 100
		return result
	}

	dist := levenshteinRunes(correctRunes, spokenRunes)
	accuracy := 100 - 100*float64(dist)/float64(maxLen)
	if accuracy < 0 {
		accuracy = 0
	}
	result.Accuracy = accuracy
	result.Correct = accuracy >= PassThreshold
	return result
}
