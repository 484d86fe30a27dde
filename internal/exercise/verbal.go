package exercise

import (
	"github.com/ddrozdov/flashdrill/internal/difficulty"
	"github.com/ddrozdov/flashdrill/internal/model"
)

// Verbal builds a speaking exercise. A stage-scaled random subset of words is
// blanked in the display text only; FullText keeps the untouched original
// because the learner must speak the complete sentence. At least one word
// always stays visible for grounding.
func (g *Generator) Verbal(text string, stage int) *model.VerbalExercise {
	stage = model.ModeVerbal.ClampStage(stage)
	words := splitWords(text)

	ex := &model.VerbalExercise{
		DisplayText:  text,
		FullText:     text,
		Stage:        stage,
		TotalWords:   len(words),
		RemovedWords: []string{},
	}
	if len(words) <= 1 {
		return ex
	}

	count := difficulty.VerbalCount(stage, len(words), g.rng)
	chosen := g.pickIndices(len(words), count)
	for _, idx := range chosen {
		ex.RemovedWords = append(ex.RemovedWords, words[idx])
	}

	ex.DisplayText = blankOut(words, chosen)
	ex.WordsRemoved = count
	return ex
}
