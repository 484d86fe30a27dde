package exercise

import (
	"github.com/ddrozdov/flashdrill/internal/decoy"
	"github.com/ddrozdov/flashdrill/internal/difficulty"
	"github.com/ddrozdov/flashdrill/internal/model"
)

// choicesPerBlank is the fixed choice-set size: the correct answer plus
// three decoys.
const choicesPerBlank = 4

// FillBlank builds a fill-in-the-blank exercise. A stage-determined count of
// words is blanked out; each blank carries a shuffled four-item choice set
// with the correct answer present exactly once.
func (g *Generator) FillBlank(text string, stage int) *model.FillBlankExercise {
	stage = model.ModeFillBlank.ClampStage(stage)
	words := splitWords(text)

	ex := &model.FillBlankExercise{
		DisplayText:    text,
		Blanks:         []model.Blank{},
		Stage:          stage,
		OriginalText:   text,
		CorrectAnswers: map[int]string{},
	}
	if len(words) == 0 {
		return ex
	}

	count := difficulty.FillBlankCount(stage, len(words), g.rng)
	chosen := g.pickIndices(len(words), count)
	pool := g.decoyPool(words, decoy.FillerWords())

	for blankIdx, wordIdx := range chosen {
		correct := words[wordIdx]
		choices := append([]string{correct}, decoy.ForWord(correct, pool, choicesPerBlank-1, g.rng)...)
		g.rng.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
		ex.Blanks = append(ex.Blanks, model.Blank{
			Index:         blankIdx,
			CorrectAnswer: correct,
			Choices:       choices,
		})
		ex.CorrectAnswers[blankIdx] = correct
	}

	ex.DisplayText = blankOut(words, chosen)
	return ex
}
