package exercise

import (
	"fmt"

	"github.com/ddrozdov/flashdrill/internal/decoy"
	"github.com/ddrozdov/flashdrill/internal/difficulty"
	"github.com/ddrozdov/flashdrill/internal/model"
)

// WordCloud builds a word-cloud exercise: the sentence's tokens, each with a
// position-unique ID, plus a stage-scaled number of decoy words. The decoy
// pool falls back to grammatical filler words when no module vocabulary is
// supplied, so decoys blend in with any sentence.
func (g *Generator) WordCloud(text string, stage int) *model.WordCloudExercise {
	stage = model.ModeWordCloud.ClampStage(stage)
	words := splitWords(text)

	tokens := make([]model.Token, len(words))
	for i, w := range words {
		tokens[i] = model.Token{
			Word: w,
			ID:   fmt.Sprintf("%d-%s", i, w),
		}
	}

	// Every sentence word is a correct answer here, so the pool is module
	// vocabulary or, failing that, the filler-word list.
	count := difficulty.WordCloudDecoyCount(stage, len(words))
	pool := g.vocab
	if len(pool) == 0 {
		pool = decoy.FillerWords()
	}

	decoyWords := decoy.Generate(words, pool, count, g.rng)
	decoys := make([]model.Token, len(decoyWords))
	for i, w := range decoyWords {
		decoys[i] = model.Token{
			Word: w,
			ID:   fmt.Sprintf("decoy-%d-%s", i, w),
		}
	}

	return &model.WordCloudExercise{
		Words:        tokens,
		Decoys:       decoys,
		CorrectOrder: tokens,
		Stage:        stage,
		OriginalText: text,
	}
}
