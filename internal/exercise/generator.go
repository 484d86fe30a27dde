// Package exercise turns a stored phrase into a graduated-difficulty
// exercise in one of three modes. Generation is intentionally
// non-deterministic: blank positions and decoys vary between attempts at
// the same stage. The random source is injectable so tests can pin it.
package exercise

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ddrozdov/flashdrill/internal/model"
)

// Generator produces exercises from source text.
type Generator struct {
	rng   *rand.Rand
	vocab []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithSeed sets a deterministic random source from a seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithVocabulary supplies a module vocabulary pool used to bias decoys
// toward in-domain words.
func WithVocabulary(words []string) Option {
	return func(g *Generator) { g.vocab = words }
}

// New creates a Generator. Without options it uses a time-seeded source and
// no vocabulary pool.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds an exercise of the given mode. Stage is clamped into the
// mode's valid range; malformed text degrades to a valid empty exercise
// rather than an error.
func (g *Generator) Generate(mode model.Mode, text string, stage int) (model.Exercise, error) {
	switch mode {
	case model.ModeFillBlank:
		return g.FillBlank(text, stage), nil
	case model.ModeWordCloud:
		return g.WordCloud(text, stage), nil
	case model.ModeVerbal:
		return g.Verbal(text, stage), nil
	}
	return nil, fmt.Errorf("unknown exercise mode %q", mode)
}

// splitWords tokenizes source text on whitespace. Punctuation stays attached
// to its word so display text reassembles cleanly.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// pickIndices selects count distinct word indices via a uniform random
// permutation, returned in ascending original order.
func (g *Generator) pickIndices(totalWords, count int) []int {
	perm := g.rng.Perm(totalWords)
	chosen := append([]int(nil), perm[:count]...)
	// Insertion sort; the slice is at most a sentence long.
	for i := 1; i < len(chosen); i++ {
		for j := i; j > 0 && chosen[j] < chosen[j-1]; j-- {
			chosen[j], chosen[j-1] = chosen[j-1], chosen[j]
		}
	}
	return chosen
}

// blankOut rebuilds the text with the chosen indices replaced by the blank
// marker.
func blankOut(words []string, chosen []int) string {
	hidden := make(map[int]bool, len(chosen))
	for _, idx := range chosen {
		hidden[idx] = true
	}
	out := make([]string, len(words))
	for i, w := range words {
		if hidden[i] {
			out[i] = model.BlankMarker
		} else {
			out[i] = w
		}
	}
	return strings.Join(out, " ")
}

// decoyPool returns the candidate pool for decoys: module vocabulary when
// supplied, else the sentence's own words, else the given fallback.
func (g *Generator) decoyPool(sentenceWords, fallback []string) []string {
	if len(g.vocab) > 0 {
		return g.vocab
	}
	if len(sentenceWords) > 1 {
		return sentenceWords
	}
	return fallback
}
