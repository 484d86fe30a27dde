// Package decoy produces plausible-but-wrong distractor words for exercise
// choice sets. Generation is total: it always returns exactly the requested
// number of decoys, synthesizing filler variants when the pool runs dry.
package decoy

import (
	"math/rand"
	"strconv"
	"strings"
)

// fillerWords is the built-in fallback pool, weighted toward grammatical
// filler (articles, pronouns, prepositions) that blends into any sentence.
var fillerWords = []string{
	"the", "a", "an", "and", "or", "but", "so", "if", "not",
	"you", "he", "she", "it", "we", "they", "me", "him", "her", "them",
	"to", "of", "in", "on", "at", "by", "for", "with", "from", "about",
	"into", "over", "after", "before", "under", "between",
	"is", "was", "are", "were", "be", "been", "have", "has", "had",
	"do", "does", "did", "will", "would", "can", "could",
	"this", "that", "these", "those", "there", "here", "what", "when",
	"where", "who", "how", "some", "any", "all", "more", "very",
}

// FillerWords returns a copy of the built-in common-word pool.
func FillerWords() []string {
	out := make([]string, len(fillerWords))
	copy(out, fillerWords)
	return out
}

// Generate returns exactly n decoys that are distinct, case-insensitively,
// from every word in correct and from each other. Candidates come from pool;
// words of similar length to the first correct word are tried first. When the
// pool cannot supply n decoys, suffix and numeric variants of the correct
// word fill the remainder, which guarantees termination for any input.
func Generate(correct []string, pool []string, n int, rng *rand.Rand) []string {
	if n <= 0 {
		return nil
	}

	taken := make(map[string]bool, len(correct)+n)
	for _, w := range correct {
		taken[strings.ToLower(w)] = true
	}

	targetLen := 0
	if len(correct) > 0 {
		targetLen = len(correct[0])
	}

	// Split candidates by length similarity, dropping anything already taken.
	var similar, rest []string
	seen := make(map[string]bool, len(pool))
	for _, w := range pool {
		key := strings.ToLower(strings.TrimSpace(w))
		if key == "" || taken[key] || seen[key] {
			continue
		}
		seen[key] = true
		if diff := len(w) - targetLen; diff >= -2 && diff <= 2 {
			similar = append(similar, w)
		} else {
			rest = append(rest, w)
		}
	}
	shuffle(similar, rng)
	shuffle(rest, rng)

	decoys := make([]string, 0, n)
	for _, w := range append(similar, rest...) {
		if len(decoys) == n {
			return decoys
		}
		decoys = append(decoys, w)
		taken[strings.ToLower(w)] = true
	}

	// Pool exhausted: synthesize variants of the correct word.
	base := "word"
	if len(correct) > 0 && correct[0] != "" {
		base = strings.ToLower(correct[0])
	}
	for _, suffix := range []string{"s", "es", "ing", "ed", "er"} {
		if len(decoys) == n {
			return decoys
		}
		v := base + suffix
		if !taken[v] {
			decoys = append(decoys, v)
			taken[v] = true
		}
	}
	for i := 2; len(decoys) < n; i++ {
		v := base + strconv.Itoa(i)
		if !taken[v] {
			decoys = append(decoys, v)
			taken[v] = true
		}
	}
	return decoys
}

// ForWord is the single-target form of Generate.
func ForWord(correct string, pool []string, n int, rng *rand.Rand) []string {
	return Generate([]string{correct}, pool, n, rng)
}

func shuffle(words []string, rng *rand.Rand) {
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
