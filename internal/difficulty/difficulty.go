// Package difficulty maps a stage number to removal and decoy intensity.
// The curve ramps smoothly across a small fixed stage range while always
// leaving at least one real word visible.
package difficulty

import "math/rand"

// MaxRemovalPercent caps how much of a phrase may ever be removed.
const MaxRemovalPercent = 95

// RemovalPercent returns the target removal percentage for a stage, with a
// small random jitter so repeated attempts at the same stage differ.
func RemovalPercent(stage int, rng *rand.Rand) int {
	pct := stage*10 + rng.Intn(6)
	if pct > MaxRemovalPercent {
		pct = MaxRemovalPercent
	}
	return pct
}

// MinRemoved is the deterministic floor on how many words a stage removes:
// max(ceil(stage*0.5)+1, ceil(totalWords*stage*10/100)). It is monotonically
// non-decreasing in stage.
func MinRemoved(stage, totalWords int) int {
	byStage := (stage+1)/2 + 1
	byPercent := ceilDiv(totalWords*stage, 10)
	if byPercent > byStage {
		return byPercent
	}
	return byStage
}

// FillBlankCount returns how many words a fill-blank exercise removes.
// The count never exceeds totalWords.
func FillBlankCount(stage, totalWords int, rng *rand.Rand) int {
	if totalWords == 0 {
		return 0
	}
	byPercent := totalWords * RemovalPercent(stage, rng) / 100
	n := MinRemoved(stage, totalWords)
	if byPercent > n {
		n = byPercent
	}
	if n > totalWords {
		n = totalWords
	}
	if n < 1 {
		n = 1
	}
	return n
}

// VerbalCount returns how many words a verbal exercise hides. The count is
// drawn at random within the floor/ceil band of the target percentage and is
// capped at totalWords-1 so at least one word stays visible for grounding.
func VerbalCount(stage, totalWords int, rng *rand.Rand) int {
	if totalWords <= 1 {
		return 0
	}
	pct := RemovalPercent(stage, rng)
	lo := totalWords * pct / 100
	hi := ceilDiv(totalWords*pct, 100)
	n := lo
	if hi > lo {
		n = lo + rng.Intn(hi-lo+1)
	}
	if min := MinRemoved(stage, totalWords); n < min {
		n = min
	}
	if n > totalWords-1 {
		n = totalWords - 1
	}
	if n < 1 {
		n = 1
	}
	return n
}

// WordCloudDecoyCount returns how many decoys a word-cloud exercise mixes in:
// min(stage/3+2, wordCount, wordCount/2). The count grows coarsely every
// three stages and never exceeds half the sentence length.
func WordCloudDecoyCount(stage, wordCount int) int {
	n := stage/3 + 2
	if n > wordCount {
		n = wordCount
	}
	if half := wordCount / 2; n > half {
		n = half
	}
	if n < 0 {
		n = 0
	}
	return n
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
