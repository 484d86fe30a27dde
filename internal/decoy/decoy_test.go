package decoy

import (
	"math/rand"
	"strings"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func assertDistinct(t *testing.T, correct, decoys []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, w := range correct {
		seen[strings.ToLower(w)] = true
	}
	for _, d := range decoys {
		key := strings.ToLower(d)
		if seen[key] {
			t.Errorf("decoy %q collides with the correct answer or another decoy", d)
		}
		seen[key] = true
	}
}

func TestForWordFromPool(t *testing.T) {
	pool := []string{"cat", "dog", "bird", "fish", "horse", "mouse"}
	decoys := ForWord("goat", pool, 3, testRand())
	if len(decoys) != 3 {
		t.Fatalf("expected 3 decoys, got %d", len(decoys))
	}
	assertDistinct(t, []string{"goat"}, decoys)
	for _, d := range decoys {
		found := false
		for _, p := range pool {
			if d == p {
				found = true
			}
		}
		if !found {
			t.Errorf("decoy %q not drawn from pool", d)
		}
	}
}

func TestExcludesCorrectCaseInsensitive(t *testing.T) {
	pool := []string{"Food", "FOOD", "food", "meal", "dish", "snack"}
	for i := 0; i < 20; i++ {
		decoys := ForWord("food", pool, 3, testRand())
		for _, d := range decoys {
			if strings.EqualFold(d, "food") {
				t.Fatalf("decoy %q equals the correct answer", d)
			}
		}
	}
}

func TestSyntheticFallback(t *testing.T) {
	// Pool far too small: fallback variants must still yield exactly n.
	decoys := ForWord("allergy", []string{"allergy"}, 5, testRand())
	if len(decoys) != 5 {
		t.Fatalf("expected 5 decoys, got %d", len(decoys))
	}
	assertDistinct(t, []string{"allergy"}, decoys)
}

func TestEmptyPoolAndEmptyWord(t *testing.T) {
	decoys := Generate(nil, nil, 4, testRand())
	if len(decoys) != 4 {
		t.Fatalf("expected 4 decoys, got %d", len(decoys))
	}
	assertDistinct(t, nil, decoys)
}

func TestLargeCountTerminates(t *testing.T) {
	decoys := ForWord("go", []string{"run"}, 50, testRand())
	if len(decoys) != 50 {
		t.Fatalf("expected 50 decoys, got %d", len(decoys))
	}
	assertDistinct(t, []string{"go"}, decoys)
}

func TestSimilarLengthPreferred(t *testing.T) {
	// Pool has exactly three similar-length words; with n=3 they must all be
	// chosen ahead of the distant-length ones.
	pool := []string{"pear", "plum", "kiwi", "pomegranate", "dragonfruit"}
	decoys := ForWord("fig", pool, 3, testRand())
	for _, d := range decoys {
		if len(d) > 6 {
			t.Errorf("decoy %q chosen ahead of similar-length candidates", d)
		}
	}
}

func TestGenerateExcludesWordSet(t *testing.T) {
	correct := []string{"do", "you", "have", "a", "food", "allergy"}
	decoys := Generate(correct, FillerWords(), 4, testRand())
	if len(decoys) != 4 {
		t.Fatalf("expected 4 decoys, got %d", len(decoys))
	}
	assertDistinct(t, correct, decoys)
}

func TestZeroCount(t *testing.T) {
	if got := ForWord("word", FillerWords(), 0, testRand()); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}
