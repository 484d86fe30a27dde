package exercise

import (
	"strings"
	"testing"

	"github.com/ddrozdov/flashdrill/internal/model"
)

const sampleText = "Do you have a food allergy?"

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	return New(append([]Option{WithSeed(42)}, opts...)...)
}

func TestFillBlankStructure(t *testing.T) {
	g := newTestGenerator(t)

	for run := 0; run < 25; run++ {
		ex := g.FillBlank(sampleText, 3)

		if ex.Stage != 3 {
			t.Fatalf("stage = %d, want 3", ex.Stage)
		}
		if ex.OriginalText != sampleText {
			t.Fatalf("original text changed: %q", ex.OriginalText)
		}
		if len(ex.Blanks) == 0 {
			t.Fatal("no blanks generated")
		}
		if !strings.Contains(ex.DisplayText, model.BlankMarker) {
			t.Fatalf("display text missing blank marker: %q", ex.DisplayText)
		}

		for _, b := range ex.Blanks {
			if len(b.Choices) != 4 {
				t.Fatalf("blank %d has %d choices, want 4", b.Index, len(b.Choices))
			}
			correctCount := 0
			seen := make(map[string]bool)
			for _, c := range b.Choices {
				key := strings.ToLower(c)
				if seen[key] {
					t.Fatalf("blank %d has duplicate choice %q", b.Index, c)
				}
				seen[key] = true
				if strings.EqualFold(c, b.CorrectAnswer) {
					correctCount++
				}
			}
			if correctCount != 1 {
				t.Fatalf("blank %d contains correct answer %d times, want once",
					b.Index, correctCount)
			}
			if ex.CorrectAnswers[b.Index] != b.CorrectAnswer {
				t.Fatalf("correct answers map disagrees with blank %d", b.Index)
			}
		}
	}
}

func TestFillBlankIndicesInOrder(t *testing.T) {
	g := newTestGenerator(t)
	ex := g.FillBlank(sampleText, 5)

	words := strings.Fields(ex.DisplayText)
	blankIdx := 0
	orig := strings.Fields(sampleText)
	for i, w := range words {
		if w == model.BlankMarker {
			if got := ex.Blanks[blankIdx].CorrectAnswer; got != orig[i] {
				t.Errorf("blank %d answer = %q, want word at position %d (%q)",
					blankIdx, got, i, orig[i])
			}
			blankIdx++
		}
	}
	if blankIdx != len(ex.Blanks) {
		t.Errorf("display has %d blanks, exercise has %d", blankIdx, len(ex.Blanks))
	}
}

func TestFillBlankStageProgression(t *testing.T) {
	// Higher stages must never blank fewer words than the floor guarantees.
	g := newTestGenerator(t)
	text := "one two three four five six seven eight nine ten"

	prevMin := 0
	for stage := 1; stage <= 9; stage++ {
		minSeen := len(strings.Fields(text)) + 1
		for run := 0; run < 20; run++ {
			ex := g.FillBlank(text, stage)
			if n := len(ex.Blanks); n < minSeen {
				minSeen = n
			}
		}
		if minSeen < prevMin {
			t.Errorf("stage %d blanked as few as %d words, below stage %d floor %d",
				stage, minSeen, stage-1, prevMin)
		}
		prevMin = minSeen
	}
}

func TestFillBlankDegenerateInput(t *testing.T) {
	g := newTestGenerator(t)

	for _, text := range []string{"", "   "} {
		ex := g.FillBlank(text, 3)
		if len(ex.Blanks) != 0 {
			t.Errorf("expected no blanks for %q, got %d", text, len(ex.Blanks))
		}
		if ex.DisplayText != text {
			t.Errorf("display text %q, want identity %q", ex.DisplayText, text)
		}
	}
}

func TestFillBlankStageClamped(t *testing.T) {
	g := newTestGenerator(t)

	if got := g.FillBlank(sampleText, 0).Stage; got != 1 {
		t.Errorf("stage 0 clamped to %d, want 1", got)
	}
	if got := g.FillBlank(sampleText, 42).Stage; got != 9 {
		t.Errorf("stage 42 clamped to %d, want 9", got)
	}
}

func TestFillBlankUsesVocabulary(t *testing.T) {
	vocab := []string{"hazelnut", "peanut", "shellfish", "gluten", "lactose", "pollen"}
	g := newTestGenerator(t, WithVocabulary(vocab))

	ex := g.FillBlank(sampleText, 2)
	inVocab := func(w string) bool {
		for _, v := range vocab {
			if v == w {
				return true
			}
		}
		return false
	}
	for _, b := range ex.Blanks {
		for _, c := range b.Choices {
			if strings.EqualFold(c, b.CorrectAnswer) {
				continue
			}
			if !inVocab(c) {
				t.Errorf("decoy %q not drawn from the module vocabulary", c)
			}
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		mode model.Mode
		want model.Mode
	}{
		{model.ModeFillBlank, model.ModeFillBlank},
		{model.ModeWordCloud, model.ModeWordCloud},
		{model.ModeVerbal, model.ModeVerbal},
	}
	for _, tt := range tests {
		ex, err := g.Generate(tt.mode, sampleText, 2)
		if err != nil {
			t.Fatalf("Generate(%s): %v", tt.mode, err)
		}
		if ex.Mode() != tt.want {
			t.Errorf("Generate(%s).Mode() = %s", tt.mode, ex.Mode())
		}
	}

	if _, err := g.Generate("karaoke", sampleText, 2); err == nil {
		t.Error("expected error for unknown mode")
	}
}
