package i18n

import (
	"context"
	"testing"
)

func initLang(t *testing.T, lang string) context.Context {
	t.Helper()
	if err := Init(lang); err != nil {
		t.Fatalf("Init(%q): %v", lang, err)
	}
	loc := NewLocalizer(lang)
	return WithLocalizer(context.Background(), loc)
}

func TestTranslateEnglish(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "AppTitle")
	if got != "Flashdrill" {
		t.Errorf("T(AppTitle) = %q, want 'Flashdrill'", got)
	}

	got = T(ctx, "StartPractice")
	if got != "Start Practice" {
		t.Errorf("T(StartPractice) = %q, want 'Start Practice'", got)
	}
}

func TestTranslateRussian(t *testing.T) {
	ctx := initLang(t, "ru")

	got := T(ctx, "AppTitle")
	if got != "Флэшдрилл" {
		t.Errorf("T(AppTitle) = %q, want 'Флэшдрилл'", got)
	}

	got = T(ctx, "CorrectAnswer")
	if got != "Верно!" {
		t.Errorf("T(CorrectAnswer) = %q, want 'Верно!'", got)
	}
}

func TestPluralTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got1 := Tp(ctx, "PointsEarned", 1)
	if got1 != "You earned 1 point." {
		t.Errorf("Tp(PointsEarned, 1) = %q, want 'You earned 1 point.'", got1)
	}

	got375 := Tp(ctx, "PointsEarned", 375)
	if got375 != "You earned 375 points." {
		t.Errorf("Tp(PointsEarned, 375) = %q, want 'You earned 375 points.'", got375)
	}
}

func TestRussianPlurals(t *testing.T) {
	ctx := initLang(t, "ru")

	cases := []struct {
		count int
		want  string
	}{
		{1, "Вы заработали 1 очко."},
		{3, "Вы заработали 3 очка."},
		{50, "Вы заработали 50 очков."},
	}
	for _, tc := range cases {
		if got := Tp(ctx, "PointsEarned", tc.count); got != tc.want {
			t.Errorf("Tp(PointsEarned, %d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestTemplateDataTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got := Td(ctx, "StageN", map[string]any{"Stage": 4})
	if got != "Stage #4" {
		t.Errorf("Td(StageN, Stage=4) = %q, want 'Stage #4'", got)
	}
}

func TestMissingKey(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "NonExistentKey")
	if got != "NonExistentKey" {
		t.Errorf("T(NonExistentKey) = %q, want 'NonExistentKey'", got)
	}
}
