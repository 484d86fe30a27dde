package progress

import (
	"testing"
	"time"

	"github.com/ddrozdov/flashdrill/internal/model"
)

var baseDay = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func TestUpdateStreakNextDay(t *testing.T) {
	s := model.StreakData{
		CurrentStreak:    4,
		BestStreak:       4,
		LastPracticeDate: baseDay,
	}
	got, change := UpdateStreak(s, baseDay.AddDate(0, 0, 1))

	if got.CurrentStreak != 5 {
		t.Errorf("current = %d, want 5", got.CurrentStreak)
	}
	if got.BestStreak != 5 {
		t.Errorf("best = %d, want 5", got.BestStreak)
	}
	if !change.Increased || change.Broken {
		t.Errorf("change = %+v, want increased only", change)
	}
}

func TestUpdateStreakSameDay(t *testing.T) {
	s := model.StreakData{CurrentStreak: 4, BestStreak: 6, LastPracticeDate: baseDay}
	got, change := UpdateStreak(s, baseDay.Add(7*time.Hour))

	if got.CurrentStreak != 4 || got.BestStreak != 6 {
		t.Errorf("same day mutated streak: %+v", got)
	}
	if change.Increased || change.Broken {
		t.Errorf("change = %+v, want no-op", change)
	}
	if !got.LastPracticeDate.Equal(baseDay) {
		t.Error("same day should not move the practice date")
	}
}

func TestUpdateStreakGapResets(t *testing.T) {
	s := model.StreakData{CurrentStreak: 9, BestStreak: 9, LastPracticeDate: baseDay}
	got, change := UpdateStreak(s, baseDay.AddDate(0, 0, 3))

	if got.CurrentStreak != 1 {
		t.Errorf("current = %d, want reset to 1", got.CurrentStreak)
	}
	if got.BestStreak != 9 {
		t.Errorf("best = %d, want preserved 9", got.BestStreak)
	}
	if !change.Broken {
		t.Error("expected broken flag after a 3-day gap")
	}
	if change.Increased {
		t.Error("reset should not report an increase")
	}
}

func TestUpdateStreakGapWithoutPriorStreak(t *testing.T) {
	s := model.StreakData{CurrentStreak: 0, LastPracticeDate: baseDay}
	_, change := UpdateStreak(s, baseDay.AddDate(0, 0, 5))
	if change.Broken {
		t.Error("zero streak cannot break")
	}
}

func TestUpdateStreakFirstPractice(t *testing.T) {
	got, change := UpdateStreak(model.StreakData{}, baseDay)
	if got.CurrentStreak != 1 || got.BestStreak != 1 {
		t.Errorf("first practice streak = %+v, want 1/1", got)
	}
	if !change.Increased {
		t.Error("first practice should report an increase")
	}
	if !got.StreakActive {
		t.Error("streak should be active after practice")
	}
}

func TestUpdateStreakCalendarBoundary(t *testing.T) {
	// 23:50 to 00:10 is two hours short of a day but crosses midnight:
	// that's one calendar day, so the streak increments.
	late := time.Date(2025, 3, 10, 23, 50, 0, 0, time.UTC)
	s := model.StreakData{CurrentStreak: 2, BestStreak: 2, LastPracticeDate: late}
	got, change := UpdateStreak(s, late.Add(20*time.Minute))

	if got.CurrentStreak != 3 || !change.Increased {
		t.Errorf("midnight crossing: streak = %d, change = %+v", got.CurrentStreak, change)
	}
}

func TestIsStreakAtRisk(t *testing.T) {
	s := model.StreakData{CurrentStreak: 5, LastPracticeDate: baseDay}

	if IsStreakAtRisk(s, baseDay.Add(21*time.Hour)) {
		t.Error("21 hours should not be at risk")
	}
	if !IsStreakAtRisk(s, baseDay.Add(23*time.Hour)) {
		t.Error("23 hours should be at risk")
	}
	if IsStreakAtRisk(model.StreakData{}, baseDay) {
		t.Error("empty streak cannot be at risk")
	}
}
