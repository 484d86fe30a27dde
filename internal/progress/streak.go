package progress

import (
	"time"

	"github.com/ddrozdov/flashdrill/internal/model"
)

// streakRiskWindow is how long after the last practice the streak is
// considered at risk. It warns ahead of the 24-hour break boundary.
const streakRiskWindow = 22 * time.Hour

// StreakChange reports what UpdateStreak did.
type StreakChange struct {
	Increased bool
	Broken    bool
}

// UpdateStreak applies one day of practice to the streak state. Same
// calendar day is a no-op, the next day increments, a longer gap resets the
// streak to 1 and flags it broken if there was one. BestStreak is a
// monotonic max.
func UpdateStreak(s model.StreakData, practice time.Time) (model.StreakData, StreakChange) {
	var change StreakChange

	if s.LastPracticeDate.IsZero() {
		s.CurrentStreak = 1
		s.LastPracticeDate = practice
		s.StreakActive = true
		change.Increased = true
	} else {
		switch days := calendarDaysBetween(s.LastPracticeDate, practice); {
		case days <= 0:
			// Same day (or clock skew backwards): nothing changes.
			return s, change
		case days == 1:
			s.CurrentStreak++
			change.Increased = true
		default:
			change.Broken = s.CurrentStreak > 0
			s.CurrentStreak = 1
		}
		s.LastPracticeDate = practice
		s.StreakActive = true
	}

	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
	return s, change
}

// IsStreakAtRisk reports whether more than 22 hours have passed since the
// last practice of an active streak.
func IsStreakAtRisk(s model.StreakData, now time.Time) bool {
	if s.CurrentStreak == 0 || s.LastPracticeDate.IsZero() {
		return false
	}
	return now.Sub(s.LastPracticeDate) > streakRiskWindow
}

// calendarDaysBetween counts calendar-day boundaries crossed between two
// instants, in the earlier time's location.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
