package progress

import "github.com/ddrozdov/flashdrill/internal/model"

// badgeRule is one row of the badge threshold table.
type badgeRule struct {
	id          string
	category    string
	requirement int
	metric      func(model.UserStats) int
}

var badgeRules = []badgeRule{
	{"streak-3", "streak", 3, func(s model.UserStats) int { return s.BestStreak }},
	{"streak-7", "streak", 7, func(s model.UserStats) int { return s.BestStreak }},
	{"streak-30", "streak", 30, func(s model.UserStats) int { return s.BestStreak }},
	{"points-1k", "points", 1000, func(s model.UserStats) int { return s.TotalPoints }},
	{"points-5k", "points", 5000, func(s model.UserStats) int { return s.TotalPoints }},
	{"points-25k", "points", 25000, func(s model.UserStats) int { return s.TotalPoints }},
	{"stages-10", "stages", 10, func(s model.UserStats) int { return s.StagesCompleted }},
	{"stages-50", "stages", 50, func(s model.UserStats) int { return s.StagesCompleted }},
	{"stages-200", "stages", 200, func(s model.UserStats) int { return s.StagesCompleted }},
	{"perfect-5", "accuracy", 5, func(s model.UserStats) int { return s.PerfectScores }},
	{"perfect-25", "accuracy", 25, func(s model.UserStats) int { return s.PerfectScores }},
	{"modules-1", "modules", 1, func(s model.UserStats) int { return s.ModulesCompleted }},
	{"modules-10", "modules", 10, func(s model.UserStats) int { return s.ModulesCompleted }},
	{"verbal-10", "speaking", 10, func(s model.UserStats) int { return s.VerbalCompleted }},
	{"verbal-50", "speaking", 50, func(s model.UserStats) int { return s.VerbalCompleted }},
}

// CalculateBadgeProgress derives progress toward one badge from aggregate
// user stats. The second return is false for an unknown badge ID. Earned is
// a derived boolean only; award persistence lives outside the engine.
func CalculateBadgeProgress(badgeID string, stats model.UserStats) (model.BadgeProgress, bool) {
	for _, rule := range badgeRules {
		if rule.id == badgeID {
			return badgeFromRule(rule, stats), true
		}
	}
	return model.BadgeProgress{}, false
}

// AllBadgeProgress derives progress for every known badge.
func AllBadgeProgress(stats model.UserStats) []model.BadgeProgress {
	out := make([]model.BadgeProgress, len(badgeRules))
	for i, rule := range badgeRules {
		out[i] = badgeFromRule(rule, stats)
	}
	return out
}

func badgeFromRule(rule badgeRule, stats model.UserStats) model.BadgeProgress {
	progress := rule.metric(stats)
	return model.BadgeProgress{
		BadgeID:     rule.id,
		Category:    rule.category,
		Progress:    progress,
		Requirement: rule.requirement,
		Earned:      progress >= rule.requirement,
	}
}
