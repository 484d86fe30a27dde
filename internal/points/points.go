// Package points converts graded completions into point rewards. Both
// formulas here are pure: they will happily compute a nonzero reward for a
// repeat attempt, so the caller must consult the progress ledger before
// awarding anything.
package points

import (
	"fmt"
	"math"

	"github.com/ddrozdov/flashdrill/internal/model"
)

const (
	basePerStage      = 50
	firstPassPerStage = 25
	speedBonusPoints  = 50
	onTimeBonusPoints = 100
	// secondsPerStage is the speed-bonus expectation: two minutes per stage.
	secondsPerStage = 120
)

// Calculate computes the standard points breakdown for a completion.
func Calculate(c model.StageCompletion) model.PointsCalculation {
	calc := model.PointsCalculation{
		BasePoints: c.Stage * basePerStage,
	}
	calc.Breakdown = append(calc.Breakdown,
		fmt.Sprintf("Stage %d base: %d points", c.Stage, calc.BasePoints))

	if c.IsFirstPass {
		calc.FirstPassBonus = c.Stage * firstPassPerStage
		calc.Breakdown = append(calc.Breakdown,
			fmt.Sprintf("First pass bonus: +%d", calc.FirstPassBonus))
	}
	if c.TimeSpent < c.Stage*secondsPerStage {
		calc.SpeedBonus = speedBonusPoints
		calc.Breakdown = append(calc.Breakdown,
			fmt.Sprintf("Speed bonus: +%d", calc.SpeedBonus))
	}
	if c.IsOnTime {
		calc.OnTimeBonus = onTimeBonusPoints
		calc.Breakdown = append(calc.Breakdown,
			fmt.Sprintf("On-time bonus: +%d", calc.OnTimeBonus))
	}

	calc.TotalPoints = calc.BasePoints + calc.FirstPassBonus + calc.SpeedBonus + calc.OnTimeBonus
	return calc
}

// Multiplier returns the accuracy-tiered payout multiplier used by the
// check-answer flows. Below the pass threshold there is no payout at all.
func Multiplier(accuracy float64) float64 {
	switch {
	case accuracy >= 100:
		return 1.0
	case accuracy >= 95:
		return 0.9
	case accuracy >= 85:
		return 0.8
	case accuracy >= 70:
		return 0.7
	}
	return 0
}

// CalculateScaled is the accuracy-scaled variant of Calculate: base points
// are multiplied by the accuracy tier, and a completion below the pass
// threshold earns nothing.
func CalculateScaled(c model.StageCompletion) model.PointsCalculation {
	mult := Multiplier(c.Accuracy)
	if mult == 0 {
		return model.PointsCalculation{
			Breakdown: []string{fmt.Sprintf("Accuracy %.0f%% below pass threshold: no points", c.Accuracy)},
		}
	}

	calc := Calculate(c)
	scaled := int(math.Round(float64(calc.BasePoints) * mult))
	calc.Breakdown[0] = fmt.Sprintf("Stage %d base: %d points (%.0f%% accuracy tier x%.1f)",
		c.Stage, scaled, c.Accuracy, mult)
	calc.BasePoints = scaled
	calc.TotalPoints = calc.BasePoints + calc.FirstPassBonus + calc.SpeedBonus + calc.OnTimeBonus
	return calc
}
