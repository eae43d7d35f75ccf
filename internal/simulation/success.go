package simulation

import (
	"math"
	"strings"

	"github.com/jonathan/career-simulator/internal/types"
)

// salaryComponentWeight is the fixed weight of the target-salary component;
// the remaining components use the caller-supplied criteria weights as given
// (deliberately not normalized, see SuccessCriteria).
const salaryComponentWeight = 0.4

// ScoreSuccess measures how well a built path satisfies the user's success
// criteria, as an integer in [0,100]. Components are only included when the
// corresponding criteria field is present.
func ScoreSuccess(scenarios types.PathScenarios, characteristics types.PathCharacteristics, criteria types.SuccessCriteria) int {
	score := 0.0

	if criteria.TargetSalary > 0 {
		salaryScore := math.Min(100, scenarios.Realistic.FinalSalary/criteria.TargetSalary*100)
		score += salaryScore * salaryComponentWeight
	}

	if criteria.WorkLifeBalanceWeight > 0 {
		score += characteristics.WorkLifeBalance * criteria.WorkLifeBalanceWeight
	}

	if criteria.LearningOpportunitiesWeight > 0 {
		score += characteristics.LearningCurve * criteria.LearningOpportunitiesWeight
	}

	if criteria.ImpactWeight > 0 {
		score += impactScore(scenarios.Realistic.FinalTitle) * criteria.ImpactWeight
	}

	return clampScore(int(math.Round(score)))
}

// impactScore derives an organizational-impact figure from title keywords.
func impactScore(finalTitle string) float64 {
	title := strings.ToLower(finalTitle)
	switch {
	case strings.Contains(title, "director"), strings.Contains(title, "vp"), strings.Contains(title, "executive"):
		return 95
	case strings.Contains(title, "principal"), strings.Contains(title, "distinguished"):
		return 85
	case strings.Contains(title, "lead"), strings.Contains(title, "staff"):
		return 70
	case strings.Contains(title, "senior"):
		return 60
	default:
		return 45
	}
}

// clampScore clamps an integer score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
