package simulation

import (
	"math"

	"github.com/jonathan/career-simulator/internal/types"
)

// Market-risk additions.
const (
	baseRisk               = 50.0
	maxVariabilityRisk     = 30.0
	automationRiskAddition = 15.0
	decliningDemandRisk    = 20.0
	recessionRisk          = 10.0
	aggressivePromotionRisk = 10.0
)

// ScoreRisk measures the volatility and downside exposure of a built path,
// as an integer in [0,100]. Higher means riskier.
func ScoreRisk(scenarios types.PathScenarios, factors types.MarketFactors) int {
	risk := baseRisk

	// Spread between the best and worst case, relative to the realistic outcome.
	variability := (scenarios.Optimistic.FinalSalary - scenarios.Pessimistic.FinalSalary) /
		scenarios.Realistic.FinalSalary * 50
	risk += math.Min(maxVariabilityRisk, variability)

	if factors.AutomationRisk > 0.5 {
		risk += automationRiskAddition
	}
	if factors.DemandTrend == types.DemandDeclining {
		risk += decliningDemandRisk
	}
	if factors.EconomicCondition == types.ConditionRecession {
		risk += recessionRisk
	}

	// Many promotions in the realistic case means the projection leans on an
	// aggressive advancement assumption.
	if countPromotions(scenarios.Realistic.KeyDecisionPoints) > 3 {
		risk += aggressivePromotionRisk
	}

	return clampScore(int(math.Round(risk)))
}
