package simulation

import (
	"math"
	"strings"

	"github.com/jonathan/career-simulator/internal/types"
)

// marketDemandScore maps a demand trend to a 0-100 demand score.
var marketDemandScore = map[types.DemandTrend]float64{
	types.DemandDeclining: 30,
	types.DemandStable:    60,
	types.DemandGrowing:   80,
	types.DemandExplosive: 95,
}

// ComputeCharacteristics derives the qualitative 0-100 scores for a built path.
func ComputeCharacteristics(scenarios types.PathScenarios, factors types.MarketFactors) types.PathCharacteristics {
	finalSalaries := []float64{
		scenarios.Optimistic.FinalSalary,
		scenarios.Realistic.FinalSalary,
		scenarios.Pessimistic.FinalSalary,
	}

	stability := math.Max(0, 100-populationVariance(finalSalaries)/1000)

	growth := (scenarios.Optimistic.FinalSalary - scenarios.Pessimistic.FinalSalary) /
		scenarios.Pessimistic.FinalSalary * 100
	growth = math.Min(100, growth)

	learning := math.Min(100, float64(countPromotions(scenarios.Realistic.KeyDecisionPoints))*20)

	workLife := math.Max(30, 100-growth)

	demand, ok := marketDemandScore[factors.DemandTrend]
	if !ok {
		demand = 60
	}

	return types.PathCharacteristics{
		StabilityScore:  stability,
		GrowthPotential: growth,
		LearningCurve:   learning,
		WorkLifeBalance: workLife,
		MarketDemand:    demand,
	}
}

// countPromotions counts decision points logged for promotions.
func countPromotions(points []types.DecisionPoint) int {
	count := 0
	for _, point := range points {
		if strings.Contains(point.Decision, "Promotion") {
			count++
		}
	}
	return count
}

// populationVariance computes the population (not sample) variance.
func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return variance / float64(len(values))
}
