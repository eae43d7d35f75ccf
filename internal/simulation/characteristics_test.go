package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-simulator/internal/types"
)

func scenariosWithFinalSalaries(optimistic, realistic, pessimistic float64) types.PathScenarios {
	return types.PathScenarios{
		Optimistic:  types.ScenarioOutcome{FinalSalary: optimistic},
		Realistic:   types.ScenarioOutcome{FinalSalary: realistic},
		Pessimistic: types.ScenarioOutcome{FinalSalary: pessimistic},
	}
}

func TestComputeCharacteristics_StabilityDecreasesWithVariance(t *testing.T) {
	tight := ComputeCharacteristics(scenariosWithFinalSalaries(100100, 100000, 99900), stableFactors())
	wide := ComputeCharacteristics(scenariosWithFinalSalaries(100300, 100000, 99700), stableFactors())
	wider := ComputeCharacteristics(scenariosWithFinalSalaries(100500, 100000, 99500), stableFactors())

	assert.Greater(t, tight.StabilityScore, wide.StabilityScore)
	assert.GreaterOrEqual(t, wide.StabilityScore, wider.StabilityScore)
	assert.GreaterOrEqual(t, tight.StabilityScore, 0.0)
}

func TestComputeCharacteristics_StabilityFloorsAtZero(t *testing.T) {
	characteristics := ComputeCharacteristics(scenariosWithFinalSalaries(900000, 300000, 100000), stableFactors())
	assert.Equal(t, 0.0, characteristics.StabilityScore)
}

func TestComputeCharacteristics_GrowthPotential(t *testing.T) {
	characteristics := ComputeCharacteristics(scenariosWithFinalSalaries(150000, 120000, 100000), stableFactors())
	assert.InDelta(t, 50.0, characteristics.GrowthPotential, 1e-9)
}

func TestComputeCharacteristics_GrowthPotentialCapsAt100(t *testing.T) {
	characteristics := ComputeCharacteristics(scenariosWithFinalSalaries(500000, 200000, 100000), stableFactors())
	assert.Equal(t, 100.0, characteristics.GrowthPotential)
}

func TestComputeCharacteristics_LearningCurveCountsPromotions(t *testing.T) {
	scenarios := scenariosWithFinalSalaries(120000, 110000, 100000)
	scenarios.Realistic.KeyDecisionPoints = []types.DecisionPoint{
		{Year: 2, Decision: "Promotion to Senior Software Engineer"},
		{Year: 3, Decision: "Job switch to a competing offer"},
		{Year: 6, Decision: "Promotion to Lead Software Engineer"},
	}
	characteristics := ComputeCharacteristics(scenarios, stableFactors())
	assert.Equal(t, 40.0, characteristics.LearningCurve)
}

func TestComputeCharacteristics_LearningCurveCapsAt100(t *testing.T) {
	scenarios := scenariosWithFinalSalaries(120000, 110000, 100000)
	for year := 1; year <= 7; year++ {
		scenarios.Realistic.KeyDecisionPoints = append(scenarios.Realistic.KeyDecisionPoints,
			types.DecisionPoint{Year: year, Decision: "Promotion to somewhere"})
	}
	characteristics := ComputeCharacteristics(scenarios, stableFactors())
	assert.Equal(t, 100.0, characteristics.LearningCurve)
}

func TestComputeCharacteristics_WorkLifeBalanceFloorsAt30(t *testing.T) {
	// Growth potential capped at 100 would push work-life balance to 0; the
	// floor keeps it at 30.
	characteristics := ComputeCharacteristics(scenariosWithFinalSalaries(500000, 200000, 100000), stableFactors())
	assert.Equal(t, 30.0, characteristics.WorkLifeBalance)
}

func TestComputeCharacteristics_MarketDemandByTrend(t *testing.T) {
	tests := []struct {
		trend types.DemandTrend
		want  float64
	}{
		{types.DemandDeclining, 30},
		{types.DemandStable, 60},
		{types.DemandGrowing, 80},
		{types.DemandExplosive, 95},
		{types.DemandTrend("unheard-of"), 60},
	}
	for _, tt := range tests {
		factors := stableFactors()
		factors.DemandTrend = tt.trend
		characteristics := ComputeCharacteristics(scenariosWithFinalSalaries(110000, 105000, 100000), factors)
		assert.Equal(t, tt.want, characteristics.MarketDemand, "trend %s", tt.trend)
	}
}

func TestPopulationVariance(t *testing.T) {
	assert.Equal(t, 0.0, populationVariance(nil))
	assert.Equal(t, 0.0, populationVariance([]float64{5, 5, 5}))
	// Population variance of {2, 4, 6} is 8/3.
	assert.InDelta(t, 8.0/3.0, populationVariance([]float64{2, 4, 6}), 1e-12)
}
