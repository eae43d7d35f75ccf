package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-simulator/internal/types"
)

func TestRecommend_PicksHighestSuccessScore(t *testing.T) {
	paths := []types.Path{
		{PathID: "current-track", PathName: "Current Track: Engineer", SuccessScore: 55},
		{PathID: "target-1", PathName: "Move to Staff Engineer", SuccessScore: 72},
		{PathID: "target-2", PathName: "Move to Manager", SuccessScore: 61},
	}
	recommended := Recommend(paths)
	assert.Equal(t, "target-1", recommended.PathID)
}

func TestRecommend_TieGoesToFirstEncountered(t *testing.T) {
	paths := []types.Path{
		{PathID: "current-track", SuccessScore: 70},
		{PathID: "target-1", SuccessScore: 70},
	}
	assert.Equal(t, "current-track", Recommend(paths).PathID)
}

func TestRecommend_PathIDAlwaysFromInput(t *testing.T) {
	paths := []types.Path{
		{PathID: "a", SuccessScore: 10},
		{PathID: "b", SuccessScore: 90},
		{PathID: "c", SuccessScore: 40},
	}
	recommended := Recommend(paths)
	ids := map[string]bool{"a": true, "b": true, "c": true}
	assert.True(t, ids[recommended.PathID])
}

func TestRecommend_ReasoningMentionsApplicableObservations(t *testing.T) {
	paths := []types.Path{
		{
			PathID:                   "target-1",
			PathName:                 "Move to Staff Engineer",
			SuccessScore:             85,
			RiskScore:                40,
			ExpectedLifetimeEarnings: 2500000,
			PathCharacteristics:      types.PathCharacteristics{GrowthPotential: 80},
		},
		{PathID: "current-track", SuccessScore: 50, ExpectedLifetimeEarnings: 2000000},
	}
	recommended := Recommend(paths)
	assert.Contains(t, recommended.Reasoning, "85/100")
	assert.Contains(t, recommended.Reasoning, "$2.5M")
	assert.Contains(t, recommended.Reasoning, "lower risk")
	assert.Contains(t, recommended.Reasoning, "strong growth potential")
	assert.Contains(t, recommended.Reasoning, "Move to Staff Engineer")
}

func TestRecommend_FallbackReasoningWhenNothingStandsOut(t *testing.T) {
	paths := []types.Path{
		{PathID: "current-track", PathName: "Current Track: Engineer", SuccessScore: 40, RiskScore: 70, ExpectedLifetimeEarnings: 1000000},
		{PathID: "target-1", SuccessScore: 30, RiskScore: 60, ExpectedLifetimeEarnings: 2000000},
	}
	recommended := Recommend(paths)
	assert.Contains(t, recommended.Reasoning, "balanced trade-off")
}

func TestRecommend_ConfidenceFormulaAndCap(t *testing.T) {
	paths := []types.Path{{
		PathID:       "current-track",
		SuccessScore: 60,
		RiskScore:    40,
		PathCharacteristics: types.PathCharacteristics{
			StabilityScore: 80,
			MarketDemand:   60,
		},
	}}
	recommended := Recommend(paths)
	// 0.5 + 0.8*0.2 + 0.6*0.2 + 0.6*0.1 = 0.84
	assert.InDelta(t, 0.84, recommended.Confidence, 1e-9)

	paths[0].RiskScore = 0
	paths[0].PathCharacteristics.StabilityScore = 100
	paths[0].PathCharacteristics.MarketDemand = 95
	recommended = Recommend(paths)
	assert.LessOrEqual(t, recommended.Confidence, 1.0)
}
