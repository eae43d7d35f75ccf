package simulation

import (
	"math/rand"

	"github.com/jonathan/career-simulator/internal/types"
)

// Blend weights for collapsing the three scenarios into one expected figure.
const (
	realisticWeight   = 0.6
	optimisticWeight  = 0.25
	pessimisticWeight = 0.15
)

// BuildScenarios runs the scenario generator for all three scenario types and
// blends the outcomes into a single expected-lifetime-earnings figure. The
// scenarios share one random source and always run in the same order, so a
// seeded rng reproduces the whole path exactly.
func BuildScenarios(startingRole types.Role, targetRole *types.Role, timeHorizon int, factors types.MarketFactors, rng *rand.Rand) (types.PathScenarios, float64) {
	scenarios := types.PathScenarios{
		Optimistic:  GenerateScenario(startingRole, targetRole, timeHorizon, factors, types.ScenarioOptimistic, rng),
		Realistic:   GenerateScenario(startingRole, targetRole, timeHorizon, factors, types.ScenarioRealistic, rng),
		Pessimistic: GenerateScenario(startingRole, targetRole, timeHorizon, factors, types.ScenarioPessimistic, rng),
	}

	expected := ExpectedLifetimeEarnings(scenarios)
	return scenarios, expected
}

// ExpectedLifetimeEarnings blends the three scenarios' total earnings with the
// fixed 0.6/0.25/0.15 weights.
func ExpectedLifetimeEarnings(scenarios types.PathScenarios) float64 {
	return realisticWeight*scenarios.Realistic.TotalEarnings +
		optimisticWeight*scenarios.Optimistic.TotalEarnings +
		pessimisticWeight*scenarios.Pessimistic.TotalEarnings
}
