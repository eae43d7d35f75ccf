package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-simulator/internal/types"
)

// Path IDs for the two synthetic candidates.
const (
	PathIDCurrentTrack   = "current-track"
	PathIDIndustrySwitch = "industry-switch"
)

// industrySwitchPenalty is the fractional salary cut assumed when switching
// into an unfamiliar industry.
const industrySwitchPenalty = 0.10

// preferredAlternateIndustries is the rotation used to synthesize an
// industry-switch candidate when the request names no target roles.
var preferredAlternateIndustries = []string{"Technology", "Healthcare", "Finance"}

// RunInput holds the already-validated, already-enriched inputs for one
// simulation run. Role enrichment (user profile, job lookups) happens before
// the engine is invoked; the engine itself performs no I/O.
type RunInput struct {
	CurrentRole     types.Role
	TargetRoles     []types.Role
	TimeHorizon     int
	SuccessCriteria types.SuccessCriteria
	Seed            int64
}

// candidate is one entry of the path set assembled by Run.
type candidate struct {
	id           string
	name         string
	startingRole types.Role
	targetRole   *types.Role
}

// Run executes a complete simulation: it assembles the candidate path set,
// builds and scores every path, and selects a recommendation.
//
// Candidate paths are built concurrently; each path derives its own random
// source from the run seed and its position in the set, so scheduling order
// never affects the numbers and a fixed seed reproduces the run exactly.
func Run(input RunInput) (types.Simulation, error) {
	if input.CurrentRole.Title == "" {
		return types.Simulation{}, fmt.Errorf("current role title is required")
	}
	if input.CurrentRole.Salary <= 0 {
		return types.Simulation{}, fmt.Errorf("current role salary must be positive, got %v", input.CurrentRole.Salary)
	}
	if input.TimeHorizon < 1 || input.TimeHorizon > 30 {
		return types.Simulation{}, fmt.Errorf("time horizon must be between 1 and 30, got %d", input.TimeHorizon)
	}

	candidates := assembleCandidates(input.CurrentRole, input.TargetRoles)

	paths := make([]types.Path, len(candidates))
	var g errgroup.Group
	for i, cand := range candidates {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(input.Seed + int64(i)))
			paths[i] = buildPath(cand, input.TimeHorizon, input.SuccessCriteria, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.Simulation{}, fmt.Errorf("failed to build paths: %w", err)
	}

	return types.Simulation{
		CurrentRole:     input.CurrentRole,
		TargetRoles:     input.TargetRoles,
		TimeHorizon:     input.TimeHorizon,
		SuccessCriteria: input.SuccessCriteria,
		Paths:           paths,
		RecommendedPath: Recommend(paths),
		MarketFactors:   MarketFactorsFor(input.CurrentRole.Industry),
		Seed:            input.Seed,
		SimulationDate:  time.Now().UTC(),
	}, nil
}

// assembleCandidates builds the candidate path set: the current track, one
// path per target role, or a synthetic industry switch when no targets were
// supplied.
func assembleCandidates(currentRole types.Role, targetRoles []types.Role) []candidate {
	candidates := []candidate{{
		id:           PathIDCurrentTrack,
		name:         fmt.Sprintf("Current Track: %s", currentRole.Title),
		startingRole: currentRole,
	}}

	if len(targetRoles) == 0 {
		alternate := alternateIndustry(currentRole.Industry)
		switched := currentRole
		switched.Industry = alternate
		switched.Company = ""
		switched.Salary = currentRole.Salary * (1 - industrySwitchPenalty)
		candidates = append(candidates, candidate{
			id:           PathIDIndustrySwitch,
			name:         fmt.Sprintf("Industry Switch: %s", alternate),
			startingRole: switched,
		})
		return candidates
	}

	for i, target := range targetRoles {
		starting := currentRole
		if target.Title != "" {
			starting.Title = target.Title
		}
		if target.Company != "" {
			starting.Company = target.Company
		}
		if target.Salary > 0 {
			starting.Salary = target.Salary
		}
		if target.Industry != "" {
			starting.Industry = target.Industry
		}
		if target.Level != "" {
			starting.Level = target.Level
		}
		candidates = append(candidates, candidate{
			id:           fmt.Sprintf("target-%d", i+1),
			name:         fmt.Sprintf("Move to %s", starting.Title),
			startingRole: starting,
			targetRole:   &target,
		})
	}
	return candidates
}

// alternateIndustry picks a different industry for the synthetic switch path.
func alternateIndustry(current string) string {
	for _, industry := range preferredAlternateIndustries {
		if industry != current {
			return industry
		}
	}
	return preferredAlternateIndustries[0]
}

// buildPath runs the scenario builder and all scorers for one candidate.
// Market factors are looked up per candidate so an industry-switch path is
// scored against its own industry's climate.
func buildPath(cand candidate, timeHorizon int, criteria types.SuccessCriteria, rng *rand.Rand) types.Path {
	factors := MarketFactorsFor(cand.startingRole.Industry)
	scenarios, expectedEarnings := BuildScenarios(cand.startingRole, cand.targetRole, timeHorizon, factors, rng)
	characteristics := ComputeCharacteristics(scenarios, factors)

	return types.Path{
		PathID:                   cand.id,
		PathName:                 cand.name,
		StartingRole:             cand.startingRole.Title,
		Scenarios:                scenarios,
		ExpectedLifetimeEarnings: expectedEarnings,
		AverageSalaryGrowthRate:  averageSalaryGrowthRate(scenarios.Realistic.Milestones),
		YearsToTargetRole:        scenarios.Realistic.YearsToGoal,
		RiskScore:                ScoreRisk(scenarios, factors),
		SuccessScore:             ScoreSuccess(scenarios, characteristics, criteria),
		PathCharacteristics:      characteristics,
	}
}

// averageSalaryGrowthRate computes the compound annual growth rate from the
// first to the last milestone salary, as a percentage to one decimal place.
func averageSalaryGrowthRate(milestones []types.CareerMilestone) float64 {
	if len(milestones) < 2 {
		return 0
	}
	first := milestones[0].Salary
	last := milestones[len(milestones)-1].Salary
	if first <= 0 {
		return 0
	}
	years := float64(len(milestones) - 1)
	rate := (math.Pow(last/first, 1/years) - 1) * 100
	return math.Round(rate*10) / 10
}
