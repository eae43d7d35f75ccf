package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jonathan/career-simulator/internal/types"
)

// scenarioParams fixes the three multipliers that distinguish the scenario types.
type scenarioParams struct {
	// progressionSpeed scales how many years a promotion takes; below 1 means
	// promotions arrive sooner.
	progressionSpeed float64
	// salaryMultiplier scales every raise and bump.
	salaryMultiplier float64
	// probabilityWeight is stored on each milestone for downstream display.
	probabilityWeight float64
	// jobSwitchChance is the per-year Bernoulli probability of an external
	// offer, only evaluated from year 2 on.
	jobSwitchChance float64
}

var scenarioParamsByType = map[types.ScenarioType]scenarioParams{
	types.ScenarioOptimistic: {
		progressionSpeed:  0.8,
		salaryMultiplier:  1.15,
		probabilityWeight: 0.75,
		jobSwitchChance:   0.25,
	},
	types.ScenarioRealistic: {
		progressionSpeed:  1.0,
		salaryMultiplier:  1.0,
		probabilityWeight: 0.5,
		jobSwitchChance:   0.15,
	},
	types.ScenarioPessimistic: {
		progressionSpeed:  1.3,
		salaryMultiplier:  0.90,
		probabilityWeight: 0.25,
		jobSwitchChance:   0.08,
	},
}

// GenerateScenario simulates one year-by-year trajectory for a starting role.
//
// The order of operations inside the year loop is load-bearing for numeric
// reproducibility: earnings accumulate the pre-raise salary (a person is paid
// this year's salary before next year's raise applies), then the raise, the
// promotion check, the job-switch check, and the market adjustment run in that
// order. Do not reorder.
//
// The random source is injected; a fixed-seed rand.Rand makes the output fully
// deterministic. targetRole may be nil, in which case YearsToGoal stays nil.
func GenerateScenario(startingRole types.Role, targetRole *types.Role, timeHorizon int, factors types.MarketFactors, scenarioType types.ScenarioType, rng *rand.Rand) types.ScenarioOutcome {
	params := scenarioParamsByType[scenarioType]

	outcome := types.ScenarioOutcome{
		ScenarioType:      scenarioType,
		Milestones:        make([]types.CareerMilestone, 0, timeHorizon),
		KeyDecisionPoints: []types.DecisionPoint{},
	}

	title := startingRole.Title
	level := startingRole.Level
	if level == "" {
		level = types.LevelMid
	}
	salary := startingRole.Salary
	marketMultiplier := marketImpactMultiplier(factors)
	yearsAtLevel := 0

	for year := 1; year <= timeHorizon; year++ {
		// Paid at the start of the year, before this year's raise.
		outcome.TotalEarnings += salary

		// Annual raise: 3-5% base, scaled by the scenario.
		salary += salary * (0.03 + rng.Float64()*0.02) * params.salaryMultiplier

		// Promotion check against the level-progression model.
		progression := ProgressionFor(level)
		yearsNeeded := int(math.Round(float64(progression.TypicalYears) * params.progressionSpeed))
		if progression.Next != nil && yearsAtLevel >= yearsNeeded {
			salary *= 1 + progression.SalaryGrowth*params.salaryMultiplier
			level = *progression.Next
			title = TitleForLevel(title, level)
			yearsAtLevel = 0
			outcome.KeyDecisionPoints = append(outcome.KeyDecisionPoints, types.DecisionPoint{
				Year:            year,
				Decision:        fmt.Sprintf("Promotion to %s", title),
				Impact:          fmt.Sprintf("Salary increase of %.0f%%", progression.SalaryGrowth*params.salaryMultiplier*100),
				AlternativePath: "Remain at current level and deepen expertise",
			})
		}

		// External offers only become plausible after the first full year.
		if year >= 2 && rng.Float64() < params.jobSwitchChance {
			salary *= 1 + 0.15*params.salaryMultiplier
			outcome.KeyDecisionPoints = append(outcome.KeyDecisionPoints, types.DecisionPoint{
				Year:            year,
				Decision:        "Job switch to a competing offer",
				Impact:          fmt.Sprintf("Salary increase of %.0f%%", 0.15*params.salaryMultiplier*100),
				AlternativePath: "Stay with current employer",
			})
		}

		salary *= marketMultiplier

		outcome.Milestones = append(outcome.Milestones, types.CareerMilestone{
			Year:        year,
			Title:       title,
			Level:       level,
			Salary:      salary,
			Company:     startingRole.Company,
			Industry:    startingRole.Industry,
			Probability: params.probabilityWeight,
		})
		yearsAtLevel++
	}

	last := outcome.Milestones[len(outcome.Milestones)-1]
	outcome.FinalTitle = last.Title
	outcome.FinalSalary = last.Salary

	if targetRole != nil {
		outcome.YearsToGoal = yearsToGoal(outcome.Milestones, targetRole)
	}

	return outcome
}

// yearsToGoal returns the 1-indexed year of the first milestone that reaches
// the target's level or salary, or nil if the goal is never reached within the
// horizon. The salary criterion only applies when the target has a salary, and
// the level criterion only when the target has a level.
func yearsToGoal(milestones []types.CareerMilestone, target *types.Role) *int {
	for i, milestone := range milestones {
		if target.Level != "" && milestone.Level == target.Level {
			year := i + 1
			return &year
		}
		if target.Salary > 0 && milestone.Salary >= target.Salary {
			year := i + 1
			return &year
		}
	}
	return nil
}
