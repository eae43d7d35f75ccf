package types

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioType identifies one of the three simulated variants of a path.
type ScenarioType string

// Scenario types.
const (
	ScenarioOptimistic  ScenarioType = "optimistic"
	ScenarioRealistic   ScenarioType = "realistic"
	ScenarioPessimistic ScenarioType = "pessimistic"
)

// CareerMilestone is the simulated state for one year within a scenario.
type CareerMilestone struct {
	Year        int         `json:"year"`
	Title       string      `json:"title"`
	Level       CareerLevel `json:"level"`
	Salary      float64     `json:"salary"`
	Company     string      `json:"company,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	Probability float64     `json:"probability"`
}

// DecisionPoint is a logged promotion or job-switch event within a scenario.
type DecisionPoint struct {
	Year            int    `json:"year"`
	Decision        string `json:"decision"`
	Impact          string `json:"impact"`
	AlternativePath string `json:"alternative_path"`
}

// ScenarioOutcome is the full result of simulating one scenario of a path.
type ScenarioOutcome struct {
	ScenarioType      ScenarioType      `json:"scenario_type"`
	TotalEarnings     float64           `json:"total_earnings"`
	FinalTitle        string            `json:"final_title"`
	FinalSalary       float64           `json:"final_salary"`
	YearsToGoal       *int              `json:"years_to_goal"`
	Milestones        []CareerMilestone `json:"milestones"`
	KeyDecisionPoints []DecisionPoint   `json:"key_decision_points"`
}

// PathCharacteristics holds the qualitative 0-100 scores describing a path.
type PathCharacteristics struct {
	StabilityScore  float64 `json:"stability_score"`
	GrowthPotential float64 `json:"growth_potential"`
	LearningCurve   float64 `json:"learning_curve"`
	WorkLifeBalance float64 `json:"work_life_balance"`
	MarketDemand    float64 `json:"market_demand"`
}

// PathScenarios bundles the three simulated variants of a path.
type PathScenarios struct {
	Optimistic  ScenarioOutcome `json:"optimistic"`
	Realistic   ScenarioOutcome `json:"realistic"`
	Pessimistic ScenarioOutcome `json:"pessimistic"`
}

// Path is one complete candidate career trajectory with its aggregate scores.
type Path struct {
	PathID                   string              `json:"path_id"`
	PathName                 string              `json:"path_name"`
	StartingRole             string              `json:"starting_role"`
	Scenarios                PathScenarios       `json:"scenarios"`
	ExpectedLifetimeEarnings float64             `json:"expected_lifetime_earnings"`
	AverageSalaryGrowthRate  float64             `json:"average_salary_growth_rate"`
	YearsToTargetRole        *int                `json:"years_to_target_role"`
	RiskScore                int                 `json:"risk_score"`
	SuccessScore             int                 `json:"success_score"`
	PathCharacteristics      PathCharacteristics `json:"path_characteristics"`
}

// RecommendedPath names the best-scoring path with generated reasoning.
type RecommendedPath struct {
	PathID     string  `json:"path_id"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}

// Simulation is the complete, immutable result of one simulation run.
// Paths and the recommendation are computed exactly once at creation time;
// re-running with different inputs means creating a new Simulation.
type Simulation struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	CurrentRole     Role            `json:"current_role"`
	TargetRoles     []Role          `json:"target_roles,omitempty"`
	TimeHorizon     int             `json:"time_horizon"`
	SuccessCriteria SuccessCriteria `json:"success_criteria"`
	Paths           []Path          `json:"paths"`
	RecommendedPath RecommendedPath `json:"recommended_path"`
	MarketFactors   MarketFactors   `json:"market_factors"`
	Seed            int64           `json:"seed"`
	SimulationDate  time.Time       `json:"simulation_date"`
}
