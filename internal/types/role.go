// Package types provides type definitions for structured data used throughout the career-simulator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CareerLevel represents a rung on the career ladder.
type CareerLevel string

// Career levels, ordered from most junior to most senior.
const (
	LevelEntry     CareerLevel = "Entry"
	LevelMid       CareerLevel = "Mid"
	LevelSenior    CareerLevel = "Senior"
	LevelLead      CareerLevel = "Lead"
	LevelPrincipal CareerLevel = "Principal"
	LevelExecutive CareerLevel = "Executive"
)

// Role represents a position a person holds or is targeting.
type Role struct {
	Title             string      `json:"title"`
	Level             CareerLevel `json:"level,omitempty"`
	Salary            float64     `json:"salary"`
	Company           string      `json:"company,omitempty"`
	Industry          string      `json:"industry,omitempty"`
	YearsOfExperience int         `json:"years_of_experience,omitempty"`
}

// EconomicCondition represents the macro-economic climate assumed for an industry.
type EconomicCondition string

// Economic conditions.
const (
	ConditionRecession EconomicCondition = "recession"
	ConditionRecovery  EconomicCondition = "recovery"
	ConditionStable    EconomicCondition = "stable"
	ConditionGrowth    EconomicCondition = "growth"
	ConditionBoom      EconomicCondition = "boom"
)

// DemandTrend represents the hiring-demand trajectory for an industry.
type DemandTrend string

// Demand trends.
const (
	DemandDeclining DemandTrend = "declining"
	DemandStable    DemandTrend = "stable"
	DemandGrowing   DemandTrend = "growing"
	DemandExplosive DemandTrend = "explosive"
)

// MarketFactors holds the industry-level assumptions that modulate simulated salaries.
type MarketFactors struct {
	IndustryGrowthRate float64           `json:"industry_growth_rate"`
	EconomicCondition  EconomicCondition `json:"economic_condition"`
	AutomationRisk     float64           `json:"automation_risk"`
	DemandTrend        DemandTrend       `json:"demand_trend"`
}

// SuccessCriteria holds the user-supplied definition of a successful career outcome.
// The three weights are fractions intended to sum to roughly 1; they are used as
// given and never normalized, so skewed weights produce proportionally skewed scores.
type SuccessCriteria struct {
	TargetSalary                float64  `json:"target_salary,omitempty"`
	TargetTitle                 string   `json:"target_title,omitempty"`
	WorkLifeBalanceWeight       float64  `json:"work_life_balance_weight"`
	LearningOpportunitiesWeight float64  `json:"learning_opportunities_weight"`
	ImpactWeight                float64  `json:"impact_weight"`
	GeographicPreference        string   `json:"geographic_preference,omitempty"`
	IndustryPreference          []string `json:"industry_preference,omitempty"`
}
