// Package simulation implements the career path simulation engine: year-by-year
// scenario generation, path building, risk/success scoring, and recommendation.
package simulation

import "github.com/jonathan/career-simulator/internal/types"

// defaultMarketFactors is the fallback for industries not in the table:
// modest growth, stable economy, middling automation exposure, flat demand.
var defaultMarketFactors = types.MarketFactors{
	IndustryGrowthRate: 0.05,
	EconomicCondition:  types.ConditionStable,
	AutomationRisk:     0.4,
	DemandTrend:        types.DemandStable,
}

// marketFactorsByIndustry holds the static per-industry market assumptions.
var marketFactorsByIndustry = map[string]types.MarketFactors{
	"Technology": {
		IndustryGrowthRate: 0.12,
		EconomicCondition:  types.ConditionGrowth,
		AutomationRisk:     0.25,
		DemandTrend:        types.DemandGrowing,
	},
	"Healthcare": {
		IndustryGrowthRate: 0.08,
		EconomicCondition:  types.ConditionStable,
		AutomationRisk:     0.2,
		DemandTrend:        types.DemandGrowing,
	},
	"Finance": {
		IndustryGrowthRate: 0.06,
		EconomicCondition:  types.ConditionStable,
		AutomationRisk:     0.5,
		DemandTrend:        types.DemandStable,
	},
	"Education": {
		IndustryGrowthRate: 0.03,
		EconomicCondition:  types.ConditionStable,
		AutomationRisk:     0.15,
		DemandTrend:        types.DemandStable,
	},
	"Manufacturing": {
		IndustryGrowthRate: 0.02,
		EconomicCondition:  types.ConditionRecovery,
		AutomationRisk:     0.7,
		DemandTrend:        types.DemandDeclining,
	},
	"Retail": {
		IndustryGrowthRate: 0.01,
		EconomicCondition:  types.ConditionRecovery,
		AutomationRisk:     0.65,
		DemandTrend:        types.DemandDeclining,
	},
	"Energy": {
		IndustryGrowthRate: 0.05,
		EconomicCondition:  types.ConditionRecovery,
		AutomationRisk:     0.45,
		DemandTrend:        types.DemandStable,
	},
	"Media": {
		IndustryGrowthRate: 0.02,
		EconomicCondition:  types.ConditionStable,
		AutomationRisk:     0.55,
		DemandTrend:        types.DemandDeclining,
	},
}

// MarketFactorsFor returns the market assumptions for an industry.
// Unknown industries silently fall back to defaultMarketFactors; the
// fallback is not an error.
func MarketFactorsFor(industry string) types.MarketFactors {
	if factors, ok := marketFactorsByIndustry[industry]; ok {
		return factors
	}
	return defaultMarketFactors
}

// economicConditionMultiplier is the annual salary multiplier contributed by
// the economic climate.
var economicConditionMultiplier = map[types.EconomicCondition]float64{
	types.ConditionRecession: 0.97,
	types.ConditionRecovery:  1.0,
	types.ConditionStable:    1.0,
	types.ConditionGrowth:    1.02,
	types.ConditionBoom:      1.05,
}

// demandTrendMultiplier is the annual salary multiplier contributed by the
// hiring-demand trend.
var demandTrendMultiplier = map[types.DemandTrend]float64{
	types.DemandDeclining: 0.98,
	types.DemandStable:    1.0,
	types.DemandGrowing:   1.03,
	types.DemandExplosive: 1.08,
}

// marketImpactMultiplier combines the economic-condition and demand-trend
// contributions into a single per-year salary multiplier.
func marketImpactMultiplier(factors types.MarketFactors) float64 {
	econ, ok := economicConditionMultiplier[factors.EconomicCondition]
	if !ok {
		econ = 1.0
	}
	demand, ok := demandTrendMultiplier[factors.DemandTrend]
	if !ok {
		demand = 1.0
	}
	return econ * demand
}
