package simulation

import "github.com/jonathan/career-simulator/internal/types"

// LevelProgression describes how a level advances to the next one.
// Next is nil for the terminal level.
type LevelProgression struct {
	Next         *types.CareerLevel
	MinYears     int
	TypicalYears int
	MaxYears     int
	SalaryGrowth float64 // fractional salary bump on promotion
}

func levelPtr(l types.CareerLevel) *types.CareerLevel { return &l }

// levelProgressionTable is the static level-progression model.
// Executive is terminal.
var levelProgressionTable = map[types.CareerLevel]LevelProgression{
	types.LevelEntry: {
		Next:         levelPtr(types.LevelMid),
		MinYears:     1,
		TypicalYears: 2,
		MaxYears:     4,
		SalaryGrowth: 0.15,
	},
	types.LevelMid: {
		Next:         levelPtr(types.LevelSenior),
		MinYears:     2,
		TypicalYears: 3,
		MaxYears:     5,
		SalaryGrowth: 0.20,
	},
	types.LevelSenior: {
		Next:         levelPtr(types.LevelLead),
		MinYears:     2,
		TypicalYears: 4,
		MaxYears:     7,
		SalaryGrowth: 0.18,
	},
	types.LevelLead: {
		Next:         levelPtr(types.LevelPrincipal),
		MinYears:     3,
		TypicalYears: 5,
		MaxYears:     8,
		SalaryGrowth: 0.22,
	},
	types.LevelPrincipal: {
		Next:         levelPtr(types.LevelExecutive),
		MinYears:     3,
		TypicalYears: 6,
		MaxYears:     10,
		SalaryGrowth: 0.30,
	},
	types.LevelExecutive: {
		Next:         nil,
		MinYears:     0,
		TypicalYears: 0,
		MaxYears:     0,
		SalaryGrowth: 0.10,
	},
}

// ProgressionFor returns the progression entry for a level. Unknown or empty
// levels are treated as Mid, which keeps enrichment failures non-fatal.
func ProgressionFor(level types.CareerLevel) LevelProgression {
	if progression, ok := levelProgressionTable[level]; ok {
		return progression
	}
	return levelProgressionTable[types.LevelMid]
}
