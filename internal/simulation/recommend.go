package simulation

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-simulator/internal/types"
)

// Recommend selects the path with the highest success score (first encountered
// wins ties) and assembles a human-readable justification plus a confidence
// figure. The paths slice must be non-empty.
func Recommend(paths []types.Path) types.RecommendedPath {
	best := paths[0]
	for _, path := range paths[1:] {
		if path.SuccessScore > best.SuccessScore {
			best = path
		}
	}

	maxEarnings := paths[0].ExpectedLifetimeEarnings
	for _, path := range paths[1:] {
		if path.ExpectedLifetimeEarnings > maxEarnings {
			maxEarnings = path.ExpectedLifetimeEarnings
		}
	}

	var observations []string
	if best.SuccessScore >= 80 {
		observations = append(observations, fmt.Sprintf("scores highest against your success criteria (%d/100)", best.SuccessScore))
	}
	if best.ExpectedLifetimeEarnings >= maxEarnings {
		observations = append(observations, fmt.Sprintf("has the highest expected lifetime earnings ($%.1fM)", best.ExpectedLifetimeEarnings/1_000_000))
	}
	if best.RiskScore < 50 {
		observations = append(observations, "carries lower risk")
	}
	if best.PathCharacteristics.GrowthPotential > 70 {
		observations = append(observations, "shows strong growth potential")
	}

	reasoning := fmt.Sprintf("%s is recommended because it %s.", best.PathName, joinObservations(observations))

	confidence := 0.5 +
		best.PathCharacteristics.StabilityScore/100*0.2 +
		float64(100-best.RiskScore)/100*0.2 +
		best.PathCharacteristics.MarketDemand/100*0.1
	confidence = math.Min(1.0, confidence)

	return types.RecommendedPath{
		PathID:     best.PathID,
		Reasoning:  reasoning,
		Confidence: confidence,
	}
}

// joinObservations joins the applicable observations into one readable clause.
// When nothing noteworthy applies, a neutral fallback keeps the sentence whole.
func joinObservations(observations []string) string {
	switch len(observations) {
	case 0:
		return "offers the most balanced trade-off between growth and risk"
	case 1:
		return observations[0]
	default:
		return strings.Join(observations[:len(observations)-1], ", ") + " and " + observations[len(observations)-1]
	}
}
