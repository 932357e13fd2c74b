package optimizer

import (
	"math"

	"github.com/stitts-dev/roster-optimizer/internal/types"
)

// SurvivalWeight is the probability a team is still competing at game g,
// modeling consecutive-round survival as independent: 1 for the opening
// game, then winProb^(g+1) for later games.
func SurvivalWeight(winProb float64, g types.GameIndex) float64 {
	if g == 0 {
		return 1
	}
	return math.Pow(winProb, float64(g)+1)
}

// gameWeight is the per-game objective multiplier for a player: uniform 1
// in the flat variant, survival-discounted in the decay variant.
func (c *Config) gameWeight(winProb float64, g types.GameIndex) float64 {
	if c.Variant == VariantDecay {
		return SurvivalWeight(winProb, g)
	}
	return 1
}
