package optimizer

import (
	"github.com/stitts-dev/roster-optimizer/internal/milp"
	"github.com/stitts-dev/roster-optimizer/internal/types"
)

// Variant selects how per-game scaling is applied in the objective.
type Variant string

const (
	// VariantFlat scores every scheduled game identically.
	VariantFlat Variant = "flat"
	// VariantDecay discounts later games by the probability the player's
	// team is still competing.
	VariantDecay Variant = "decay"
)

// Scoring holds the fantasy scoring constants. These are game-design
// givens, not tunables to be fit.
type Scoring struct {
	RatingScale     float64 `json:"rating_scale"`
	BoosterPoints   float64 `json:"booster_points"`
	RoleSmallPoints float64 `json:"role_small_points"`
	RoleBigPoints   float64 `json:"role_big_points"`
	RoleMissPenalty float64 `json:"role_miss_penalty"`
	WinPoints       float64 `json:"win_points"`
	LossPenalty     float64 `json:"loss_penalty"`
}

// DefaultScoring returns the standard fantasy scoring constants.
func DefaultScoring() Scoring {
	return Scoring{
		RatingScale:     50,
		BoosterPoints:   5,
		RoleSmallPoints: 2,
		RoleBigPoints:   5,
		RoleMissPenalty: 2,
		WinPoints:       6,
		LossPenalty:     3,
	}
}

// Config controls one optimization run.
type Config struct {
	Variant          Variant          `json:"variant"`
	RatingWeight1M   float64          `json:"rating_weight_1m"`
	RatingWeightLong float64          `json:"rating_weight_long"`
	RatingLongWindow string           `json:"rating_long_window"` // "3m" or "6m"
	Budget           int              `json:"budget"`
	RosterSize       int              `json:"roster_size"`
	TeamCap          int              `json:"team_cap"`
	Scoring          Scoring          `json:"scoring"`
	Disqualified     []types.PlayerID `json:"disqualified"`
}

// DefaultConfig returns the standard contest rules with flat scoring.
func DefaultConfig() Config {
	return Config{
		Variant:          VariantFlat,
		RatingWeight1M:   0.8,
		RatingWeightLong: 0.2,
		RatingLongWindow: "6m",
		Budget:           1000000,
		RosterSize:       5,
		TeamCap:          2,
		Scoring:          DefaultScoring(),
	}
}

// RoleVarKey keys a role-assignment variable.
type RoleVarKey struct {
	Player types.PlayerID
	Role   types.RoleID
}

// BoosterVarKey keys a booster-assignment variable.
type BoosterVarKey struct {
	Player  types.PlayerID
	Booster types.BoosterID
	Game    types.GameIndex
}

// SurvivalVarKey keys a survival-weight variable (decay variant only).
type SurvivalVarKey struct {
	Player types.PlayerID
	Game   types.GameIndex
}

// VariableSet maps the model's decision variables back to domain
// identifiers, so solutions can be read without positional assumptions.
type VariableSet struct {
	Selection map[types.PlayerID]milp.VarID
	Role      map[RoleVarKey]milp.VarID
	Booster   map[BoosterVarKey]milp.VarID
	Survival  map[SurvivalVarKey]milp.VarID
}

// RosterModel is a built, immutable roster-selection program together
// with its variable bookkeeping.
type RosterModel struct {
	Model *milp.Model
	Vars  VariableSet
}
