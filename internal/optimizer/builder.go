package optimizer

import (
	"fmt"

	"github.com/stitts-dev/roster-optimizer/internal/milp"
	"github.com/stitts-dev/roster-optimizer/internal/types"
)

// BuildModel translates the slate and contest rules into an integer
// program. It always produces a well-formed model; whether that model has
// a feasible solution is for the solver to decide.
//
// Decision variables:
//
//	x[p]     binary  player p is on the roster
//	y[p,r]   binary  player p holds role r for the event
//	z[p,b,g] binary  player p uses booster b in game g
//	w[p,g]   [0,1]   survival weight, decay variant only, pinned by
//	                 equality to winProb^(g+1) so solved assignments
//	                 carry the weights used in the objective
//
// The objective is kept linear: survival weights enter it as
// pre-multiplied constants, never as variable products.
func BuildModel(slate *types.Slate, cfg Config) *RosterModel {
	m := milp.NewModel("roster-selection")
	vars := VariableSet{
		Selection: make(map[types.PlayerID]milp.VarID, len(slate.Players)),
		Role:      make(map[RoleVarKey]milp.VarID),
		Booster:   make(map[BoosterVarKey]milp.VarID),
		Survival:  make(map[SurvivalVarKey]milp.VarID),
	}

	for i := range slate.Players {
		p := &slate.Players[i]
		vars.Selection[p.ID] = m.AddBinary(fmt.Sprintf("x[%d]", p.ID))
		for _, role := range slate.Roles {
			vars.Role[RoleVarKey{p.ID, role.ID}] = m.AddBinary(fmt.Sprintf("y[%d,%s]", p.ID, role.ID))
		}
		for _, booster := range slate.Boosters {
			for _, game := range slate.Games {
				key := BoosterVarKey{p.ID, booster.ID, game.Index}
				vars.Booster[key] = m.AddBinary(fmt.Sprintf("z[%d,%s,%d]", p.ID, booster.ID, game.Index))
			}
		}
		if cfg.Variant == VariantDecay {
			for _, game := range slate.Games {
				key := SurvivalVarKey{p.ID, game.Index}
				vars.Survival[key] = m.AddContinuous(fmt.Sprintf("w[%d,%d]", p.ID, game.Index), 0, 1)
			}
		}
	}

	buildObjective(m, slate, cfg, vars)
	buildConstraints(m, slate, cfg, vars)

	return &RosterModel{Model: m, Vars: vars}
}

// buildObjective encodes expected fantasy points: rating above the 1.0
// baseline, expected booster bonuses, expected net role value, and the
// team win/loss term, each summed over the schedule with the variant's
// per-game weight.
func buildObjective(m *milp.Model, slate *types.Slate, cfg Config, vars VariableSet) {
	s := cfg.Scoring
	for i := range slate.Players {
		p := &slate.Players[i]
		winProb := slate.WinProbability(p)

		ratingValue := (cfg.RatingWeight1M*p.Rating1M + cfg.RatingWeightLong*p.LongRating(cfg.RatingLongWindow) - 1) * s.RatingScale
		winLossValue := winProb*s.WinPoints - (1-winProb)*s.LossPenalty

		perGame := 0.0
		for _, game := range slate.Games {
			perGame += cfg.gameWeight(winProb, game.Index)
		}
		m.AddObjectiveTerm(vars.Selection[p.ID], perGame*(ratingValue+winLossValue))

		for _, role := range slate.Roles {
			chance := p.Roles[role.ID]
			roleValue := chance.Small*s.RoleSmallPoints + chance.Big*s.RoleBigPoints - chance.Miss()*s.RoleMissPenalty
			m.AddObjectiveTerm(vars.Role[RoleVarKey{p.ID, role.ID}], perGame*roleValue)
		}

		for _, booster := range slate.Boosters {
			prob := p.Boosters[booster.ID]
			for _, game := range slate.Games {
				weight := cfg.gameWeight(winProb, game.Index)
				key := BoosterVarKey{p.ID, booster.ID, game.Index}
				m.AddObjectiveTerm(vars.Booster[key], weight*prob*s.BoosterPoints)
			}
		}
	}
}

func buildConstraints(m *milp.Model, slate *types.Slate, cfg Config, vars VariableSet) {
	// Exactly RosterSize players selected.
	rosterTerms := make([]milp.Term, 0, len(slate.Players))
	for i := range slate.Players {
		rosterTerms = append(rosterTerms, milp.Term{Var: vars.Selection[slate.Players[i].ID], Coef: 1})
	}
	m.AddConstraint("roster_size", rosterTerms, milp.EQ, float64(cfg.RosterSize))

	// At most TeamCap players per team.
	for _, team := range slate.Teams {
		var terms []milp.Term
		for i := range slate.Players {
			if slate.Players[i].Team == team.ID {
				terms = append(terms, milp.Term{Var: vars.Selection[slate.Players[i].ID], Coef: 1})
			}
		}
		if len(terms) > 0 {
			m.AddConstraint(fmt.Sprintf("team_cap[%s]", team.ID), terms, milp.LE, float64(cfg.TeamCap))
		}
	}

	// Total roster price within budget.
	budgetTerms := make([]milp.Term, 0, len(slate.Players))
	for i := range slate.Players {
		p := &slate.Players[i]
		budgetTerms = append(budgetTerms, milp.Term{Var: vars.Selection[p.ID], Coef: float64(p.Price)})
	}
	m.AddConstraint("budget", budgetTerms, milp.LE, float64(cfg.Budget))

	// Each role awarded at most once across the roster.
	for _, role := range slate.Roles {
		terms := make([]milp.Term, 0, len(slate.Players))
		for i := range slate.Players {
			terms = append(terms, milp.Term{Var: vars.Role[RoleVarKey{slate.Players[i].ID, role.ID}], Coef: 1})
		}
		m.AddConstraint(fmt.Sprintf("role_once[%s]", role.ID), terms, milp.LE, 1)
	}

	// Each player holds at most one role, and only while rostered.
	for i := range slate.Players {
		p := &slate.Players[i]
		terms := make([]milp.Term, 0, len(slate.Roles))
		for _, role := range slate.Roles {
			terms = append(terms, milp.Term{Var: vars.Role[RoleVarKey{p.ID, role.ID}], Coef: 1})
		}
		if len(terms) > 0 {
			m.AddConstraint(fmt.Sprintf("player_role[%d]", p.ID), terms, milp.LE, 1)
		}
		for _, role := range slate.Roles {
			m.AddConstraint(fmt.Sprintf("role_selected[%d,%s]", p.ID, role.ID), []milp.Term{
				{Var: vars.Role[RoleVarKey{p.ID, role.ID}], Coef: 1},
				{Var: vars.Selection[p.ID], Coef: -1},
			}, milp.LE, 0)
		}
	}

	// Boosters: single use overall, single use per game, one per player
	// per game, and only by rostered players.
	for _, booster := range slate.Boosters {
		var totalTerms []milp.Term
		for _, game := range slate.Games {
			var gameTerms []milp.Term
			for i := range slate.Players {
				key := BoosterVarKey{slate.Players[i].ID, booster.ID, game.Index}
				gameTerms = append(gameTerms, milp.Term{Var: vars.Booster[key], Coef: 1})
			}
			totalTerms = append(totalTerms, gameTerms...)
			m.AddConstraint(fmt.Sprintf("booster_game[%s,%d]", booster.ID, game.Index), gameTerms, milp.LE, 1)
		}
		m.AddConstraint(fmt.Sprintf("booster_once[%s]", booster.ID), totalTerms, milp.LE, 1)
	}
	for i := range slate.Players {
		p := &slate.Players[i]
		for _, game := range slate.Games {
			terms := make([]milp.Term, 0, len(slate.Boosters))
			for _, booster := range slate.Boosters {
				terms = append(terms, milp.Term{Var: vars.Booster[BoosterVarKey{p.ID, booster.ID, game.Index}], Coef: 1})
			}
			if len(terms) > 0 {
				m.AddConstraint(fmt.Sprintf("player_booster[%d,%d]", p.ID, game.Index), terms, milp.LE, 1)
			}
		}
		for _, booster := range slate.Boosters {
			for _, game := range slate.Games {
				key := BoosterVarKey{p.ID, booster.ID, game.Index}
				m.AddConstraint(fmt.Sprintf("booster_selected[%d,%s,%d]", p.ID, booster.ID, game.Index), []milp.Term{
					{Var: vars.Booster[key], Coef: 1},
					{Var: vars.Selection[p.ID], Coef: -1},
				}, milp.LE, 0)
			}
		}
	}

	// Disqualified players are pinned out of the roster.
	for _, id := range cfg.Disqualified {
		if v, ok := vars.Selection[id]; ok {
			m.AddConstraint(fmt.Sprintf("disqualified[%d]", id), []milp.Term{{Var: v, Coef: 1}}, milp.EQ, 0)
		}
	}

	// Decay variant: survival weights are deterministic functions of the
	// input data, pinned by equality rather than optimized.
	if cfg.Variant == VariantDecay {
		for i := range slate.Players {
			p := &slate.Players[i]
			winProb := slate.WinProbability(p)
			for _, game := range slate.Games {
				key := SurvivalVarKey{p.ID, game.Index}
				m.AddConstraint(fmt.Sprintf("survival[%d,%d]", p.ID, game.Index), []milp.Term{
					{Var: vars.Survival[key], Coef: 1},
				}, milp.EQ, SurvivalWeight(winProb, game.Index))
			}
		}
	}
}
