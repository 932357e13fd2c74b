package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/roster-optimizer/internal/milp"
	"github.com/stitts-dev/roster-optimizer/internal/types"
)

func fixturePlayer(id uint, name string, team types.TeamID, price int, r1m, r6m, small, big, booster float64) types.Player {
	return types.Player{
		ID:       types.PlayerID(id),
		Name:     name,
		Team:     team,
		Price:    price,
		Rating1M: r1m,
		Rating3M: (r1m + r6m) / 2,
		Rating6M: r6m,
		Roles:    map[types.RoleID]types.RoleChance{"entry": {Small: small, Big: big}},
		Boosters: map[types.BoosterID]float64{"dmg": booster},
	}
}

// fixtureSlate is 15 players across 5 teams (3 per team), 1 role,
// 1 booster, and a 2-game schedule. Every 5-player combination fits the
// standard budget.
func fixtureSlate() *types.Slate {
	return &types.Slate{
		Teams: []types.Team{
			{ID: "NAVI", Name: "Natus Vincere", WinProbability: 0.70},
			{ID: "FAZE", Name: "FaZe Clan", WinProbability: 0.60},
			{ID: "VITA", Name: "Team Vitality", WinProbability: 0.55},
			{ID: "G2", Name: "G2 Esports", WinProbability: 0.50},
			{ID: "SPIRIT", Name: "Team Spirit", WinProbability: 0.45},
		},
		Roles: []types.Role{
			{ID: "entry", Name: "Entry Fragger"},
		},
		Boosters: []types.Booster{
			{ID: "dmg", Name: "Damage Boost"},
		},
		Games: []types.Game{
			{Index: 0, Label: "DAY 1"},
			{Index: 1, Label: "DAY 2"},
		},
		Players: []types.Player{
			fixturePlayer(1, "s1mple", "NAVI", 200000, 1.30, 1.20, 0.40, 0.20, 0.50),
			fixturePlayer(2, "b1t", "NAVI", 170000, 1.12, 1.10, 0.35, 0.15, 0.45),
			fixturePlayer(3, "Aleksib", "NAVI", 140000, 0.95, 0.98, 0.20, 0.05, 0.30),
			fixturePlayer(4, "rain", "FAZE", 175000, 1.08, 1.12, 0.50, 0.10, 0.40),
			fixturePlayer(5, "broky", "FAZE", 185000, 1.15, 1.18, 0.25, 0.20, 0.50),
			fixturePlayer(6, "karrigan", "FAZE", 145000, 0.92, 0.95, 0.15, 0.05, 0.25),
			fixturePlayer(7, "ZywOo", "VITA", 198000, 1.28, 1.25, 0.30, 0.25, 0.55),
			fixturePlayer(8, "flameZ", "VITA", 165000, 1.10, 1.05, 0.45, 0.10, 0.40),
			fixturePlayer(9, "apEX", "VITA", 142000, 0.90, 0.94, 0.22, 0.06, 0.28),
			fixturePlayer(10, "NiKo", "G2", 195000, 1.22, 1.19, 0.35, 0.18, 0.48),
			fixturePlayer(11, "huNter-", "G2", 172000, 1.09, 1.11, 0.30, 0.12, 0.42),
			fixturePlayer(12, "nexa", "G2", 148000, 0.96, 0.99, 0.18, 0.04, 0.26),
			fixturePlayer(13, "donk", "SPIRIT", 190000, 1.26, 1.15, 0.38, 0.22, 0.52),
			fixturePlayer(14, "sh1ro", "SPIRIT", 180000, 1.14, 1.16, 0.28, 0.14, 0.46),
			fixturePlayer(15, "chopper", "SPIRIT", 150000, 0.94, 0.97, 0.20, 0.05, 0.30),
		},
	}
}

func findConstraint(t *testing.T, m *milp.Model, name string) milp.Constraint {
	t.Helper()
	for _, c := range m.Constraints {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "constraint not found", "no constraint named %s", name)
	return milp.Constraint{}
}

func objectiveCoef(m *milp.Model, v milp.VarID) float64 {
	total := 0.0
	for _, term := range m.Objective {
		if term.Var == v {
			total += term.Coef
		}
	}
	return total
}
