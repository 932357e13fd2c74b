package optimizer

import (
	"fmt"
	"strings"

	"github.com/stitts-dev/roster-optimizer/internal/milp"
	"github.com/stitts-dev/roster-optimizer/internal/types"
)

// BoosterUse records an active booster on one report line.
type BoosterUse struct {
	Booster     types.BoosterID `json:"booster"`
	Name        string          `json:"name"`
	TriggerProb float64         `json:"trigger_prob"`
}

// GameLine is one role-holding player's entry for one game. Booster is
// nil when no booster was assigned for that game.
type GameLine struct {
	Player    types.PlayerID `json:"player"`
	Name      string         `json:"name"`
	Team      types.TeamID   `json:"team"`
	Role      types.RoleID   `json:"role"`
	RoleName  string         `json:"role_name"`
	SmallProb float64        `json:"small_prob"`
	BigProb   float64        `json:"big_prob"`
	Booster   *BoosterUse    `json:"booster,omitempty"`
}

// GameReport lists the role and booster activations for one game.
type GameReport struct {
	Game  types.GameIndex `json:"game"`
	Label string          `json:"label"`
	Lines []GameLine      `json:"lines"`
}

// RosterPlayer is one selected player in the aggregate roster view.
type RosterPlayer struct {
	ID    types.PlayerID `json:"id"`
	Name  string         `json:"name"`
	Team  types.TeamID   `json:"team"`
	Price int            `json:"price"`
}

// RosterReport is the full solved-roster report: per-game activations
// plus aggregate price and the solver's objective value.
type RosterReport struct {
	Games          []GameReport   `json:"games"`
	Roster         []RosterPlayer `json:"roster"`
	TotalPrice     int            `json:"total_price"`
	ExpectedPoints float64        `json:"expected_points"`
}

// interpret projects a solved assignment back onto the slate. It makes no
// decisions of its own: every rostered player holding a role appears
// exactly once per game, with their booster for that game or none.
func interpret(slate *types.Slate, rm *RosterModel, sol *milp.Solution) *RosterReport {
	report := &RosterReport{ExpectedPoints: sol.Objective}

	for i := range slate.Players {
		p := &slate.Players[i]
		if !sol.IsSet(rm.Vars.Selection[p.ID]) {
			continue
		}
		report.Roster = append(report.Roster, RosterPlayer{ID: p.ID, Name: p.Name, Team: p.Team, Price: p.Price})
		report.TotalPrice += p.Price
	}

	for _, game := range slate.Games {
		gameReport := GameReport{Game: game.Index, Label: game.Label}
		for i := range slate.Players {
			p := &slate.Players[i]
			if !sol.IsSet(rm.Vars.Selection[p.ID]) {
				continue
			}
			for _, role := range slate.Roles {
				if !sol.IsSet(rm.Vars.Role[RoleVarKey{p.ID, role.ID}]) {
					continue
				}
				chance := p.Roles[role.ID]
				line := GameLine{
					Player:    p.ID,
					Name:      p.Name,
					Team:      p.Team,
					Role:      role.ID,
					RoleName:  role.Name,
					SmallProb: chance.Small,
					BigProb:   chance.Big,
				}
				for _, booster := range slate.Boosters {
					if sol.IsSet(rm.Vars.Booster[BoosterVarKey{p.ID, booster.ID, game.Index}]) {
						line.Booster = &BoosterUse{
							Booster:     booster.ID,
							Name:        booster.Name,
							TriggerProb: p.Boosters[booster.ID],
						}
						break
					}
				}
				gameReport.Lines = append(gameReport.Lines, line)
			}
		}
		report.Games = append(report.Games, gameReport)
	}

	return report
}

// String renders the report as one block per game followed by the
// roster totals.
func (r *RosterReport) String() string {
	var b strings.Builder
	for _, game := range r.Games {
		label := game.Label
		if label == "" {
			label = fmt.Sprintf("DAY %d", int(game.Game)+1)
		}
		fmt.Fprintln(&b, label)
		for _, line := range game.Lines {
			fmt.Fprintf(&b, "  %s (%s) used role %s (%.2f/%.2f)", line.Name, line.Team, line.RoleName, line.SmallProb, line.BigProb)
			if line.Booster != nil {
				fmt.Fprintf(&b, " and booster %s (%.2f)\n", line.Booster.Name, line.Booster.TriggerProb)
			} else {
				fmt.Fprintln(&b, " and no booster")
			}
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Roster:")
	for _, p := range r.Roster {
		fmt.Fprintf(&b, "  %s (%s) $%d\n", p.Name, p.Team, p.Price)
	}
	fmt.Fprintf(&b, "Total Price: %d\n", r.TotalPrice)
	fmt.Fprintf(&b, "Expected Pointscore: %.2f\n", r.ExpectedPoints)
	return b.String()
}
