package types

import (
	"errors"
	"fmt"
)

// ErrIncompleteRecord indicates a player or team record is missing data
// required by the scoring model. Incomplete slates are rejected at load
// time rather than patched over inside the model.
var ErrIncompleteRecord = errors.New("incomplete player record")

// Validate checks the slate for completeness and consistency. It returns
// the first problem found wrapped around ErrIncompleteRecord, or an error
// describing a structural problem with the tables themselves.
func (s *Slate) Validate() error {
	if len(s.Players) == 0 {
		return errors.New("slate has no players")
	}
	if len(s.Teams) == 0 {
		return errors.New("slate has no teams")
	}
	if len(s.Games) == 0 {
		return errors.New("slate has no games")
	}

	for i, game := range s.Games {
		if int(game.Index) != i {
			return fmt.Errorf("games must be contiguously indexed from 0, got index %d at position %d", game.Index, i)
		}
	}

	seenTeams := make(map[TeamID]bool, len(s.Teams))
	for _, team := range s.Teams {
		if seenTeams[team.ID] {
			return fmt.Errorf("duplicate team id %q", team.ID)
		}
		seenTeams[team.ID] = true
		if team.WinProbability < 0 || team.WinProbability > 1 {
			return fmt.Errorf("team %q win probability %.3f out of [0,1]", team.ID, team.WinProbability)
		}
	}

	seenPlayers := make(map[PlayerID]bool, len(s.Players))
	for i := range s.Players {
		p := &s.Players[i]
		if seenPlayers[p.ID] {
			return fmt.Errorf("duplicate player id %d", p.ID)
		}
		seenPlayers[p.ID] = true
		if err := s.validatePlayer(p); err != nil {
			return fmt.Errorf("%w: player %q (id %d): %v", ErrIncompleteRecord, p.Name, p.ID, err)
		}
	}

	return nil
}

func (s *Slate) validatePlayer(p *Player) error {
	if _, ok := s.TeamByID(p.Team); !ok {
		return fmt.Errorf("unknown team %q", p.Team)
	}
	if p.Price <= 0 {
		return fmt.Errorf("non-positive price %d", p.Price)
	}
	for window, rating := range map[string]float64{"1m": p.Rating1M, "3m": p.Rating3M, "6m": p.Rating6M} {
		if rating <= 0 || rating > 3 {
			return fmt.Errorf("%s rating %.3f out of (0,3]", window, rating)
		}
	}

	// Every role and booster in the slate needs a trigger probability for
	// every player; a missing entry means the upstream stats were never
	// filled in for them.
	for _, role := range s.Roles {
		chance, ok := p.Roles[role.ID]
		if !ok {
			return fmt.Errorf("missing role data for %q", role.ID)
		}
		if chance.Small < 0 || chance.Big < 0 || chance.Small+chance.Big > 1 {
			return fmt.Errorf("role %q trigger probabilities (%.3f, %.3f) invalid", role.ID, chance.Small, chance.Big)
		}
	}
	for _, booster := range s.Boosters {
		prob, ok := p.Boosters[booster.ID]
		if !ok {
			return fmt.Errorf("missing booster data for %q", booster.ID)
		}
		if prob < 0 || prob > 1 {
			return fmt.Errorf("booster %q trigger probability %.3f out of [0,1]", booster.ID, prob)
		}
	}

	return nil
}
