package types

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// PlayerID identifies a player within a slate.
type PlayerID uint

// TeamID identifies a team within a slate.
type TeamID string

// RoleID identifies a fantasy role archetype.
type RoleID string

// BoosterID identifies a booster item.
type BoosterID string

// GameIndex is the zero-based day index of a scheduled game.
type GameIndex int

// RoleChance holds a player's trigger probabilities for one role.
// Small and Big are the probabilities of a small and big trigger;
// the remaining mass is the miss probability.
type RoleChance struct {
	Small float64 `json:"small"`
	Big   float64 `json:"big"`
}

// Miss returns the probability that the role does not trigger at all.
func (rc RoleChance) Miss() float64 {
	return 1 - rc.Small - rc.Big
}

// Team represents a competing team. WinProbability applies uniformly to
// each of its players for any single game.
type Team struct {
	ID             TeamID  `json:"id"`
	Name           string  `json:"name"`
	WinProbability float64 `json:"win_probability"`
}

// Player represents one selectable player and their scoring inputs.
// Ratings are HLTV-style rolling windows; Roles and Boosters carry the
// per-role and per-booster trigger probabilities.
type Player struct {
	ID       PlayerID              `json:"id"`
	Name     string                `json:"name"`
	Team     TeamID                `json:"team"`
	Price    int                   `json:"price"`
	Rating1M float64               `json:"rating_1m"`
	Rating3M float64               `json:"rating_3m"`
	Rating6M float64               `json:"rating_6m"`
	Roles    map[RoleID]RoleChance `json:"roles"`
	Boosters map[BoosterID]float64 `json:"boosters"`
}

// LongRating returns the player's long-window rating for the configured
// window ("3m" or "6m").
func (p *Player) LongRating(window string) float64 {
	if window == "3m" {
		return p.Rating3M
	}
	return p.Rating6M
}

// Role represents a scarce scoring archetype assignable to at most one
// rostered player.
type Role struct {
	ID   RoleID `json:"id"`
	Name string `json:"name"`
}

// Booster represents a single-use scoring item assignable per game.
type Booster struct {
	ID   BoosterID `json:"id"`
	Name string    `json:"name"`
}

// Game represents one ordered schedule slot.
type Game struct {
	Index GameIndex `json:"index"`
	Label string    `json:"label"`
}

// Slate bundles the immutable input tables for one optimization run.
type Slate struct {
	Players  []Player  `json:"players"`
	Teams    []Team    `json:"teams"`
	Roles    []Role    `json:"roles"`
	Boosters []Booster `json:"boosters"`
	Games    []Game    `json:"games"`
}

// LoadSlate reads a slate from a JSON file, validates it, and returns it
// with games sorted by index.
func LoadSlate(path string) (*Slate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slate file: %w", err)
	}

	var slate Slate
	if err := json.Unmarshal(data, &slate); err != nil {
		return nil, fmt.Errorf("failed to parse slate file: %w", err)
	}

	sort.Slice(slate.Games, func(i, j int) bool {
		return slate.Games[i].Index < slate.Games[j].Index
	})

	if err := slate.Validate(); err != nil {
		return nil, err
	}

	return &slate, nil
}

// TeamByID returns the team with the given ID, or false if unknown.
func (s *Slate) TeamByID(id TeamID) (*Team, bool) {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i], true
		}
	}
	return nil, false
}

// PlayerByID returns the player with the given ID, or false if unknown.
func (s *Slate) PlayerByID(id PlayerID) (*Player, bool) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], true
		}
	}
	return nil, false
}

// WinProbability returns the win probability of the player's team.
func (s *Slate) WinProbability(p *Player) float64 {
	team, ok := s.TeamByID(p.Team)
	if !ok {
		return 0
	}
	return team.WinProbability
}
