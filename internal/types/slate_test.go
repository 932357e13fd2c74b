package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSlate() *Slate {
	return &Slate{
		Teams: []Team{
			{ID: "NAVI", Name: "Natus Vincere", WinProbability: 0.65},
			{ID: "FAZE", Name: "FaZe Clan", WinProbability: 0.55},
		},
		Roles: []Role{
			{ID: "entry", Name: "Entry Fragger"},
		},
		Boosters: []Booster{
			{ID: "dmg", Name: "Damage Boost"},
		},
		Games: []Game{
			{Index: 0, Label: "DAY 1"},
			{Index: 1, Label: "DAY 2"},
		},
		Players: []Player{
			{
				ID: 1, Name: "s1mple", Team: "NAVI", Price: 250000,
				Rating1M: 1.28, Rating3M: 1.25, Rating6M: 1.22,
				Roles:    map[RoleID]RoleChance{"entry": {Small: 0.4, Big: 0.2}},
				Boosters: map[BoosterID]float64{"dmg": 0.55},
			},
			{
				ID: 2, Name: "rain", Team: "FAZE", Price: 180000,
				Rating1M: 1.05, Rating3M: 1.08, Rating6M: 1.1,
				Roles:    map[RoleID]RoleChance{"entry": {Small: 0.5, Big: 0.1}},
				Boosters: map[BoosterID]float64{"dmg": 0.4},
			},
		},
	}
}

func TestValidate_CompleteSlate(t *testing.T) {
	slate := validSlate()
	assert.NoError(t, slate.Validate())
}

func TestValidate_MissingRoleData(t *testing.T) {
	slate := validSlate()
	slate.Players[1].Roles = map[RoleID]RoleChance{}

	err := slate.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
	assert.Contains(t, err.Error(), "rain")
}

func TestValidate_MissingBoosterData(t *testing.T) {
	slate := validSlate()
	delete(slate.Players[0].Boosters, "dmg")

	err := slate.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestValidate_UnknownTeam(t *testing.T) {
	slate := validSlate()
	slate.Players[0].Team = "G2"

	err := slate.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
	assert.Contains(t, err.Error(), "unknown team")
}

func TestValidate_BadProbabilities(t *testing.T) {
	slate := validSlate()
	slate.Players[0].Roles["entry"] = RoleChance{Small: 0.7, Big: 0.5}

	err := slate.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestValidate_BadWinProbability(t *testing.T) {
	slate := validSlate()
	slate.Teams[0].WinProbability = 1.2

	err := slate.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "win probability")
}

func TestValidate_ZeroPrice(t *testing.T) {
	slate := validSlate()
	slate.Players[0].Price = 0

	err := slate.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestValidate_NonContiguousGames(t *testing.T) {
	slate := validSlate()
	slate.Games[1].Index = 3

	err := slate.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contiguously indexed")
}

func TestValidate_DuplicatePlayerID(t *testing.T) {
	slate := validSlate()
	slate.Players[1].ID = slate.Players[0].ID

	err := slate.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate player")
}

func TestLoadSlate(t *testing.T) {
	slate, err := LoadSlate("testdata/slate.json")
	require.NoError(t, err)

	assert.Len(t, slate.Players, 2)
	assert.Len(t, slate.Games, 2)
	// Games come back ordered even if the file lists them out of order.
	assert.Equal(t, GameIndex(0), slate.Games[0].Index)
	assert.Equal(t, GameIndex(1), slate.Games[1].Index)
}

func TestLoadSlate_MissingFile(t *testing.T) {
	_, err := LoadSlate("testdata/nope.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read slate file")
}

func TestRoleChanceMiss(t *testing.T) {
	rc := RoleChance{Small: 0.4, Big: 0.2}
	assert.InDelta(t, 0.4, rc.Miss(), 1e-9)
}

func TestLongRating(t *testing.T) {
	p := Player{Rating3M: 1.1, Rating6M: 1.3}
	assert.Equal(t, 1.1, p.LongRating("3m"))
	assert.Equal(t, 1.3, p.LongRating("6m"))
}
