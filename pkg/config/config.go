package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Input
	SlateFile string `mapstructure:"SLATE_FILE"`

	// Objective
	ObjectiveVariant string  `mapstructure:"OBJECTIVE_VARIANT"` // "flat" or "decay"
	RatingWeight1M   float64 `mapstructure:"RATING_WEIGHT_1M"`
	RatingWeightLong float64 `mapstructure:"RATING_WEIGHT_LONG"`
	RatingLongWindow string  `mapstructure:"RATING_LONG_WINDOW"` // "3m" or "6m"

	// Roster rules
	Budget     int `mapstructure:"BUDGET"`
	RosterSize int `mapstructure:"ROSTER_SIZE"`
	TeamCap    int `mapstructure:"TEAM_CAP"`

	// Scoring constants
	RatingScale     float64 `mapstructure:"RATING_SCALE"`
	BoosterPoints   float64 `mapstructure:"BOOSTER_POINTS"`
	RoleSmallPoints float64 `mapstructure:"ROLE_SMALL_POINTS"`
	RoleBigPoints   float64 `mapstructure:"ROLE_BIG_POINTS"`
	RoleMissPenalty float64 `mapstructure:"ROLE_MISS_PENALTY"`
	WinPoints       float64 `mapstructure:"WIN_POINTS"`
	LossPenalty     float64 `mapstructure:"LOSS_PENALTY"`

	// Exclusions, parsed from the comma-separated DISQUALIFIED_PLAYERS
	// environment value.
	DisqualifiedPlayers []uint `mapstructure:"-"`

	// Solver
	SolverVerbose bool `mapstructure:"SOLVER_VERBOSE"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SLATE_FILE", "slate.json")
	viper.SetDefault("OBJECTIVE_VARIANT", "flat")
	viper.SetDefault("RATING_WEIGHT_1M", 0.8)
	viper.SetDefault("RATING_WEIGHT_LONG", 0.2)
	viper.SetDefault("RATING_LONG_WINDOW", "6m")
	viper.SetDefault("BUDGET", 1000000)
	viper.SetDefault("ROSTER_SIZE", 5)
	viper.SetDefault("TEAM_CAP", 2)
	viper.SetDefault("RATING_SCALE", 50.0)
	viper.SetDefault("BOOSTER_POINTS", 5.0)
	viper.SetDefault("ROLE_SMALL_POINTS", 2.0)
	viper.SetDefault("ROLE_BIG_POINTS", 5.0)
	viper.SetDefault("ROLE_MISS_PENALTY", 2.0)
	viper.SetDefault("WIN_POINTS", 6.0)
	viper.SetDefault("LOSS_PENALTY", 3.0)
	viper.SetDefault("DISQUALIFIED_PLAYERS", "")
	viper.SetDefault("SOLVER_VERBOSE", false)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse disqualified players from comma-separated string
	if dqStr := viper.GetString("DISQUALIFIED_PLAYERS"); dqStr != "" {
		ids, err := parsePlayerIDs(dqStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DISQUALIFIED_PLAYERS: %w", err)
		}
		config.DisqualifiedPlayers = ids
	}

	if config.ObjectiveVariant != "flat" && config.ObjectiveVariant != "decay" {
		return nil, fmt.Errorf("invalid OBJECTIVE_VARIANT %q: must be \"flat\" or \"decay\"", config.ObjectiveVariant)
	}
	if config.RatingLongWindow != "3m" && config.RatingLongWindow != "6m" {
		return nil, fmt.Errorf("invalid RATING_LONG_WINDOW %q: must be \"3m\" or \"6m\"", config.RatingLongWindow)
	}

	return &config, nil
}

func parsePlayerIDs(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("player id %q: %w", part, err)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
