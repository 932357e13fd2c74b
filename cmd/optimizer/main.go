package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-optimizer/internal/milp"
	"github.com/stitts-dev/roster-optimizer/internal/optimizer"
	"github.com/stitts-dev/roster-optimizer/internal/types"
	"github.com/stitts-dev/roster-optimizer/pkg/config"
	"github.com/stitts-dev/roster-optimizer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	// Slate path from argument overrides config
	slatePath := cfg.SlateFile
	if len(os.Args) > 1 {
		slatePath = os.Args[1]
	}

	slate, err := types.LoadSlate(slatePath)
	if err != nil {
		logrus.Fatalf("Failed to load slate: %v", err)
	}

	opt := optimizer.New(toOptimizerConfig(cfg), milp.NewLPSolver(cfg.SolverVerbose))
	report, err := opt.Optimize(slate)
	if err != nil {
		logrus.Fatalf("Optimization failed: %v", err)
	}

	fmt.Print(report.String())
}

func toOptimizerConfig(cfg *config.Config) optimizer.Config {
	disqualified := make([]types.PlayerID, len(cfg.DisqualifiedPlayers))
	for i, id := range cfg.DisqualifiedPlayers {
		disqualified[i] = types.PlayerID(id)
	}

	return optimizer.Config{
		Variant:          optimizer.Variant(cfg.ObjectiveVariant),
		RatingWeight1M:   cfg.RatingWeight1M,
		RatingWeightLong: cfg.RatingWeightLong,
		RatingLongWindow: cfg.RatingLongWindow,
		Budget:           cfg.Budget,
		RosterSize:       cfg.RosterSize,
		TeamCap:          cfg.TeamCap,
		Scoring: optimizer.Scoring{
			RatingScale:     cfg.RatingScale,
			BoosterPoints:   cfg.BoosterPoints,
			RoleSmallPoints: cfg.RoleSmallPoints,
			RoleBigPoints:   cfg.RoleBigPoints,
			RoleMissPenalty: cfg.RoleMissPenalty,
			WinPoints:       cfg.WinPoints,
			LossPenalty:     cfg.LossPenalty,
		},
		Disqualified: disqualified,
	}
}
