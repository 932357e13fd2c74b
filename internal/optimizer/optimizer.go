// Package optimizer builds and solves the fantasy roster-selection
// integer program: pick 5 players under budget and team-count rules, and
// assign roles and per-game boosters, maximizing expected fantasy points.
package optimizer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-optimizer/internal/milp"
	"github.com/stitts-dev/roster-optimizer/internal/types"
	"github.com/stitts-dev/roster-optimizer/pkg/logger"
)

// ErrNoSolution indicates the contest rules admit no feasible roster for
// the given slate.
var ErrNoSolution = errors.New("no feasible roster")

// Optimizer runs the build-solve-interpret pipeline. The pipeline is
// synchronous: the solver call blocks until the solve completes.
type Optimizer struct {
	config Config
	solver milp.Solver
}

// New returns an Optimizer using the given contest rules and solver.
func New(config Config, solver milp.Solver) *Optimizer {
	return &Optimizer{config: config, solver: solver}
}

// Optimize validates the slate, builds the roster model, solves it, and
// interprets the solution. Infeasible models surface as ErrNoSolution;
// solver-internal failures propagate unchanged.
func (o *Optimizer) Optimize(slate *types.Slate) (*RosterReport, error) {
	optimizationID := uuid.New().String()
	log := logger.WithOptimizationContext(optimizationID, string(o.config.Variant))
	log.WithFields(logrus.Fields{
		"players":  len(slate.Players),
		"teams":    len(slate.Teams),
		"roles":    len(slate.Roles),
		"boosters": len(slate.Boosters),
		"games":    len(slate.Games),
	}).Info("Starting roster optimization")

	if err := slate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid slate: %w", err)
	}

	rm := BuildModel(slate, o.config)
	logger.WithSolverContext(optimizationID, len(rm.Model.Vars), len(rm.Model.Constraints)).
		Info("Invoking solver")

	sol, err := o.solver.Solve(rm.Model)
	if err != nil {
		if errors.Is(err, milp.ErrInfeasible) || errors.Is(err, milp.ErrUnbounded) {
			log.WithError(err).Warn("Model has no usable solution")
			return nil, fmt.Errorf("%w: %v", ErrNoSolution, err)
		}
		return nil, fmt.Errorf("solver failure: %w", err)
	}

	report := interpret(slate, rm, sol)
	log.WithFields(logrus.Fields{
		"total_price":     report.TotalPrice,
		"expected_points": report.ExpectedPoints,
		"roster_size":     len(report.Roster),
	}).Info("Optimization complete")

	return report, nil
}
