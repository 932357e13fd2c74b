package milp

import "errors"

// ErrInfeasible indicates the model admits no feasible assignment.
var ErrInfeasible = errors.New("model is infeasible")

// ErrUnbounded indicates the objective can grow without limit.
var ErrUnbounded = errors.New("model is unbounded")

// Solver solves a model to optimality or reports why it cannot.
// Implementations are opaque black boxes: callers make no assumptions
// about algorithm or runtime. Infeasibility and unboundedness surface as
// ErrInfeasible and ErrUnbounded; any other error is an internal solver
// failure propagated unchanged.
type Solver interface {
	Solve(model *Model) (*Solution, error)
}
