package milp

import (
	"fmt"

	"github.com/draffensperger/golp"
)

// LPSolver solves models with lp_solve via the golp bindings.
type LPSolver struct {
	// Verbose raises lp_solve's reporting level for debugging runs.
	Verbose bool
}

// NewLPSolver returns an lp_solve backed solver.
func NewLPSolver(verbose bool) *LPSolver {
	return &LPSolver{Verbose: verbose}
}

// Solve translates the model into an lp_solve problem, solves it, and maps
// the result back. Blocks until the solve completes.
func (s *LPSolver) Solve(model *Model) (*Solution, error) {
	lp := golp.NewLP(0, len(model.Vars))
	if s.Verbose {
		lp.SetVerboseLevel(golp.IMPORTANT)
	} else {
		lp.SetVerboseLevel(golp.NEUTRAL)
	}

	for i, v := range model.Vars {
		lp.SetColName(i, v.Name)
		if v.Kind == Binary {
			lp.SetInt(i, true)
		}
	}

	// lp_solve columns default to [0, +inf); bounds are encoded as rows.
	for i, v := range model.Vars {
		unit := []golp.Entry{{Col: i, Val: 1}}
		switch v.Kind {
		case Binary:
			if err := lp.AddConstraintSparse(unit, golp.LE, 1); err != nil {
				return nil, fmt.Errorf("failed to bound variable %s: %w", v.Name, err)
			}
		case Continuous:
			if err := lp.AddConstraintSparse(unit, golp.LE, v.Upper); err != nil {
				return nil, fmt.Errorf("failed to bound variable %s: %w", v.Name, err)
			}
			if v.Lower > 0 {
				if err := lp.AddConstraintSparse(unit, golp.GE, v.Lower); err != nil {
					return nil, fmt.Errorf("failed to bound variable %s: %w", v.Name, err)
				}
			}
		}
	}

	for _, c := range model.Constraints {
		entries := make([]golp.Entry, len(c.Terms))
		for i, t := range c.Terms {
			entries[i] = golp.Entry{Col: int(t.Var), Val: t.Coef}
		}
		if err := lp.AddConstraintSparse(entries, senseToGolp(c.Sense), c.RHS); err != nil {
			return nil, fmt.Errorf("failed to add constraint %s: %w", c.Name, err)
		}
	}

	obj := make([]float64, len(model.Vars))
	for _, t := range model.Objective {
		obj[t.Var] += t.Coef
	}
	lp.SetObjFn(obj)
	if model.Maximize {
		lp.SetMaximize()
	}

	status := lp.Solve()
	switch status {
	case golp.OPTIMAL, golp.SUBOPTIMAL:
		values := lp.Variables()
		if len(values) != len(model.Vars) {
			return nil, fmt.Errorf("solver returned %d values for %d variables", len(values), len(model.Vars))
		}
		return &Solution{Values: values, Objective: lp.Objective()}, nil
	case golp.INFEASIBLE:
		return nil, ErrInfeasible
	case golp.UNBOUNDED:
		return nil, ErrUnbounded
	default:
		return nil, fmt.Errorf("lp_solve failed with status %d", int(status))
	}
}

func senseToGolp(s Sense) golp.ConstraintType {
	switch s {
	case GE:
		return golp.GE
	case EQ:
		return golp.EQ
	default:
		return golp.LE
	}
}
