// Package milp holds a solver-agnostic description of a mixed-integer
// linear program and the adapter that hands it to lp_solve. Models are
// plain data: built once, never mutated, safe to pass around by value.
package milp

// VarID indexes a variable within its model's declaration order.
type VarID int

// VarKind is the domain of a variable.
type VarKind int

const (
	// Binary variables take values in {0, 1}.
	Binary VarKind = iota
	// Continuous variables take values in [Lower, Upper].
	Continuous
)

// Sense is the comparison direction of a constraint.
type Sense int

const (
	LE Sense = iota
	GE
	EQ
)

// Variable declares one decision variable.
type Variable struct {
	ID    VarID
	Name  string
	Kind  VarKind
	Lower float64
	Upper float64
}

// Term is one coefficient*variable entry of a linear expression.
type Term struct {
	Var  VarID
	Coef float64
}

// Constraint is a named linear constraint: sum(Terms) Sense RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Model is a complete integer-program description ready for a solver.
type Model struct {
	Name        string
	Vars        []Variable
	Objective   []Term
	Maximize    bool
	Constraints []Constraint
}

// NewModel returns an empty model with the given name.
func NewModel(name string) *Model {
	return &Model{Name: name, Maximize: true}
}

// AddBinary declares a binary variable and returns its ID.
func (m *Model) AddBinary(name string) VarID {
	id := VarID(len(m.Vars))
	m.Vars = append(m.Vars, Variable{ID: id, Name: name, Kind: Binary, Lower: 0, Upper: 1})
	return id
}

// AddContinuous declares a bounded continuous variable and returns its ID.
func (m *Model) AddContinuous(name string, lower, upper float64) VarID {
	id := VarID(len(m.Vars))
	m.Vars = append(m.Vars, Variable{ID: id, Name: name, Kind: Continuous, Lower: lower, Upper: upper})
	return id
}

// AddObjectiveTerm appends coef*var to the objective expression.
func (m *Model) AddObjectiveTerm(v VarID, coef float64) {
	m.Objective = append(m.Objective, Term{Var: v, Coef: coef})
}

// AddConstraint appends a named linear constraint.
func (m *Model) AddConstraint(name string, terms []Term, sense Sense, rhs float64) {
	m.Constraints = append(m.Constraints, Constraint{Name: name, Terms: terms, Sense: sense, RHS: rhs})
}

// Solution is a complete variable assignment returned by a solver.
type Solution struct {
	// Values holds one value per declared variable, indexed by VarID.
	Values []float64
	// Objective is the solver's reported optimal objective value.
	Objective float64
}

// Value returns the solved value of v.
func (s *Solution) Value(v VarID) float64 {
	return s.Values[v]
}

// IsSet reports whether a binary variable solved to 1.
func (s *Solution) IsSet(v VarID) bool {
	return s.Values[v] > 0.5
}
