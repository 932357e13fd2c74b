package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelVariableDeclaration(t *testing.T) {
	m := NewModel("test")

	x := m.AddBinary("x")
	w := m.AddContinuous("w", 0, 1)

	assert.Equal(t, VarID(0), x)
	assert.Equal(t, VarID(1), w)
	assert.Len(t, m.Vars, 2)

	assert.Equal(t, Binary, m.Vars[x].Kind)
	assert.Equal(t, "x", m.Vars[x].Name)
	assert.Equal(t, Continuous, m.Vars[w].Kind)
	assert.Equal(t, 0.0, m.Vars[w].Lower)
	assert.Equal(t, 1.0, m.Vars[w].Upper)
}

func TestModelConstraintsAndObjective(t *testing.T) {
	m := NewModel("test")
	x := m.AddBinary("x")
	y := m.AddBinary("y")

	m.AddObjectiveTerm(x, 2.5)
	m.AddObjectiveTerm(y, -1)
	m.AddConstraint("pick_one", []Term{{Var: x, Coef: 1}, {Var: y, Coef: 1}}, EQ, 1)

	assert.True(t, m.Maximize)
	assert.Len(t, m.Objective, 2)

	c := m.Constraints[0]
	assert.Equal(t, "pick_one", c.Name)
	assert.Equal(t, EQ, c.Sense)
	assert.Equal(t, 1.0, c.RHS)
	assert.Len(t, c.Terms, 2)
}

func TestSolutionValueAccess(t *testing.T) {
	sol := &Solution{Values: []float64{1, 0, 0.999999, 0.3}, Objective: 42}

	assert.True(t, sol.IsSet(0))
	assert.False(t, sol.IsSet(1))
	assert.True(t, sol.IsSet(2))
	assert.False(t, sol.IsSet(3))
	assert.Equal(t, 0.3, sol.Value(3))
	assert.Equal(t, 42.0, sol.Objective)
}
