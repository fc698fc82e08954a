package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suiron/term"
)

func TestArith_Evaluation(t *testing.T) {
	vm := makeVM(t, ``)

	for _, tc := range []struct {
		query string
		want  term.Term
	}{
		{"$X = 1 + 2 * 3.", term.Integer(7)},
		{"$X = (1 + 2) * 3.", term.Integer(9)},
		{"$X = 10 - 3 - 2.", term.Integer(5)},
		{"$X = 7 / 2.", term.Integer(3)}, // integer division truncates
		{"$X = 7.0 / 2.", term.Float(3.5)},
		{"$X = 1 + 0.5.", term.Float(1.5)},
		{"$X = add(3, 4).", term.Integer(7)},
		{"$X = divide(13, 3, 3).", term.Integer(1)},
	} {
		sols := solveAll(t, vm, tc.query)
		assert.Len(t, sols, 1, tc.query)
		assert.Equal(t, tc.want, sols[0]["X"], tc.query)
	}
}

func TestArith_BoundVariablesInExpressions(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "$N = 5, $M = $N - 1.")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Integer(4), sols[0]["M"])
}

func TestArith_DivisionByZeroFailsGoal(t *testing.T) {
	vm := makeVM(t, ``)

	assert.Len(t, solveAll(t, vm, "$X = 1 / 0."), 0)
	assert.Len(t, solveAll(t, vm, "$X = 1.0 / 0."), 0)

	// The failure is local: the disjunction's other branch still runs.
	sols := solveAll(t, vm, "$X = 1 / 0; $X = ok.")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Atom("ok"), sols[0]["X"])
}

func TestArith_TypeErrorAbortsQuery(t *testing.T) {
	vm := makeVM(t, ``)

	g, err := ParseGoal("$X = 1 + foo.")
	assert.NoError(t, err)
	sols := vm.Solve(g)
	assert.False(t, sols.Next())
	assert.Error(t, sols.Err())
}

func TestArith_Join(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, `$X = join(Would you like, [coffee, ",", tea, or, juice], "?").`)
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Atom("Would you like coffee, tea or juice?"), sols[0]["X"])
}

func TestCompare_Numbers(t *testing.T) {
	vm := makeVM(t, ``)

	assert.Len(t, solveAll(t, vm, "3 > 2."), 1)
	assert.Len(t, solveAll(t, vm, "2 > 3."), 0)
	assert.Len(t, solveAll(t, vm, "2 <= 2."), 1)
	assert.Len(t, solveAll(t, vm, "3 == 3.0."), 1, "integer promotes to float for comparison")
	assert.Len(t, solveAll(t, vm, "3 != 3.0."), 0)
	assert.Len(t, solveAll(t, vm, "$X = 4, $X + 1 > 4."), 1)
}

func TestCompare_AtomsLexicographically(t *testing.T) {
	vm := makeVM(t, ``)

	assert.Len(t, solveAll(t, vm, "abc < abd."), 1)
	assert.Len(t, solveAll(t, vm, "abd < abc."), 0)
	assert.Len(t, solveAll(t, vm, "abc == abc."), 1)
	assert.Len(t, solveAll(t, vm, "abc != abc."), 0)
}

func TestCompare_IntroducesNoBindings(t *testing.T) {
	vm := makeVM(t, ``)

	// $X is still free after the comparison on $Y.
	sols := solveAll(t, vm, "$Y = 3, $Y > 2, $X = after.")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Atom("after"), sols[0]["X"])
	assert.Equal(t, term.Integer(3), sols[0]["Y"])
}
