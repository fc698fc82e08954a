package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"suiron/term"
)

func TestAppend_Concatenates(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "append([1, 2], [3, 4], $X).")
	assert.Len(t, sols, 1)
	assert.Equal(t, "[1, 2, 3, 4]", sols[0]["X"].String())
}

func TestAppend_EnumeratesSplits(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "append($A, $B, [1, 2]).")
	assert.Len(t, sols, 3)
	assert.Equal(t, "[]", sols[0]["A"].String())
	assert.Equal(t, "[1, 2]", sols[0]["B"].String())
	assert.Equal(t, "[1]", sols[1]["A"].String())
	assert.Equal(t, "[2]", sols[1]["B"].String())
	assert.Equal(t, "[1, 2]", sols[2]["A"].String())
	assert.Equal(t, "[]", sols[2]["B"].String())
}

func TestAppend_ChecksConcatenation(t *testing.T) {
	vm := makeVM(t, ``)

	assert.Len(t, solveAll(t, vm, "append([1], [2], [1, 2])."), 1)
	assert.Len(t, solveAll(t, vm, "append([1], [2], [2, 1])."), 0)
}

func TestFunctor_Projects(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "functor(mother(June, Theodore), $F, $A).")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Atom("mother"), sols[0]["F"])
	assert.Equal(t, term.Integer(2), sols[0]["A"])

	sols = solveAll(t, vm, "functor(plain, $F, $A).")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Atom("plain"), sols[0]["F"])
	assert.Equal(t, term.Integer(0), sols[0]["A"])
}

func TestFunctor_Constructs(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "functor($T, foo, 2).")
	assert.Len(t, sols, 1)
	c, ok := sols[0]["T"].(*term.Compound)
	assert.True(t, ok)
	assert.Equal(t, term.Atom("foo"), c.Functor)
	assert.Equal(t, 2, c.Arity())
	_, unbound := c.Args[0].(term.Variable)
	assert.True(t, unbound, "constructed arguments are fresh variables")
}

func TestPrintAndNL(t *testing.T) {
	var buf bytes.Buffer
	vm := makeVM(t, ``)
	vm.Output = &buf

	sols := solveAll(t, vm, "$X = world, print(hello, $X), nl.")
	assert.Len(t, sols, 1)
	assert.Equal(t, "hello, world\n", buf.String())
}

func TestPrint_FormatString(t *testing.T) {
	var buf bytes.Buffer
	vm := makeVM(t, ``)
	vm.Output = &buf

	sols := solveAll(t, vm, `print("%s likes %s.", June, cake).`)
	assert.Len(t, sols, 1)
	assert.Equal(t, "June likes cake.", buf.String())
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	vm := makeVM(t, ``)
	vm.Output = &buf

	sols := solveAll(t, vm, "print_list([a, b, c]).")
	assert.Len(t, sols, 1)
	assert.Equal(t, "[a, b, c]\n", buf.String())
}

func TestIncludeExclude_PatternFilter(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "include(female($_), [female(June), male(Henry), female(Sarah)], $Out).")
	assert.Len(t, sols, 1)
	assert.Equal(t, "[female(June), female(Sarah)]", sols[0]["Out"].String())

	sols = solveAll(t, vm, "exclude(female($_), [female(June), male(Henry), female(Sarah)], $Out).")
	assert.Len(t, sols, 1)
	assert.Equal(t, "[male(Henry)]", sols[0]["Out"].String())
}

func TestIncludeExclude_PredicateFilter(t *testing.T) {
	vm := makeVM(t, `
		female(June).
		female(Sarah).
	`)

	sols := solveAll(t, vm, "include(female, [June, Henry, Sarah], $Out).")
	assert.Len(t, sols, 1)
	assert.Equal(t, "[June, Sarah]", sols[0]["Out"].String())

	sols = solveAll(t, vm, "exclude(female, [June, Henry, Sarah], $Out).")
	assert.Len(t, sols, 1)
	assert.Equal(t, "[Henry]", sols[0]["Out"].String())
}

func TestCount(t *testing.T) {
	vm := makeVM(t, ``)

	sols := solveAll(t, vm, "count([a, b, c], $N).")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Integer(3), sols[0]["N"])

	sols = solveAll(t, vm, "count([], $N).")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Integer(0), sols[0]["N"])
}

func TestNamedComparisons(t *testing.T) {
	vm := makeVM(t, ``)

	assert.Len(t, solveAll(t, vm, "greater_than(5, 2)."), 1)
	assert.Len(t, solveAll(t, vm, "greater_than(2, 5)."), 0)
	assert.Len(t, solveAll(t, vm, "less_than_or_equal(2, 2)."), 1)
	assert.Len(t, solveAll(t, vm, "equal(3, 3.0)."), 1)
	assert.Len(t, solveAll(t, vm, "not_equal(a, b)."), 1)
	assert.Len(t, solveAll(t, vm, "unify($X, 5), greater_than($X, 4)."), 1)
}

func TestBuiltin_ArityErrorAbortsQuery(t *testing.T) {
	vm := makeVM(t, ``)

	g, err := ParseGoal("count([a]).")
	assert.NoError(t, err)
	sols := vm.Solve(g)
	assert.False(t, sols.Next())
	assert.Error(t, sols.Err())
}

func TestRegister_HostBuiltin(t *testing.T) {
	vm := makeVM(t, ``)
	vm.Register("always_42", binary("always_42", func(l, r term.Term) Goal {
		return Unification{Left: l, Right: term.Integer(42)}
	}))

	sols := solveAll(t, vm, "always_42($X, ignored).")
	assert.Len(t, sols, 1)
	assert.Equal(t, term.Integer(42), sols[0]["X"])
}
