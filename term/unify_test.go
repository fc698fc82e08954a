package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifyAtoms(t *testing.T) {
	_, ok := Unify(Atom("a"), Atom("a"), nil)
	assert.True(t, ok)

	_, ok = Unify(Atom("a"), Atom("b"), nil)
	assert.False(t, ok)
}

func TestUnifyVariableBinds(t *testing.T) {
	x := NewVariable("X")
	env, ok := Unify(x, Atom("june"), nil)
	assert.True(t, ok)
	assert.Equal(t, Atom("june"), Walk(x, env))
}

func TestUnifySameVariable(t *testing.T) {
	x := NewVariable("X")
	env, ok := Unify(x, x, nil)
	assert.True(t, ok)
	assert.Nil(t, env)
}

func TestUnifyIntegerFloatPromotion(t *testing.T) {
	_, ok := Unify(Integer(7), Float(7), nil)
	assert.True(t, ok)

	_, ok = Unify(Integer(7), Float(7.5), nil)
	assert.False(t, ok)
}

func TestUnifyAnonymousMatchesAnything(t *testing.T) {
	env, ok := Unify(NewAnonymous(), NewCompound("f", Atom("a")), nil)
	assert.True(t, ok)
	assert.Nil(t, env, "anonymous variable introduces no binding")
}

func TestUnifyCompound(t *testing.T) {
	x := NewVariable("X")
	a := NewCompound("mother", Atom("june"), x)
	b := NewCompound("mother", Atom("june"), Atom("theodore"))

	env, ok := Unify(a, b, nil)
	assert.True(t, ok)
	assert.Equal(t, Atom("theodore"), Walk(x, env))

	c := NewCompound("mother", Atom("june"))
	_, ok = Unify(a, c, nil)
	assert.False(t, ok, "different arity must fail")
}

func TestUnifyListDecompose(t *testing.T) {
	h, tl := NewVariable("H"), NewVariable("T")
	pattern := NewListWithTail(tl, h)
	list := NewList(Atom("a"), Atom("b"), Atom("c"), Atom("d"))

	env, ok := Unify(list, pattern, nil)
	assert.True(t, ok)
	assert.Equal(t, Atom("a"), Walk(h, env))
	assert.True(t, Equal(NewList(Atom("b"), Atom("c"), Atom("d")), Walk(tl, env)))
}

func TestUnifyEmptyList(t *testing.T) {
	_, ok := Unify(Empty(), Empty(), nil)
	assert.True(t, ok)

	_, ok = Unify(Empty(), NewList(Atom("a")), nil)
	assert.False(t, ok)

	tl := NewVariable("T")
	env, ok := Unify(Empty(), tl, nil)
	assert.True(t, ok)
	assert.True(t, Equal(Empty(), Walk(tl, env)))
}

func TestUnifyUnbound(t *testing.T) {
	_, ok := Unify(NewVariable("X"), NewVariable("Y"), nil)
	assert.True(t, ok)
}
