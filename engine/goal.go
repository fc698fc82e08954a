package engine

import (
	"errors"
	"fmt"
	"strings"

	"suiron/nondet"
	"suiron/term"
)

// Cont is a solver continuation: given the environment produced by a
// solution, it decides (by its return value) whether the search should
// stop (true) or keep backtracking for another solution (false).
type Cont func(*term.Env) *nondet.Promise

// Goal is something the solver can try to prove. cp is the cut parent:
// the promise holding the alternative clauses of the enclosing clause
// activation, which a "!" in this goal commits to. Goals that spawn a
// fresh cut scope (a predicate call, a negation) ignore the incoming cp
// and establish their own.
type Goal interface {
	fmt.Stringer
	Solve(vm *VM, env *term.Env, cp *nondet.Promise, k Cont) *nondet.Promise
}

// Call invokes a predicate by functor and argument list, dispatching to
// either a registered built-in or the knowledge base.
type Call struct {
	Functor term.Atom
	Args    []term.Term
}

// NewCall builds a Call goal from a compound term's functor and args.
func NewCall(t *term.Compound) Call {
	return Call{Functor: t.Functor, Args: t.Args}
}

func (c Call) String() string {
	if len(c.Args) == 0 {
		return string(c.Functor)
	}
	return (&term.Compound{Functor: c.Functor, Args: c.Args}).String()
}

func (c Call) Solve(vm *VM, env *term.Env, _ *nondet.Promise, k Cont) *nondet.Promise {
	return vm.call(c.Functor, c.Args, env, k)
}

// Conjunction is an ordered sequence of subgoals, all of which must
// succeed, left to right: "g1, g2, ..., gk".
type Conjunction struct {
	Goals []Goal
}

func (c Conjunction) String() string {
	parts := make([]string, len(c.Goals))
	for i, g := range c.Goals {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}

func (c Conjunction) Solve(vm *VM, env *term.Env, cp *nondet.Promise, k Cont) *nondet.Promise {
	if len(c.Goals) == 0 {
		return k(env)
	}
	head, rest := c.Goals[0], Conjunction{Goals: c.Goals[1:]}
	return head.Solve(vm, env, cp, func(env *term.Env) *nondet.Promise {
		return rest.Solve(vm, env, cp, k)
	})
}

// Disjunction tries each subgoal in turn, in source order: "g1; g2; ...".
type Disjunction struct {
	Goals []Goal
}

func (d Disjunction) String() string {
	parts := make([]string, len(d.Goals))
	for i, g := range d.Goals {
		parts[i] = g.String()
	}
	return strings.Join(parts, "; ")
}

func (d Disjunction) Solve(vm *VM, env *term.Env, cp *nondet.Promise, k Cont) *nondet.Promise {
	alts := make([]func() *nondet.Promise, len(d.Goals))
	for i, g := range d.Goals {
		g := g
		alts[i] = func() *nondet.Promise {
			return g.Solve(vm, env, cp, k)
		}
	}
	return nondet.Delay(alts...)
}

// Not is negation-as-failure: "not(g)" succeeds once, without binding
// anything, iff g has zero solutions.
type Not struct {
	Goal Goal
}

func (n Not) String() string {
	return fmt.Sprintf("not(%s)", n.Goal)
}

func (n Not) Solve(vm *VM, env *term.Env, _ *nondet.Promise, k Cont) *nondet.Promise {
	// The inner proof runs to completion here, in its own cut scope;
	// none of its bindings survive either way.
	inner := n.Goal.Solve(vm, env, nil, func(*term.Env) *nondet.Promise {
		return nondet.Bool(true)
	})
	found, err := inner.Force()
	if err != nil {
		return nondet.Error(err)
	}
	if found {
		return nondet.Bool(false)
	}
	return k(env)
}

// Cut is the "!" goal: it succeeds once, and on backtracking commits to
// everything chosen since the enclosing clause was entered.
type Cut struct{}

func (Cut) String() string { return "!" }

func (Cut) Solve(_ *VM, env *term.Env, cp *nondet.Promise, k Cont) *nondet.Promise {
	return nondet.Cut(cp, func() *nondet.Promise {
		return k(env)
	})
}

// Always succeeds exactly once without binding anything. It is the body
// of a fact.
type Always struct{}

func (Always) String() string { return "true" }

func (Always) Solve(_ *VM, env *term.Env, _ *nondet.Promise, k Cont) *nondet.Promise {
	return k(env)
}

// Fail never succeeds. Written "fail" in source.
type Fail struct{}

func (Fail) String() string { return "fail" }

func (Fail) Solve(_ *VM, _ *term.Env, _ *nondet.Promise, _ Cont) *nondet.Promise {
	return nondet.Bool(false)
}

// Unification is the "L = R" goal. If either side, once walked, has the
// shape of an arithmetic expression (a compound built from +, -, * or /,
// or one of the named function forms like add and join), that side is
// evaluated to a constant before the structural unify — this is how
// Suiron expresses arithmetic assignment without a separate "is"
// operator.
type Unification struct {
	Left, Right term.Term
}

func (u Unification) String() string {
	return fmt.Sprintf("%s = %s", u.Left, u.Right)
}

func (u Unification) Solve(_ *VM, env *term.Env, _ *nondet.Promise, k Cont) *nondet.Promise {
	l, err := evalArithIfExpr(u.Left, env)
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			return nondet.Bool(false)
		}
		return nondet.Error(err)
	}
	r, err := evalArithIfExpr(u.Right, env)
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			return nondet.Bool(false)
		}
		return nondet.Error(err)
	}
	env2, ok := term.Unify(l, r, env)
	if !ok {
		return nondet.Bool(false)
	}
	return k(env2)
}

// CompareOp is a comparison operator.
type CompareOp int

const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
)

func (op CompareOp) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Comparison is a comparison goal: numbers compare by value (with
// integer-to-float promotion), atoms compare lexicographically. It binds
// nothing and succeeds at most once.
type Comparison struct {
	Op          CompareOp
	Left, Right term.Term
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}

func (c Comparison) Solve(_ *VM, env *term.Env, _ *nondet.Promise, k Cont) *nondet.Promise {
	ok, err := compare(c.Op, c.Left, c.Right, env)
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			return nondet.Bool(false)
		}
		return nondet.Error(err)
	}
	if !ok {
		return nondet.Bool(false)
	}
	return k(env)
}
