package engine

import "suiron/term"

// Rename produces a copy of the rule with fresh variable identities,
// shared between head and body. Every activation of a clause by the
// solver goes through here; without it, recursive predicates would
// alias variable ids between activations and produce spurious bindings.
func (r *Rule) Rename() (*term.Compound, Goal) {
	rn := renamer{}
	return rn.compound(r.Head), rn.goal(r.Body)
}

// renamer maps old variable ids to their fresh replacements within one
// clause activation.
type renamer map[int64]term.Variable

func (rn renamer) term(t term.Term) term.Term {
	switch t := t.(type) {
	case term.Variable:
		fresh, ok := rn[t.ID()]
		if !ok {
			fresh = term.NewVariable(t.Name)
			rn[t.ID()] = fresh
		}
		return fresh
	case *term.Compound:
		return rn.compound(t)
	case *term.LinkedList:
		heads := make([]term.Term, len(t.Heads))
		for i, h := range t.Heads {
			heads[i] = rn.term(h)
		}
		var tail term.Term
		if t.Tail != nil {
			tail = rn.term(t.Tail)
		}
		return &term.LinkedList{Heads: heads, Tail: tail, Bar: t.Bar}
	default:
		// Atoms, numbers and anonymous variables rename to themselves.
		// An anonymous variable is never bound, so its identity does
		// not need refreshing per activation.
		return t
	}
}

func (rn renamer) terms(ts []term.Term) []term.Term {
	out := make([]term.Term, len(ts))
	for i, t := range ts {
		out[i] = rn.term(t)
	}
	return out
}

func (rn renamer) compound(c *term.Compound) *term.Compound {
	return &term.Compound{Functor: c.Functor, Args: rn.terms(c.Args)}
}

func (rn renamer) goal(g Goal) Goal {
	switch g := g.(type) {
	case Call:
		return Call{Functor: g.Functor, Args: rn.terms(g.Args)}
	case Conjunction:
		return Conjunction{Goals: rn.goals(g.Goals)}
	case Disjunction:
		return Disjunction{Goals: rn.goals(g.Goals)}
	case Not:
		return Not{Goal: rn.goal(g.Goal)}
	case Unification:
		return Unification{Left: rn.term(g.Left), Right: rn.term(g.Right)}
	case Comparison:
		return Comparison{Op: g.Op, Left: rn.term(g.Left), Right: rn.term(g.Right)}
	default:
		// Cut, Always and Fail carry no terms.
		return g
	}
}

func (rn renamer) goals(gs []Goal) []Goal {
	out := make([]Goal, len(gs))
	for i, g := range gs {
		out[i] = rn.goal(g)
	}
	return out
}
