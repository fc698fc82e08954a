package engine

import (
	"fmt"

	"suiron/term"
)

// Indicator identifies a predicate by functor name and arity, the key a
// knowledge base is indexed by.
type Indicator struct {
	Name  term.Atom
	Arity int
}

func (pi Indicator) String() string {
	return fmt.Sprintf("%s/%d", pi.Name, pi.Arity)
}

// Rule is a fact or rule: a head plus a body goal to prove. A fact is a
// Rule whose Body is Always{}.
type Rule struct {
	Head *term.Compound
	Body Goal
}

// KnowledgeBase holds the clauses a query is solved against. It is built
// up with AddRule before solving begins and is treated as read-only by
// the solver: clause lists are never mutated mid-query.
type KnowledgeBase struct {
	clauses map[Indicator][]*Rule
	order   []Indicator
}

// NewKnowledgeBase returns an empty knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{clauses: map[Indicator][]*Rule{}}
}

// AddRule appends r to the clause list for its head's indicator,
// preserving insertion order, which is the order the solver tries
// clauses in.
func (kb *KnowledgeBase) AddRule(r *Rule) {
	pi := Indicator{Name: r.Head.Functor, Arity: len(r.Head.Args)}
	if _, ok := kb.clauses[pi]; !ok {
		kb.order = append(kb.order, pi)
	}
	kb.clauses[pi] = append(kb.clauses[pi], r)
}

// Rules returns the clauses registered for (name, arity), in insertion
// order. The returned slice must not be mutated by the caller.
func (kb *KnowledgeBase) Rules(name term.Atom, arity int) []*Rule {
	return kb.clauses[Indicator{Name: name, Arity: arity}]
}

// Indicators returns every predicate indicator with at least one clause,
// in the order each was first defined.
func (kb *KnowledgeBase) Indicators() []Indicator {
	return kb.order
}
