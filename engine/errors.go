package engine

import (
	"errors"
	"fmt"

	"suiron/term"
)

// errDivisionByZero makes a division goal fail instead of aborting the
// query; it never escapes the solver.
var errDivisionByZero = errors.New("division by zero")

// TypeError reports a built-in applied to a walked term of the wrong
// kind, e.g. arithmetic on an atom. It aborts the current query.
type TypeError struct {
	Expected string
	Culprit  term.Term
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: expected %s, found %s", e.Expected, e.Culprit)
}

// ArityError reports a built-in called with the wrong number of
// arguments. It aborts the current query.
type ArityError struct {
	Name term.Atom
	Want string
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: requires %s arguments, got %d", e.Name, e.Want, e.Got)
}

// InstantiationError reports a built-in that needed a bound term where
// an unbound variable was found.
type InstantiationError struct {
	Name term.Atom
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("%s: arguments are not sufficiently instantiated", e.Name)
}

// ExistenceError reports a call to a predicate with no clauses, raised
// only when the VM's Unknown action is UnknownError.
type ExistenceError struct {
	Indicator Indicator
}

func (e *ExistenceError) Error() string {
	return fmt.Sprintf("unknown predicate: %s", e.Indicator)
}
