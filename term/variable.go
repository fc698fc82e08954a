package term

import (
	"fmt"
	"sync/atomic"
)

var idCounter int64

func nextID() int64 {
	return atomic.AddInt64(&idCounter, 1)
}

// Variable is a logic variable. Its identity is id, never Name: two
// variables parsed from occurrences of "$X" in different clauses (or in
// two renamings of the same clause) carry the same Name but distinct ids,
// and are therefore distinct for binding purposes.
type Variable struct {
	Name string
	id   int64
}

// NewVariable creates a fresh logic variable with the given printable name.
func NewVariable(name string) Variable {
	return Variable{Name: name, id: nextID()}
}

func (Variable) isTerm() {}

// ID returns the variable's unique identity.
func (v Variable) ID() int64 {
	return v.id
}

func (v Variable) String() string {
	if v.Name != "" {
		return "$" + v.Name
	}
	return fmt.Sprintf("$_G%d", v.id)
}

// Anonymous is the wildcard variable, written "$_" in source. It unifies
// with anything and is never bound: every occurrence of "$_" is a fresh,
// independent Anonymous value, so two occurrences never share identity.
type Anonymous struct {
	id int64
}

// NewAnonymous creates a fresh anonymous variable.
func NewAnonymous() Anonymous {
	return Anonymous{id: nextID()}
}

func (Anonymous) isTerm() {}

func (Anonymous) String() string {
	return "$_"
}
