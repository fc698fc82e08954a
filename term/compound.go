package term

import (
	"fmt"
	"strings"
)

// Compound is a compound term: a functor atom plus an ordered argument
// tuple. Its arity is len(Args); construction that would let the two
// diverge is a parse error, not a representable Compound.
type Compound struct {
	Functor Atom
	Args    []Term
}

// NewCompound builds a compound term. Arity is always len(args).
func NewCompound(functor Atom, args ...Term) *Compound {
	return &Compound{Functor: functor, Args: args}
}

func (*Compound) isTerm() {}

// Arity returns the number of arguments.
func (c *Compound) Arity() int {
	return len(c.Args)
}

func (c *Compound) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Functor, strings.Join(args, ", "))
}
