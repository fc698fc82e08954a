package engine

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"suiron/nondet"
	"suiron/term"
)

// UnknownAction controls what a call to a predicate with no clauses
// does.
type UnknownAction int

const (
	// UnknownFail makes the call fail silently, the conventional
	// Prolog behavior and the default.
	UnknownFail UnknownAction = iota
	// UnknownWarn makes the call fail and logs a warning, which is
	// usually a misspelled predicate name.
	UnknownWarn
	// UnknownError aborts the query with an ExistenceError.
	UnknownError
)

func (u UnknownAction) String() string {
	switch u {
	case UnknownFail:
		return "fail"
	case UnknownWarn:
		return "warn"
	case UnknownError:
		return "error"
	default:
		return "unknown"
	}
}

// Builtin is a predicate implemented in Go. It receives the call's raw
// (unwalked) arguments and proves itself by calling k with an extended
// environment for each solution.
type Builtin func(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise

// VM executes goals against a knowledge base. The zero value is not
// useful; construct one with NewVM.
type VM struct {
	kb       *KnowledgeBase
	builtins map[term.Atom]Builtin

	// Output is where print, print_list and nl write. Defaults to
	// standard output.
	Output io.Writer

	// Unknown selects the behavior of calls to undefined predicates.
	Unknown UnknownAction
}

// NewVM creates a VM over kb with the standard built-in predicates
// registered.
func NewVM(kb *KnowledgeBase) *VM {
	vm := &VM{
		kb:       kb,
		builtins: map[term.Atom]Builtin{},
		Output:   os.Stdout,
	}
	registerBuiltins(vm)
	return vm
}

// KB returns the knowledge base the VM solves against.
func (vm *VM) KB() *KnowledgeBase {
	return vm.kb
}

// Register installs (or overrides) a built-in predicate under name.
// Built-ins shadow knowledge-base clauses of any arity with the same
// functor.
func (vm *VM) Register(name string, b Builtin) {
	vm.builtins[term.Atom(name)] = b
}

// call proves name(args...) by dispatching to a built-in or, failing
// that, trying each knowledge-base clause for (name, arity) in
// insertion order. Each clause is activated on a fresh renaming so that
// recursive predicates never alias variables between activations, and
// the activation's alternatives promise is the cut parent for the
// clause body.
func (vm *VM) call(name term.Atom, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if b, ok := vm.builtins[name]; ok {
		return b(vm, args, env, k)
	}

	rules := vm.kb.Rules(name, len(args))
	if len(rules) == 0 {
		pi := Indicator{Name: name, Arity: len(args)}
		switch vm.Unknown {
		case UnknownWarn:
			logrus.WithField("predicate", pi).Warn("unknown predicate")
		case UnknownError:
			return nondet.Error(&ExistenceError{Indicator: pi})
		}
		return nondet.Bool(false)
	}

	goal := &term.Compound{Functor: name, Args: args}
	var p *nondet.Promise
	ks := make([]func() *nondet.Promise, len(rules))
	for i := range rules {
		r := rules[i]
		ks[i] = func() *nondet.Promise {
			head, body := r.Rename()
			env, ok := term.Unify(goal, head, env)
			if !ok {
				return nondet.Bool(false)
			}
			return body.Solve(vm, env, p, k)
		}
	}
	p = nondet.Delay(ks...)
	return p
}
