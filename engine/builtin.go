package engine

import (
	"fmt"
	"strings"

	"suiron/nondet"
	"suiron/term"
)

func registerBuiltins(vm *VM) {
	vm.Register("append", biAppend)
	vm.Register("functor", biFunctor)
	vm.Register("print", biPrint)
	vm.Register("nl", biNL)
	vm.Register("print_list", biPrintList)
	vm.Register("include", biInclude)
	vm.Register("exclude", biExclude)
	vm.Register("count", biCount)

	vm.Register("unify", binary("unify", func(l, r term.Term) Goal {
		return Unification{Left: l, Right: r}
	}))
	vm.Register("equal", comparison("equal", OpEqual))
	vm.Register("not_equal", comparison("not_equal", OpNotEqual))
	vm.Register("less_than", comparison("less_than", OpLess))
	vm.Register("less_than_or_equal", comparison("less_than_or_equal", OpLessEqual))
	vm.Register("greater_than", comparison("greater_than", OpGreater))
	vm.Register("greater_than_or_equal", comparison("greater_than_or_equal", OpGreaterEqual))
}

// comparison adapts a comparison operator to its named predicate form,
// e.g. greater_than($X, 5).
func comparison(name term.Atom, op CompareOp) Builtin {
	return binary(name, func(l, r term.Term) Goal {
		return Comparison{Op: op, Left: l, Right: r}
	})
}

func binary(name term.Atom, mk func(l, r term.Term) Goal) Builtin {
	return func(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
		if len(args) != 2 {
			return nondet.Error(&ArityError{Name: name, Want: "2", Got: len(args)})
		}
		return mk(args[0], args[1]).Solve(vm, env, nil, k)
	}
}

// listElems materializes the elements of a list term, walking through
// bound tails. tail is nil for a proper (nil-terminated) list, and the
// walked non-list remainder otherwise — typically an unbound variable.
func listElems(t term.Term, env *term.Env) (elems []term.Term, tail term.Term) {
	for {
		w := term.Walk(t, env)
		l, ok := w.(*term.LinkedList)
		if !ok {
			return elems, w
		}
		elems = append(elems, l.Heads...)
		if l.Tail == nil {
			return elems, nil
		}
		t = l.Tail
	}
}

// biAppend is append(L1, L2, L3): L3 is the concatenation of L1 and L2.
// When L1 is a full list the result is deterministic; otherwise the
// splits of L3 are enumerated in order of increasing L1 length, as in
// standard Prolog.
func biAppend(_ *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if len(args) != 3 {
		return nondet.Error(&ArityError{Name: "append", Want: "3", Got: len(args)})
	}
	l1, l2, l3 := args[0], args[1], args[2]

	if elems, tail := listElems(l1, env); tail == nil {
		cat := concat(elems, term.Walk(l2, env))
		env, ok := term.Unify(l3, cat, env)
		if !ok {
			return nondet.Bool(false)
		}
		return k(env)
	}

	elems, tail := listElems(l3, env)
	if tail != nil && len(elems) == 0 {
		// Both L1 and L3 are open; there is no finite enumeration.
		return nondet.Error(&InstantiationError{Name: "append"})
	}

	alts := make([]func() *nondet.Promise, 0, len(elems)+1)
	for i := 0; i <= len(elems); i++ {
		i := i
		alts = append(alts, func() *nondet.Promise {
			prefix := term.NewList(elems[:i]...)
			var suffix term.Term
			if tail == nil {
				suffix = term.NewList(elems[i:]...)
			} else {
				suffix = term.NewListWithTail(tail, elems[i:]...)
			}
			env, ok := term.Unify(l1, prefix, env)
			if !ok {
				return nondet.Bool(false)
			}
			env, ok = term.Unify(l2, suffix, env)
			if !ok {
				return nondet.Bool(false)
			}
			return k(env)
		})
	}
	return nondet.Delay(alts...)
}

// concat builds the list whose elements are heads followed by whatever
// rest holds: a list's elements are spliced in, anything else becomes
// an open tail.
func concat(heads []term.Term, rest term.Term) term.Term {
	switch rest := rest.(type) {
	case *term.LinkedList:
		all := make([]term.Term, 0, len(heads)+len(rest.Heads))
		all = append(all, heads...)
		all = append(all, rest.Heads...)
		if rest.Tail == nil {
			return term.NewList(all...)
		}
		return term.NewListWithTail(rest.Tail, all...)
	default:
		return term.NewListWithTail(rest, heads...)
	}
}

// biFunctor is functor(T, F, A). With T bound it projects the functor
// and arity; with T unbound and F, A bound it constructs a compound
// whose arguments are fresh, distinct logic variables.
func biFunctor(_ *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if len(args) != 3 {
		return nondet.Error(&ArityError{Name: "functor", Want: "3", Got: len(args)})
	}

	unifyBoth := func(f, a term.Term) *nondet.Promise {
		env, ok := term.Unify(args[1], f, env)
		if !ok {
			return nondet.Bool(false)
		}
		env, ok = term.Unify(args[2], a, env)
		if !ok {
			return nondet.Bool(false)
		}
		return k(env)
	}

	switch t := term.Walk(args[0], env).(type) {
	case *term.Compound:
		return unifyBoth(t.Functor, term.Integer(t.Arity()))
	case term.Atom:
		return unifyBoth(t, term.Integer(0))
	case term.Integer, term.Float:
		return unifyBoth(t, term.Integer(0))
	case term.Variable:
		f, ok := term.Walk(args[1], env).(term.Atom)
		if !ok {
			return nondet.Error(&InstantiationError{Name: "functor"})
		}
		a, ok := term.Walk(args[2], env).(term.Integer)
		if !ok || a < 0 {
			return nondet.Error(&InstantiationError{Name: "functor"})
		}
		if a == 0 {
			env, ok := term.Unify(args[0], f, env)
			if !ok {
				return nondet.Bool(false)
			}
			return k(env)
		}
		fresh := make([]term.Term, a)
		for i := range fresh {
			fresh[i] = term.NewVariable("_")
		}
		env, ok2 := term.Unify(args[0], term.NewCompound(f, fresh...), env)
		if !ok2 {
			return nondet.Bool(false)
		}
		return k(env)
	default:
		return nondet.Error(&TypeError{Expected: "compound, atom or number", Culprit: t})
	}
}

// biPrint writes its walked arguments to the VM's output, separated by
// commas, and always succeeds. If the first argument is an atom
// containing %s markers, it is treated as a format string and the
// markers are replaced by the remaining arguments in order.
func biPrint(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if len(args) == 0 {
		return k(env)
	}

	if f, ok := term.Walk(args[0], env).(term.Atom); ok && strings.Contains(string(f), "%s") && len(args) > 1 {
		out := string(f)
		for _, a := range args[1:] {
			out = strings.Replace(out, "%s", term.Ground(a, env).String(), 1)
		}
		fmt.Fprint(vm.Output, out)
		return k(env)
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = term.Ground(a, env).String()
	}
	fmt.Fprint(vm.Output, strings.Join(parts, ", "))
	return k(env)
}

// biNL writes a newline and always succeeds.
func biNL(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if len(args) != 0 {
		return nondet.Error(&ArityError{Name: "nl", Want: "0", Got: len(args)})
	}
	fmt.Fprintln(vm.Output)
	return k(env)
}

// biPrintList writes a list in surface syntax and always succeeds.
func biPrintList(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if len(args) != 1 {
		return nondet.Error(&ArityError{Name: "print_list", Want: "1", Got: len(args)})
	}
	l, ok := term.Ground(args[0], env).(*term.LinkedList)
	if !ok {
		return nondet.Error(&TypeError{Expected: "list", Culprit: term.Walk(args[0], env)})
	}
	fmt.Fprintln(vm.Output, l)
	return k(env)
}

// biInclude is include(Filter, InList, OutList): OutList holds the
// elements of InList that pass the filter.
func biInclude(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	return filter(vm, "include", args, env, k, true)
}

// biExclude is exclude(Filter, InList, OutList): OutList holds the
// elements of InList that do not pass the filter.
func biExclude(vm *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	return filter(vm, "exclude", args, env, k, false)
}

// filter applies the include/exclude logic. A compound or constant
// filter keeps an element when a fresh copy of the filter unifies with
// it; an atom filter names a predicate, and keeps an element when
// predicate(element) has at least one solution. Trial bindings are
// discarded either way.
func filter(vm *VM, name term.Atom, args []term.Term, env *term.Env, k Cont, keep bool) *nondet.Promise {
	if len(args) != 3 {
		return nondet.Error(&ArityError{Name: name, Want: "3", Got: len(args)})
	}

	elems, tail := listElems(args[1], env)
	if tail != nil {
		return nondet.Error(&InstantiationError{Name: name})
	}

	pred := term.Walk(args[0], env)
	matches := func(elem term.Term) (bool, error) {
		if f, ok := pred.(term.Atom); ok {
			p := vm.call(f, []term.Term{elem}, env, func(*term.Env) *nondet.Promise {
				return nondet.Bool(true)
			})
			return p.Force()
		}
		_, ok := term.Unify(renamer{}.term(pred), elem, env)
		return ok, nil
	}

	var out []term.Term
	for _, e := range elems {
		ok, err := matches(e)
		if err != nil {
			return nondet.Error(err)
		}
		if ok == keep {
			out = append(out, e)
		}
	}

	env, ok := term.Unify(args[2], term.NewList(out...), env)
	if !ok {
		return nondet.Bool(false)
	}
	return k(env)
}

// biCount is count(List, N): N is the number of elements in List.
func biCount(_ *VM, args []term.Term, env *term.Env, k Cont) *nondet.Promise {
	if len(args) != 2 {
		return nondet.Error(&ArityError{Name: "count", Want: "2", Got: len(args)})
	}
	elems, tail := listElems(args[0], env)
	if tail != nil {
		return nondet.Error(&InstantiationError{Name: "count"})
	}
	env, ok := term.Unify(args[1], term.Integer(len(elems)), env)
	if !ok {
		return nondet.Bool(false)
	}
	return k(env)
}
