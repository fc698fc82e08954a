package term

// Unify performs structural unification of a and b under env, returning
// the extended environment on success or (env, false) on failure. Both
// sides are walked through env before being compared.
//
// Suiron does not perform an occurs-check: binding a variable to a term
// that (through walked chains) contains that same variable is permitted,
// matching the original implementation's behavior. A program that relies
// on this will build a cyclic term and loop or stack-overflow while
// grounding it; that is the program's bug, not the unifier's.
func Unify(a, b Term, env *Env) (*Env, bool) {
	a, b = Walk(a, env), Walk(b, env)

	if _, ok := a.(Anonymous); ok {
		return env, true
	}
	if _, ok := b.(Anonymous); ok {
		return env, true
	}

	if av, ok := a.(Variable); ok {
		if bv, ok := b.(Variable); ok && av.id == bv.id {
			return env, true
		}
		return env.Extend(av, b), true
	}
	if bv, ok := b.(Variable); ok {
		return env.Extend(bv, a), true
	}

	switch a := a.(type) {
	case Atom:
		b, ok := b.(Atom)
		return env, ok && a == b
	case Integer:
		switch b := b.(type) {
		case Integer:
			return env, a == b
		case Float:
			return env, Float(a) == b
		default:
			return env, false
		}
	case Float:
		switch b := b.(type) {
		case Float:
			return env, a == b
		case Integer:
			return env, a == Float(b)
		default:
			return env, false
		}
	case *Compound:
		b, ok := b.(*Compound)
		if !ok || a.Functor != b.Functor || len(a.Args) != len(b.Args) {
			return env, false
		}
		for i := range a.Args {
			var ok bool
			env, ok = Unify(a.Args[i], b.Args[i], env)
			if !ok {
				return env, false
			}
		}
		return env, true
	case *LinkedList:
		b, ok := b.(*LinkedList)
		if !ok {
			return env, false
		}
		return unifyLists(a, b, env)
	default:
		return env, false
	}
}

// unifyLists peels one head off each list at a time, threading env,
// until one side runs out of heads. Once a side is out of heads, an
// open tail (an unbound variable, typically) unifies with whatever the
// other side has left; a closed (nil) tail means that side is really
// "[]", which only unifies with "[]" or an open tail on the other side.
func unifyLists(a, b *LinkedList, env *Env) (*Env, bool) {
	for {
		switch {
		case len(a.Heads) == 0 && len(b.Heads) == 0:
			ta, tb := a.Tail, b.Tail
			if ta == nil && tb == nil {
				return env, true
			}
			if ta == nil {
				ta = Empty()
			}
			if tb == nil {
				tb = Empty()
			}
			return Unify(ta, tb, env)
		case len(a.Heads) == 0:
			if a.Tail == nil {
				return env, false
			}
			return Unify(a.Tail, b, env)
		case len(b.Heads) == 0:
			if b.Tail == nil {
				return env, false
			}
			return Unify(a, b.Tail, env)
		default:
			var ok bool
			env, ok = Unify(a.Heads[0], b.Heads[0], env)
			if !ok {
				return env, false
			}
			a = &LinkedList{Heads: a.Heads[1:], Tail: a.Tail, Bar: a.Bar}
			b = &LinkedList{Heads: b.Heads[1:], Tail: b.Tail, Bar: b.Bar}
		}
	}
}
