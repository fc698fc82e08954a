package engine

import "suiron/term"

// compare resolves a comparison goal. Both sides are evaluated as
// arithmetic expressions first, so "$X + 1 > 5" works without a
// separate evaluation goal. Numbers compare by value with
// integer-to-float promotion; atoms compare lexicographically, byte by
// byte. == and != additionally accept arbitrary terms and compare them
// structurally after grounding; the ordering operators on anything but
// numbers and atoms are a type error.
func compare(op CompareOp, l, r term.Term, env *term.Env) (bool, error) {
	lv, err := evalArithIfExpr(l, env)
	if err != nil {
		return false, err
	}
	rv, err := evalArithIfExpr(r, env)
	if err != nil {
		return false, err
	}

	if lf, ok := term.AsFloat(lv, env); ok {
		if rf, ok := term.AsFloat(rv, env); ok {
			return holds(op, cmpFloats(lf, rf)), nil
		}
	}

	la, lok := lv.(term.Atom)
	ra, rok := rv.(term.Atom)
	if lok && rok {
		return holds(op, term.CompareAtoms(la, ra)), nil
	}

	switch op {
	case OpEqual:
		return term.Equal(term.Ground(lv, env), term.Ground(rv, env)), nil
	case OpNotEqual:
		return !term.Equal(term.Ground(lv, env), term.Ground(rv, env)), nil
	default:
		culprit := lv
		if _, ok := term.AsFloat(lv, env); ok {
			culprit = rv
		} else if lok {
			culprit = rv
		}
		return false, &TypeError{Expected: "number or atom", Culprit: culprit}
	}
}

func cmpFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func holds(op CompareOp, cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpLess:
		return cmp < 0
	case OpGreater:
		return cmp > 0
	case OpLessEqual:
		return cmp <= 0
	case OpGreaterEqual:
		return cmp >= 0
	default:
		return false
	}
}
