package engine

import (
	"strings"

	"suiron/term"
)

// Arithmetic in Suiron rides on unification: "$X = 1 + 2 * 3" evaluates
// the right-hand side and unifies $X with 7. The parser lowers infix
// arithmetic to compound terms with the operator as functor; the named
// function forms (add, subtract, multiply, divide, join) are accepted
// too, so programmatically built terms work the same way.

// evalArithIfExpr walks t and, if the result is a function-form
// compound, evaluates it to a constant. Any other term is returned
// walked but otherwise untouched.
func evalArithIfExpr(t term.Term, env *term.Env) (term.Term, error) {
	w := term.Walk(t, env)
	c, ok := w.(*term.Compound)
	if !ok {
		return w, nil
	}
	switch c.Functor {
	case "+", "add":
		return evalFold(c, env, func(a, b int64) (int64, error) { return a + b, nil },
			func(a, b float64) (float64, error) { return a + b, nil })
	case "-", "subtract":
		return evalFold(c, env, func(a, b int64) (int64, error) { return a - b, nil },
			func(a, b float64) (float64, error) { return a - b, nil })
	case "*", "multiply":
		return evalFold(c, env, func(a, b int64) (int64, error) { return a * b, nil },
			func(a, b float64) (float64, error) { return a * b, nil })
	case "/", "divide":
		return evalFold(c, env,
			func(a, b int64) (int64, error) {
				if b == 0 {
					return 0, errDivisionByZero
				}
				return a / b, nil
			},
			func(a, b float64) (float64, error) {
				if b == 0 {
					return 0, errDivisionByZero
				}
				return a / b, nil
			})
	case "join":
		return evalJoin(c, env)
	default:
		return w, nil
	}
}

// evalFold applies a left fold of the integer or float operation over
// the function's arguments. If every argument evaluates to an Integer
// the result is an Integer (integer division truncates); one Float
// anywhere promotes the whole computation to Float.
func evalFold(c *term.Compound, env *term.Env,
	intOp func(a, b int64) (int64, error),
	floatOp func(a, b float64) (float64, error)) (term.Term, error) {

	if len(c.Args) < 2 {
		return nil, &ArityError{Name: c.Functor, Want: "at least 2", Got: len(c.Args)}
	}

	nums := make([]term.Term, len(c.Args))
	hasFloat := false
	for i, a := range c.Args {
		v, err := evalArithIfExpr(a, env)
		if err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case term.Integer:
			nums[i] = v
		case term.Float:
			nums[i] = v
			hasFloat = true
		case term.Variable:
			return nil, &InstantiationError{Name: c.Functor}
		default:
			return nil, &TypeError{Expected: "number", Culprit: v}
		}
	}

	if hasFloat {
		acc := asF(nums[0])
		for _, n := range nums[1:] {
			var err error
			acc, err = floatOp(acc, asF(n))
			if err != nil {
				return nil, err
			}
		}
		return term.Float(acc), nil
	}

	acc := int64(nums[0].(term.Integer))
	for _, n := range nums[1:] {
		var err error
		acc, err = intOp(acc, int64(n.(term.Integer)))
		if err != nil {
			return nil, err
		}
	}
	return term.Integer(acc), nil
}

func asF(t term.Term) float64 {
	switch t := t.(type) {
	case term.Integer:
		return float64(t)
	case term.Float:
		return float64(t)
	default:
		return 0
	}
}

// evalJoin concatenates words and punctuation into a single atom:
// `$S = join(Would you like, [coffee, ",", tea, or, juice], "?")` produces
// "Would you like coffee, tea or juice?". List arguments are spliced;
// words are separated by single spaces except before punctuation.
func evalJoin(c *term.Compound, env *term.Env) (term.Term, error) {
	var words []term.Term
	for _, a := range c.Args {
		switch w := term.Walk(a, env).(type) {
		case *term.LinkedList:
			elems, tail := listElems(w, env)
			if tail != nil {
				return nil, &InstantiationError{Name: "join"}
			}
			words = append(words, elems...)
		default:
			words = append(words, w)
		}
	}

	var sb strings.Builder
	for i, w := range words {
		var s string
		switch w := term.Walk(w, env).(type) {
		case term.Atom:
			s = string(w)
		case term.Integer, term.Float:
			s = w.String()
		case term.Variable:
			return nil, &InstantiationError{Name: "join"}
		default:
			return nil, &TypeError{Expected: "atom or number", Culprit: w}
		}
		if i > 0 && !isPunctuation(s) {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return term.Atom(sb.String()), nil
}

func isPunctuation(s string) bool {
	switch s {
	case ",", ".", "?", "!":
		return true
	}
	return false
}
