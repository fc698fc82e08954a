// Package nondet provides the trampoline that drives Suiron's
// depth-first, backtracking search without recursing on the host call
// stack. A Promise is a delayed alternative in that search; Force walks
// an explicit stack of pending alternatives instead of making nested Go
// calls, so a long chain of choice points costs stack-frame-sized heap
// allocations rather than goroutine stack.
package nondet

var (
	truePromise  = &Promise{ok: true}
	falsePromise = &Promise{ok: false}
)

// Promise is one node of a search: either a decided result (ok or err)
// or a list of delayed alternatives to try, left to right. The zero
// value is equivalent to Bool(false).
type Promise struct {
	delayed []func() *Promise

	// Once control reaches this promise, every alternative pushed
	// since cutParent is discarded, together with cutParent's own
	// remaining alternatives. A cut targets promise identity,
	// not value: the parent is the exact promise holding the clause
	// alternatives of the activation being committed to.
	cutParent *Promise

	ok  bool
	err error
}

// Delay defers execution of the given alternatives, tried left to right.
func Delay(alternatives ...func() *Promise) *Promise {
	return &Promise{delayed: alternatives}
}

// Bool returns a decided promise: true means the search may stop (a
// caller has everything it needs), false means keep backtracking.
func Bool(ok bool) *Promise {
	if ok {
		return truePromise
	}
	return falsePromise
}

// Error returns a promise that aborts the search with err.
func Error(err error) *Promise {
	return &Promise{err: err}
}

var dummyCutParent Promise

// Cut returns a promise that, once control reaches it, discards every
// alternative pushed since parent, and parent's own remaining
// alternatives, before continuing into k. It implements the "!" goal's
// commit. A nil parent prunes the entire
// stack, which is the behavior of a cut in a top-level query.
func Cut(parent *Promise, k func() *Promise) *Promise {
	if parent == nil {
		parent = &dummyCutParent
	}
	return &Promise{
		delayed:   []func() *Promise{k},
		cutParent: parent,
	}
}

// Force runs the search to completion (or to the first promise that
// reports true), using an explicit stack so deep backtracking cannot
// overflow the host stack. It returns (true, nil) as soon as any branch
// resolves true, (false, nil) once every alternative has resolved false,
// or (false, err) as soon as any branch errors.
func (p *Promise) Force() (bool, error) {
	stack := promiseStack{p}
	for len(stack) > 0 {
		p := stack.pop()

		if len(p.delayed) == 0 {
			switch {
			case p.err != nil:
				return false, p.err
			case p.ok:
				return true, nil
			default:
				continue
			}
		}

		if p.cutParent != nil {
			stack.popUntil(p.cutParent)
			p.cutParent = nil // pruning is done; don't repeat it on revisit
		}

		// Try the child promises from left to right.
		q := p.child()
		stack = append(stack, p, q)
	}
	return false, nil
}

func (p *Promise) child() *Promise {
	q := p.delayed[0]()
	p.delayed, p.delayed[0] = p.delayed[1:], nil
	return q
}

type promiseStack []*Promise

func (s *promiseStack) pop() *Promise {
	var p *Promise
	p, *s, (*s)[len(*s)-1] = (*s)[len(*s)-1], (*s)[:len(*s)-1], nil
	return p
}

func (s *promiseStack) popUntil(p *Promise) {
	for len(*s) > 0 {
		if pop := s.pop(); pop == p {
			break
		}
	}
}
