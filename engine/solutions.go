package engine

import (
	"suiron/nondet"
	"suiron/term"
)

// Solutions is the lazy result stream of a query. Each call to Next
// resumes the suspended search and reports whether another solution was
// found; the bindings of the current solution are read with Scan or
// Binding. The search runs in its own goroutine and is suspended
// between Next calls, so pulling solutions one at a time costs nothing
// beyond the work of finding each.
type Solutions struct {
	vars []term.Variable
	env  *term.Env

	more chan<- bool
	next <-chan *term.Env
	errc <-chan error

	err    error
	closed bool
}

// Solve starts proving g against the VM's knowledge base and returns
// the suspended solution stream. Nothing happens until the first Next.
func (vm *VM) Solve(g Goal) *Solutions {
	more := make(chan bool)
	next := make(chan *term.Env)
	errc := make(chan error, 1)

	go func() {
		defer close(next)
		if !<-more {
			return
		}
		_, err := g.Solve(vm, nil, nil, func(env *term.Env) *nondet.Promise {
			next <- env
			if !<-more {
				return nondet.Bool(true) // caller closed: stop searching
			}
			return nondet.Bool(false) // keep backtracking for the next one
		}).Force()
		if err != nil {
			errc <- err
		}
	}()

	return &Solutions{
		vars: QueryVars(g),
		more: more,
		next: next,
		errc: errc,
	}
}

// Next searches for the next solution. It returns false once the
// search space is exhausted or an error aborted the query; Err
// distinguishes the two.
func (s *Solutions) Next() bool {
	if s.closed {
		return false
	}
	s.more <- true
	env, ok := <-s.next
	if !ok {
		s.closed = true
		select {
		case s.err = <-s.errc:
		default:
		}
		return false
	}
	s.env = env
	return true
}

// Close abandons the search. It is safe to call after exhaustion.
func (s *Solutions) Close() error {
	if !s.closed {
		s.closed = true
		close(s.more)
	}
	return nil
}

// Err returns the error that aborted the query, if any.
func (s *Solutions) Err() error {
	return s.err
}

// Vars returns the printable names of the query's free variables, in
// first-occurrence order.
func (s *Solutions) Vars() []string {
	names := make([]string, len(s.vars))
	for i, v := range s.vars {
		names[i] = v.Name
	}
	return names
}

// Env returns the current solution's substitution environment.
func (s *Solutions) Env() *term.Env {
	return s.env
}

// Binding returns the current solution's value for the named query
// variable, fully grounded. An unbound variable is returned as itself.
func (s *Solutions) Binding(name string) (term.Term, bool) {
	for _, v := range s.vars {
		if v.Name == name {
			return term.Ground(v, s.env), true
		}
	}
	return nil, false
}

// Scan copies the current solution's variable bindings into out, keyed
// by variable name. Variables that remained unbound are copied as
// themselves.
func (s *Solutions) Scan(out map[string]term.Term) {
	for _, v := range s.vars {
		out[v.Name] = term.Ground(v, s.env)
	}
}

// QueryVars returns the distinct free variables mentioned by a goal, in
// first-occurrence order. These are the variables a solution is
// projected onto for display.
func QueryVars(g Goal) []term.Variable {
	var vars []term.Variable
	seen := map[int64]bool{}
	add := func(ts ...term.Term) {
		for _, t := range ts {
			for _, v := range term.FreeVariables(t, nil) {
				if !seen[v.ID()] {
					seen[v.ID()] = true
					vars = append(vars, v)
				}
			}
		}
	}
	var walk func(Goal)
	walk = func(g Goal) {
		switch g := g.(type) {
		case Call:
			add(g.Args...)
		case Conjunction:
			for _, sub := range g.Goals {
				walk(sub)
			}
		case Disjunction:
			for _, sub := range g.Goals {
				walk(sub)
			}
		case Not:
			walk(g.Goal)
		case Unification:
			add(g.Left, g.Right)
		case Comparison:
			add(g.Left, g.Right)
		}
	}
	walk(g)
	return vars
}
