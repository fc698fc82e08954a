// Package suiron is a Prolog-style inference engine. It loads a
// knowledge base of facts and rules written in Suiron's logic language
// and answers queries by searching for variable bindings that satisfy a
// goal, producing solutions lazily, one at a time.
//
//	i := suiron.New(nil)
//	_ = i.ConsultString(`
//	    mother(June, Theodore).
//	    mother(June, Sarah).
//	`)
//	sols, _ := i.Query("mother(June, $Child).")
//	for sols.Next() {
//	    child, _ := sols.Binding("Child")
//	    fmt.Println(child)
//	}
package suiron

import (
	"io"

	"suiron/engine"
	"suiron/term"
)

// Interpreter is a Suiron interpreter: a knowledge base plus the VM
// that solves queries against it.
type Interpreter struct {
	*engine.VM
}

// New creates an interpreter with an empty knowledge base and the
// standard built-in predicates. out receives the output of print, nl
// and print_list; nil means standard output.
func New(out io.Writer) *Interpreter {
	vm := engine.NewVM(engine.NewKnowledgeBase())
	if out != nil {
		vm.Output = out
	}
	return &Interpreter{VM: vm}
}

// Consult reads Suiron source text from r and adds its facts and rules
// to the knowledge base.
func (i *Interpreter) Consult(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return i.ConsultString(string(b))
}

// ConsultString adds the facts and rules in text to the knowledge base.
func (i *Interpreter) ConsultString(text string) error {
	return engine.ParseProgram(i.KB(), text)
}

// Query parses a goal and starts solving it, returning the lazy
// solution stream. The search does not begin until the first Next.
func (i *Interpreter) Query(goal string) (*engine.Solutions, error) {
	g, err := engine.ParseGoal(goal)
	if err != nil {
		return nil, err
	}
	return i.Solve(g), nil
}

// Once runs a query and returns the bindings of its first solution, or
// ok=false if the goal has none.
func (i *Interpreter) Once(goal string) (map[string]term.Term, bool, error) {
	sols, err := i.Query(goal)
	if err != nil {
		return nil, false, err
	}
	defer sols.Close()
	if !sols.Next() {
		return nil, false, sols.Err()
	}
	m := map[string]term.Term{}
	sols.Scan(m)
	return m, true, nil
}
