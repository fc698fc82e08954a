package term

import "strings"

// LinkedList is a Suiron list: a sequence of head terms followed by an
// optional tail. A nil Tail marks a proper, nil-terminated list; a
// non-nil Tail (almost always a Variable, but possibly another
// LinkedList produced by unification) marks a list written with "|" in
// source, recorded by Bar.
type LinkedList struct {
	Heads []Term
	Tail  Term
	Bar   bool
}

// Empty is the empty list, [].
func Empty() *LinkedList {
	return &LinkedList{}
}

// NewList builds a proper, nil-terminated list of the given elements.
func NewList(elems ...Term) *LinkedList {
	return &LinkedList{Heads: elems}
}

// NewListWithTail builds a list of elems whose tail is an open term,
// i.e. source syntax [e1, e2, ... | tail].
func NewListWithTail(tail Term, elems ...Term) *LinkedList {
	return &LinkedList{Heads: elems, Tail: tail, Bar: true}
}

func (*LinkedList) isTerm() {}

// IsProper reports whether the list is nil-terminated, i.e. has no open
// tail left to resolve.
func (l *LinkedList) IsProper() bool {
	return l.Tail == nil
}

// Decompose splits the list into its first head and the remainder, which
// is itself a Term (a shorter LinkedList, or the bare Tail once Heads is
// exhausted). ok is false only for the empty, nil-terminated list, which
// has no head to peel.
func (l *LinkedList) Decompose() (head Term, rest Term, ok bool) {
	if len(l.Heads) == 0 {
		return nil, nil, false
	}
	head = l.Heads[0]
	if len(l.Heads) == 1 {
		if l.Tail == nil {
			return head, Empty(), true
		}
		return head, l.Tail, true
	}
	return head, &LinkedList{Heads: l.Heads[1:], Tail: l.Tail, Bar: l.Bar}, true
}

func (l *LinkedList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, h := range l.Heads {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(h.String())
	}
	if l.Tail != nil {
		sb.WriteString(" | ")
		sb.WriteString(l.Tail.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
