package engine

import (
	"strings"

	"suiron/term"
)

// ParseProgram parses Suiron source text and appends every clause to
// kb. A program is a sequence of facts and rules, each terminated by
// ".". Line comments start with "#", "%" or "//" and run to the end of
// the line; comment markers inside double quotes are text, not
// comments.
func ParseProgram(kb *KnowledgeBase, text string) error {
	rules, err := ParseRules(text)
	if err != nil {
		return err
	}
	for _, r := range rules {
		kb.AddRule(r)
	}
	return nil
}

// ParseRules parses source text into clauses without storing them.
func ParseRules(text string) ([]*Rule, error) {
	clauses, err := splitClauses(stripComments(text))
	if err != nil {
		return nil, err
	}
	rules := make([]*Rule, 0, len(clauses))
	for _, c := range clauses {
		r, err := parseRuleAt(c.text, c.line)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// stripComments removes #, % and // comments line by line, preserving
// the line structure so later errors report correct line numbers.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	return strings.Join(lines, "\n")
}

func stripLineComment(line string) string {
	inQuote := false
	runes := []rune(line)
	for i, r := range runes {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '#' || r == '%':
			return string(runes[:i])
		case r == '/' && i+1 < len(runes) && runes[i+1] == '/':
			return string(runes[:i])
		}
	}
	return line
}

type clauseText struct {
	text string
	line int
}

// splitClauses divides source text into clause strings at "."
// terminators outside parentheses, brackets and quotes. A "." between
// two digits is a decimal point, not a terminator.
func splitClauses(text string) ([]clauseText, error) {
	var out []clauseText
	runes := []rune(text)

	line := 1
	startLine := 1
	start := 0
	depth := 0
	inQuote := false

	flush := func(end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			out = append(out, clauseText{text: s, line: startLine})
		}
		start = end + 1
		startLine = line
	}

	for i, r := range runes {
		switch {
		case r == '\n':
			line++
			if strings.TrimSpace(string(runes[start:i])) == "" {
				startLine = line
				start = i + 1
			}
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case r == '"':
			inQuote = true
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			depth--
		case r == '.' && depth == 0:
			prevDigit := i > 0 && runes[i-1] >= '0' && runes[i-1] <= '9'
			nextDigit := i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9'
			if prevDigit && nextDigit {
				continue
			}
			flush(i)
		}
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		return nil, &SyntaxError{Line: startLine, Column: 1,
			Msg: "clause is not terminated by '.': " + truncate(rest)}
	}
	return out, nil
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

// Fact builds a bodyless rule programmatically, so hosts can assemble a
// knowledge base without the parser.
func Fact(head *term.Compound) *Rule {
	return &Rule{Head: head, Body: Always{}}
}

// NewRule builds a rule programmatically from a head and body goals,
// which are joined as a conjunction.
func NewRule(head *term.Compound, body ...Goal) *Rule {
	switch len(body) {
	case 0:
		return Fact(head)
	case 1:
		return &Rule{Head: head, Body: body[0]}
	default:
		return &Rule{Head: head, Body: Conjunction{Goals: body}}
	}
}
