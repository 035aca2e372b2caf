package convert

import "regexp"

// Rule is one (pattern, replacement) pair of a conversion table.
// Pattern is a regular expression; Replacement is a template that may
// reference capture groups as ${1}, ${2} and so on.
type Rule struct {
	Pattern     string
	Replacement string
}

// compiledRule pairs a compiled pattern with its replacement template.
type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// Table is an ordered, immutable list of compiled rules. Order is
// semantically significant: Apply runs earlier rules to completion across
// the region before later rules are attempted.
type Table struct {
	name  string
	rules []compiledRule
}

// NewTable compiles rules into a Table. Patterns are compiled exactly as
// written; no case-folding flag is ever added. Returns a PatternError
// (matching ErrInvalidPattern) for the first rule that fails to compile.
func NewTable(name string, rules []Rule) (*Table, error) {
	t := &Table{
		name:  name,
		rules: make([]compiledRule, 0, len(rules)),
	}

	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, &PatternError{Table: name, Pattern: r.Pattern, Err: err}
		}
		t.rules = append(t.rules, compiledRule{re: re, replacement: r.Replacement})
	}

	return t, nil
}

// MustTable is like NewTable but panics on a malformed pattern.
// It is used for the builtin tables, which are fixed data.
func MustTable(name string, rules []Rule) *Table {
	t, err := NewTable(name, rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}
