package convert

import "fmt"

// Errors returned by table construction and conversion dispatch.
var (
	// ErrInvalidPattern reports a malformed regular expression in a rule
	// table. Builtin tables are fixed data, so this only surfaces when
	// compiling user-supplied tables; for builtin tables it is a
	// programming error caught by MustTable at package init.
	ErrInvalidPattern = fmt.Errorf("invalid rule pattern")

	// ErrUnknownDirection reports a conversion direction that has no table.
	ErrUnknownDirection = fmt.Errorf("unknown conversion direction")
)

// PatternError describes a rule that failed to compile.
type PatternError struct {
	Table   string // table name
	Pattern string // offending pattern
	Err     error  // underlying regexp error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("table %s: pattern %q: %v", e.Table, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidPattern so callers can match the error kind without
// depending on the regexp error chain.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
