package convert

import (
	"github.com/dshills/isoconv/internal/engine/buffer"
)

// Apply rewrites all matches of table's rules in the region [from, to) of
// buf and returns the new end offset of the region.
//
// Rules run in table order. For each rule the region is scanned left to
// right for successive non-overlapping matches, each search resuming
// immediately after the previous replacement, so replacement text is never
// re-scanned by the same rule. Replacements may change the region length;
// the tracked end offset absorbs the delta so later rules see the full
// rewritten region. Text outside [from, to) is never read or modified.
//
// Returns buffer.ErrRangeInvalid if the region does not lie within buf.
func Apply(buf *buffer.Buffer, from, to buffer.ByteOffset, table *Table) (buffer.ByteOffset, error) {
	if from < 0 || from > to || to > buf.Len() {
		return 0, buffer.ErrRangeInvalid
	}

	end := to
	for _, rule := range table.rules {
		pos := from
		for pos < end {
			region := buf.TextRange(pos, end)
			m := rule.re.FindStringSubmatchIndex(region)
			if m == nil {
				break
			}

			repl := string(rule.re.ExpandString(nil, rule.replacement, region, m))
			if _, err := buf.Replace(pos+int64(m[0]), pos+int64(m[1]), repl); err != nil {
				return 0, err
			}

			end += int64(len(repl)) - int64(m[1]-m[0])
			next := pos + int64(m[0]) + int64(len(repl))
			if next == pos {
				// Zero-width match replaced by nothing; step past it so the
				// scan terminates.
				next++
			}
			pos = next
		}
	}

	return end, nil
}

// ApplyAll applies table to the entire buffer and returns the new length.
func ApplyAll(buf *buffer.Buffer, table *Table) (buffer.ByteOffset, error) {
	return Apply(buf, 0, buf.Len(), table)
}
