package convert

import (
	"fmt"

	"github.com/dshills/isoconv/internal/engine/buffer"
)

// Direction selects one builtin conversion table.
type Direction uint8

const (
	SpanishToISO Direction = iota // Spanish digraphs -> ISO 8859-1
	GermanToISO                   // German "quote digraphs -> ISO 8859-1
	ISOToTeX                      // ISO 8859-1 -> TeX accent macros
	TeXToISO                      // TeX accent macros -> ISO 8859-1
	GTeXToISO                     // German TeX digraphs -> ISO 8859-1
	ISOToGTeX                     // ISO 8859-1 -> German TeX digraphs
	ISOToDuden                    // ISO 8859-1 -> Duden transliteration
	ISOToSGML                     // ISO 8859-1 -> SGML named entities
	SGMLToISO                     // SGML named entities -> ISO 8859-1
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case SpanishToISO:
		return "spanish2iso"
	case GermanToISO:
		return "german2iso"
	case ISOToTeX:
		return "iso2tex"
	case TeXToISO:
		return "tex2iso"
	case GTeXToISO:
		return "gtex2iso"
	case ISOToGTeX:
		return "iso2gtex"
	case ISOToDuden:
		return "iso2duden"
	case ISOToSGML:
		return "iso2sgml"
	case SGMLToISO:
		return "sgml2iso"
	default:
		return "unknown"
	}
}

// Directions lists all builtin directions in a stable order.
func Directions() []Direction {
	return []Direction{
		SpanishToISO, GermanToISO,
		ISOToTeX, TeXToISO,
		GTeXToISO, ISOToGTeX,
		ISOToDuden, ISOToSGML, SGMLToISO,
	}
}

// ParseDirection resolves a direction name as printed by String.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions() {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Strictness selects between the two German rule tables. The conservative
// table requires a letter before each "quote digraph so that double quotes
// in running text survive; the aggressive table rewrites every digraph.
type Strictness uint8

const (
	Conservative Strictness = iota
	Aggressive
)

// String returns the strictness name.
func (s Strictness) String() string {
	if s == Aggressive {
		return "aggressive"
	}
	return "conservative"
}

// ParseStrictness resolves a strictness name.
func ParseStrictness(name string) (Strictness, error) {
	switch name {
	case "conservative":
		return Conservative, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return 0, fmt.Errorf("unknown strictness %q (want conservative or aggressive)", name)
	}
}

// TableFor returns the builtin table for a direction. The strictness
// argument selects the German table variant and is ignored by every other
// direction.
func TableFor(dir Direction, strict Strictness) (*Table, error) {
	switch dir {
	case SpanishToISO:
		return SpanishToISOTab, nil
	case GermanToISO:
		if strict == Aggressive {
			return GermanToISOAggressiveTab, nil
		}
		return GermanToISOConservativeTab, nil
	case ISOToTeX:
		return ISOToTeXTab, nil
	case TeXToISO:
		return TeXToISOTab, nil
	case GTeXToISO:
		return GTeXToISOTab, nil
	case ISOToGTeX:
		return ISOToGTeXTab, nil
	case ISOToDuden:
		return ISOToDudenTab, nil
	case ISOToSGML:
		return ISOToSGMLTab, nil
	case SGMLToISO:
		return SGMLToISOTab, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, dir)
	}
}

// Named entry points. Each binds Apply to one builtin table.

// ConvertSpanishToISO rewrites Spanish digraphs (~n, 'a, ...) in the region
// to their ISO 8859-1 characters.
func ConvertSpanishToISO(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, SpanishToISOTab)
}

// ConvertGermanToISO rewrites German "quote digraphs in the region to their
// ISO 8859-1 characters. Strictness is an explicit parameter: there is no
// process-wide active-table selector.
func ConvertGermanToISO(buf *buffer.Buffer, from, to buffer.ByteOffset, strict Strictness) (buffer.ByteOffset, error) {
	if strict == Aggressive {
		return Apply(buf, from, to, GermanToISOAggressiveTab)
	}
	return Apply(buf, from, to, GermanToISOConservativeTab)
}

// ConvertISOToTeX rewrites ISO 8859-1 accented characters in the region to
// braced TeX accent macros.
func ConvertISOToTeX(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, ISOToTeXTab)
}

// ConvertTeXToISO rewrites TeX accent macros in the region to ISO 8859-1
// characters.
func ConvertTeXToISO(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, TeXToISOTab)
}

// ConvertGTeXToISO rewrites German TeX digraphs and TeX accent macros in
// the region to ISO 8859-1 characters.
func ConvertGTeXToISO(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, GTeXToISOTab)
}

// ConvertISOToGTeX rewrites ISO 8859-1 characters in the region to German
// TeX digraphs where they exist and braced TeX macros otherwise.
func ConvertISOToGTeX(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, ISOToGTeXTab)
}

// ConvertISOToDuden rewrites German umlauts and sharp s in the region to
// Duden ASCII transliterations (ae, oe, ue, ss). This transform is lossy
// and has no reverse table.
func ConvertISOToDuden(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, ISOToDudenTab)
}

// ConvertISOToSGML rewrites ISO 8859-1 accented characters in the region to
// SGML named entities.
func ConvertISOToSGML(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, ISOToSGMLTab)
}

// ConvertSGMLToISO rewrites SGML named entities in the region to ISO 8859-1
// characters.
func ConvertSGMLToISO(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	return Apply(buf, from, to, SGMLToISOTab)
}
