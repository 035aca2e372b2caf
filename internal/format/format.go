package format

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dshills/isoconv/internal/engine/buffer"
)

// ErrUnsupportedDirection reports a conversion invoked in a direction the
// format does not support (writing a read-only format or reading a
// write-only one).
var ErrUnsupportedDirection = errors.New("unsupported conversion direction")

// ConvertFunc rewrites the region [from, to) of buf and returns the new end
// offset of the region. Decode and encode functions share this signature.
type ConvertFunc func(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error)

// Format describes one registered conversion format.
type Format struct {
	// Name is the registry key, e.g. "tex".
	Name string

	// Description labels the format in synthesized menus.
	Description string

	// Detect reports whether a content sample looks like this format.
	// A nil Detect never matches.
	Detect func(sample string) bool

	// Decode converts format text to ISO 8859-1; nil for write-only
	// formats.
	Decode ConvertFunc

	// Encode converts ISO 8859-1 text to the format; nil for read-only
	// formats.
	Encode ConvertFunc

	// id is assigned at registration and identifies menu items synthesized
	// from this format.
	id string
}

// ID returns the registration ID, or "" before registration.
func (f *Format) ID() string {
	return f.id
}

// CanDecode reports whether the format supports decoding.
func (f *Format) CanDecode() bool {
	return f.Decode != nil
}

// CanEncode reports whether the format supports encoding.
func (f *Format) CanEncode() bool {
	return f.Encode != nil
}

// DecodeRegion decodes the region, or fails with a DirectionError for a
// write-only format. The failing path never touches the buffer.
func (f *Format) DecodeRegion(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	if f.Decode == nil {
		return 0, &DirectionError{Format: f.Name, Op: OpDecode}
	}
	return f.Decode(buf, from, to)
}

// EncodeRegion encodes the region, or fails with a DirectionError for a
// read-only format. The failing path never touches the buffer.
func (f *Format) EncodeRegion(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
	if f.Encode == nil {
		return 0, &DirectionError{Format: f.Name, Op: OpEncode}
	}
	return f.Encode(buf, from, to)
}

// Operation names used by DirectionError.
const (
	OpDecode = "decode"
	OpEncode = "encode"
)

// DirectionError is returned when a one-way format is invoked in the
// unsupported direction.
type DirectionError struct {
	Format string // format name
	Op     string // OpDecode or OpEncode
}

func (e *DirectionError) Error() string {
	if e.Op == OpDecode {
		return fmt.Sprintf("format %s is write-only: reading not supported", e.Format)
	}
	return fmt.Sprintf("format %s is read-only: writing not supported", e.Format)
}

// Is matches ErrUnsupportedDirection so callers can test the error kind.
func (e *DirectionError) Is(target error) bool {
	return target == ErrUnsupportedDirection
}

// Stub returns a ConvertFunc that always fails with a DirectionError and
// performs no buffer mutation. Hosts that require a function for both
// directions of a one-way format register a stub for the missing one.
func Stub(name, op string) ConvertFunc {
	return func(buf *buffer.Buffer, from, to buffer.ByteOffset) (buffer.ByteOffset, error) {
		return 0, &DirectionError{Format: name, Op: op}
	}
}

// DetectPattern compiles pattern into a detection predicate that probes a
// content sample. Detection patterns are fixed data, so compilation failure
// is a programming error.
func DetectPattern(pattern string) func(sample string) bool {
	re := regexp.MustCompile(pattern)
	return func(sample string) bool {
		return re.MatchString(sample)
	}
}
