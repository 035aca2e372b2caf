package buffer

import "unicode/utf8"

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	text       string
	revisionID RevisionID
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the given byte range.
// Out-of-bounds offsets are clamped to the snapshot.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	start, end = s.clamp(start), s.clamp(end)
	if start > end {
		return ""
	}
	return s.text[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// ByteAt returns the byte at the given offset.
func (s *Snapshot) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= ByteOffset(len(s.text)) {
		return 0, false
	}
	return s.text[offset], true
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (s *Snapshot) RuneAt(offset ByteOffset) (rune, int) {
	if offset < 0 || offset >= ByteOffset(len(s.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.text[offset:])
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// IsEmpty returns true if the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.text) == 0
}

func (s *Snapshot) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > ByteOffset(len(s.text)) {
		return ByteOffset(len(s.text))
	}
	return offset
}
