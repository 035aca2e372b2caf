package buffer

import (
	"errors"
	"io"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is a mutable text container addressed by byte offsets.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       []byte
	revisionID RevisionID
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		revisionID: NewRevisionID(),
	}
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string) *Buffer {
	b := NewBuffer()
	b.text = []byte(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b := NewBuffer()
	b.text = data
	return b, nil
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// TextRange returns text in the given byte range.
// Out-of-bounds offsets are clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start, end = b.clamp(start), b.clamp(end)
	if start > end {
		return ""
	}
	return string(b.text[start:end])
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// ByteAt returns the byte at the given offset.
func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 || offset >= ByteOffset(len(b.text)) {
		return 0, false
	}
	return b.text[offset], true
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 || offset >= ByteOffset(len(b.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(b.text[offset:])
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return 0, ErrOffsetOutOfRange
	}

	b.splice(offset, offset, text)
	b.revisionID = NewRevisionID()

	return offset + ByteOffset(len(text)), nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := NewRange(start, end)
	if !r.IsValid() || r.Start < 0 || r.End > ByteOffset(len(b.text)) {
		return ErrRangeInvalid
	}

	b.splice(start, end, "")
	b.revisionID = NewRevisionID()

	return nil
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := NewRange(start, end)
	if !r.IsValid() || r.Start < 0 || r.End > ByteOffset(len(b.text)) {
		return 0, ErrRangeInvalid
	}

	b.splice(start, end, text)
	b.revisionID = NewRevisionID()

	return start + ByteOffset(len(text)), nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{
		text:       string(b.text),
		revisionID: b.revisionID,
	}
}

// splice replaces b.text[start:end] with text. Caller holds the write lock.
func (b *Buffer) splice(start, end ByteOffset, text string) {
	next := make([]byte, 0, ByteOffset(len(b.text))-(end-start)+ByteOffset(len(text)))
	next = append(next, b.text[:start]...)
	next = append(next, text...)
	next = append(next, b.text[end:]...)
	b.text = next
}

// clamp bounds an offset to [0, len]. Caller holds at least the read lock.
func (b *Buffer) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > ByteOffset(len(b.text)) {
		return ByteOffset(len(b.text))
	}
	return offset
}
