// Package buffer provides a thread-safe in-memory text buffer. It is the
// text container the conversion engine operates on: conversions read a
// region of the buffer and replace matched spans in place.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Byte-offset addressed reads and in-place edits
//   - Read-only snapshots for concurrent access
//   - Revision tracking for change management
//
// Basic usage:
//
//	// Create a buffer with some text
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	// Replace text, getting back the end offset of the replacement
//	end, _ := buf.Replace(7, 12, "Buffer")  // "Hello, Buffer!"
//
//	// Get a snapshot for concurrent reading
//	snap := buf.Snapshot()
//	go func() {
//	    text := snap.Text()
//	    // Process text...
//	}()
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock. A multi-step
// transformation such as a rule-table conversion must nevertheless be the
// only writer for its duration; the buffer does not serialize compound
// operations.
package buffer
