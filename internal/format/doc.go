// Package format registers the conversions as named file formats the way a
// host editor consumes them: each format carries a detection predicate used
// on load, a decode function applied after reading a file, and an encode
// function applied before writing one. One-way formats use stub functions
// that fail with a fixed descriptive error and never touch the buffer.
//
// The package also synthesizes the host menu tree from a registry as pure
// data; rendering it is the host's concern.
package format
