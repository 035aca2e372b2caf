// Package convert implements rule-table driven text conversion between
// ISO 8859-1 accented characters and several ASCII-safe conventions:
// TeX accent macros, German "quote" digraphs, Spanish tilde/apostrophe
// digraphs, SGML named entities, and Duden ASCII transliterations.
//
// The whole package is one generic algorithm: Apply takes a buffer region
// and an ordered table of (pattern, replacement) rules and rewrites every
// match in place, rule by rule. Each rule is applied across the full region
// before the next rule is attempted, so later rules see text produced by
// earlier ones. Rule order within a table is a contract: several TeX
// entries depend on an earlier rule having cleaned up a macro's trailing
// whitespace, and reordering them changes the output.
//
// Matching is always case-sensitive. The tables are used on source text
// such as TeX markup where case is semantically load-bearing, so no case
// folding is ever applied regardless of host editor settings.
//
// The builtin tables cover the accented Latin letter repertoire of
// ISO 8859-1. Text that matches no rule is left untouched; malformed input
// is not an error.
package convert
