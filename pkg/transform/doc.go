// Package transform rewrites a parsed page into a requested archetype. The
// engine is a pure function from (block sequence, archetype, toggles) to a
// new block sequence: it injects or merges the required imports, rewrites
// the module header, replaces recognized functions with their canonical
// declarations while keeping the originals as commented-out text, and
// back-fills whatever the archetype requires but the source never had.
//
// Transformation is total. Every fallible step lives in parsing or in the
// caller's I/O; once a Page exists, Transform always yields one.
package transform
