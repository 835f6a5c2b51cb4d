// Package page holds the block model for an Elm page module: the parser that
// splits raw source text into typed top-level blocks, the block types
// themselves, and the renderer that serializes a block sequence back to text.
//
// Recognition is lexical. The parser looks at line prefixes only and never
// builds a syntax tree, so any Elm file (valid or not) round-trips through
// Parse and Render without losing a byte of content it does not recognize.
package page
