// Package pcomb is a parser-combinator toolkit: small, typed parsers are
// composed into larger ones by sequencing, choice, repetition, lookahead,
// separation, mapping, and monadic chaining, topped by a Pratt-style
// operator-precedence engine. A parser consumes text from an Input,
// advancing a codepoint position, and yields either a typed value or a
// positioned Error.
//
// Subpackage pcomb/charset supplies the interval-set character classes;
// pcomb/decode supplies the per-encoding codepoint decoders consulted at
// the input boundary.
package pcomb
