// Package charset implements sorted, disjoint interval sets of codepoints
// and the named POSIX / Unicode general-category tables built on top of
// them. It underpins every character-class primitive in package pcomb.
package charset
