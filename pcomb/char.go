package pcomb

import (
	"fmt"

	"j5.nz/pcomb/pcomb/charset"
)

// Any consumes one codepoint, failing with Unexpected(EOF) on empty input.
func Any() Parser[rune] {
	return func(in Input) Result[rune] {
		cp, w, ok := in.Peek()
		if !ok {
			return Fail[rune](UnexpectedAt(in.Pos, EOFDesc))
		}
		return Succeed(cp, in.Advance(w))
	}
}

// Char consumes a codepoint equal to c, else fails Expected("`c'").
func Char(c rune) Parser[rune] {
	desc := fmt.Sprintf("`%c'", c)
	return func(in Input) Result[rune] {
		cp, w, ok := in.Peek()
		if !ok || cp != c {
			return Fail[rune](ExpectedAt(in.Pos, desc))
		}
		return Succeed(cp, in.Advance(w))
	}
}

// OneOf consumes a codepoint belonging to the interval set desc resolves
// to against tbl, else fails with a rendering chosen per §4.F: "one of
// ..." for a multi-element descriptor, the bare name for a single named
// class, or "`c'" for a singleton.
func OneOf(tbl *charset.Table, desc charset.Descriptor) Parser[rune] {
	set := desc.MustResolve(tbl)
	errDesc := oneOfDescription(desc)
	return func(in Input) Result[rune] {
		cp, w, ok := in.Peek()
		if !ok || !set.Member(int(cp)) {
			return Fail[rune](ExpectedAt(in.Pos, errDesc))
		}
		return Succeed(cp, in.Advance(w))
	}
}

// NoneOf is OneOf's inverse: it succeeds where OneOf would fail.
func NoneOf(tbl *charset.Table, desc charset.Descriptor) Parser[rune] {
	set := desc.MustResolve(tbl)
	errDesc := "not " + oneOfDescription(desc)
	return func(in Input) Result[rune] {
		cp, w, ok := in.Peek()
		if !ok || set.Member(int(cp)) {
			return Fail[rune](ExpectedAt(in.Pos, errDesc))
		}
		return Succeed(cp, in.Advance(w))
	}
}

func oneOfDescription(desc charset.Descriptor) string {
	if desc.Multi() {
		return "one of " + desc.Render()
	}
	if name, ok := desc.IsName(); ok {
		return name
	}
	return desc.Render()
}

// Satisfy consumes a codepoint satisfying pred. The error uses name when
// supplied, else Unexpected("`c'").
func Satisfy(pred func(rune) bool, name ...string) Parser[rune] {
	return func(in Input) Result[rune] {
		cp, w, ok := in.Peek()
		if !ok || !pred(cp) {
			if len(name) > 0 && name[0] != "" {
				return Fail[rune](ExpectedAt(in.Pos, name[0]))
			}
			if ok {
				return Fail[rune](UnexpectedAt(in.Pos, fmt.Sprintf("`%c'", cp)))
			}
			return Fail[rune](UnexpectedAt(in.Pos, EOFDesc))
		}
		return Succeed(cp, in.Advance(w))
	}
}

// String consumes input matching s exactly, else fails Expected("`s'").
// Position advances by len([]rune(s)) codepoints.
func String(s string) Parser[string] {
	want := []rune(s)
	desc := fmt.Sprintf("`%s'", s)
	return func(in Input) Result[string] {
		cur := in
		for _, w := range want {
			cp, width, ok := cur.Peek()
			if !ok || cp != w {
				return Fail[string](ExpectedAt(in.Pos, desc))
			}
			cur = cur.Advance(width)
		}
		return Succeed(s, cur)
	}
}

// EOF succeeds, yielding struct{}{}, iff input is empty; else it fails
// Expected(EOF).
func EOF() Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		if in.Empty() {
			return Succeed(struct{}{}, in)
		}
		return Fail[struct{}](ExpectedAt(in.Pos, EOFDesc))
	}
}
