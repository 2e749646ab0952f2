package charset

import "fmt"

// Descriptor is a user-supplied character-class literal: an integer, an
// inclusive range, a symbolic class name, or a nested list of any of
// these. It normalizes to a Set at construction time, against a chosen
// Table (Latin1Table or UnicodeTable).
type Descriptor struct {
	kind  descKind
	point int
	lo    int
	hi    int
	name  string
	items []Descriptor
}

type descKind int

const (
	descInt descKind = iota
	descRange
	descName
	descList
)

// Int describes a single codepoint.
func Int(v int) Descriptor { return Descriptor{kind: descInt, point: v} }

// Span describes an inclusive codepoint range a..b.
func Span(lo, hi int) Descriptor { return Descriptor{kind: descRange, lo: lo, hi: hi} }

// Name describes a symbolic class, resolved against the active table
// (a POSIX name or a Unicode general-category name, short or long form).
func Name(n string) Descriptor { return Descriptor{kind: descName, name: n} }

// List flattens a mix of descriptors into one, nesting allowed.
func List(items ...Descriptor) Descriptor { return Descriptor{kind: descList, items: items} }

// Single reports whether d denotes exactly one codepoint (an Int, or a
// Span/List degenerating to one codepoint), used by callers rendering
// "`c'" vs "one of ..." error messages.
func (d Descriptor) Single() (rune, bool) {
	switch d.kind {
	case descInt:
		return rune(d.point), true
	case descRange:
		if d.lo == d.hi {
			return rune(d.lo), true
		}
	case descList:
		if len(d.items) == 1 {
			return d.items[0].Single()
		}
	}
	return 0, false
}

// IsName reports whether d is a single symbolic name, returning it.
func (d Descriptor) IsName() (string, bool) {
	if d.kind == descName {
		return d.name, true
	}
	if d.kind == descList && len(d.items) == 1 {
		return d.items[0].IsName()
	}
	return "", false
}

// Multi reports whether d denotes more than one element (several ints,
// ranges, or names combined in a List), used to choose the "one of ..."
// rendering over a single-name or single-char rendering.
func (d Descriptor) Multi() bool {
	return d.kind == descList && len(d.items) > 1
}

// Resolve flattens, partitions, resolves names against tbl, and unions
// everything into a single Set. An unknown name or an inverted range
// (lo > hi) is a construction-time error, never a parse-time one.
func (d Descriptor) Resolve(tbl *Table) (Set, error) {
	switch d.kind {
	case descInt:
		return FromInts(d.point), nil
	case descRange:
		if d.lo > d.hi {
			return Set{}, fmt.Errorf("charset: inverted range %d..%d", d.lo, d.hi)
		}
		return FromRanges(Range{d.lo, d.hi}), nil
	case descName:
		s, ok := tbl.Lookup(d.name)
		if !ok {
			return Set{}, fmt.Errorf("charset: unknown class %q", d.name)
		}
		return s, nil
	case descList:
		out := Set{}
		for _, item := range d.items {
			s, err := item.Resolve(tbl)
			if err != nil {
				return Set{}, err
			}
			out = out.Union(s)
		}
		return out, nil
	default:
		return Set{}, fmt.Errorf("charset: malformed descriptor")
	}
}

// MustResolve is Resolve, panicking on a malformed descriptor. It mirrors
// regexp.MustCompile: a charset literal baked into source code either
// resolves or the program is wrong, so a panic at package-init/call time
// is preferable to threading a never-actually-fallible error everywhere.
func (d Descriptor) MustResolve(tbl *Table) Set {
	s, err := d.Resolve(tbl)
	if err != nil {
		panic(err)
	}
	return s
}

// Render produces a human-readable description of d, for use in error
// messages ("one of ...", a single name, or a single quoted character).
func (d Descriptor) Render() string {
	switch d.kind {
	case descInt:
		return fmt.Sprintf("`%c'", rune(d.point))
	case descRange:
		return fmt.Sprintf("`%c'..`%c'", rune(d.lo), rune(d.hi))
	case descName:
		return d.name
	case descList:
		if len(d.items) == 0 {
			return "nothing"
		}
		out := d.items[0].Render()
		for _, item := range d.items[1:] {
			out += " or " + item.Render()
		}
		return out
	default:
		return "?"
	}
}
