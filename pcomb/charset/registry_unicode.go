package charset

import "unicode"

// UnicodeTable is the Unicode registry: the 30 general-category tables
// (aliased under both short and long name) plus the POSIX names derived
// from them, all over the 0..=0x10FFFF universe.
var UnicodeTable = buildUnicodeTable()

// unicodeUniverse is the full Unicode scalar-value range.
var unicodeUniverse = Range{0, 0x10FFFF}

// categoryLongNames maps each two-letter Unicode general category to its
// long form, e.g. "Ll" -> "lowercase_letter".
var categoryLongNames = map[string]string{
	"Lu": "uppercase_letter",
	"Ll": "lowercase_letter",
	"Lt": "titlecase_letter",
	"Lm": "modifier_letter",
	"Lo": "other_letter",
	"Mn": "nonspacing_mark",
	"Mc": "spacing_mark",
	"Me": "enclosing_mark",
	"Nd": "decimal_number",
	"Nl": "letter_number",
	"No": "other_number",
	"Pc": "connector_punctuation",
	"Pd": "dash_punctuation",
	"Ps": "open_punctuation",
	"Pe": "close_punctuation",
	"Pi": "initial_punctuation",
	"Pf": "final_punctuation",
	"Po": "other_punctuation",
	"Sm": "math_symbol",
	"Sc": "currency_symbol",
	"Sk": "modifier_symbol",
	"So": "other_symbol",
	"Zs": "space_separator",
	"Zl": "line_separator",
	"Zp": "paragraph_separator",
	"Cc": "control",
	"Cf": "format",
	"Cs": "surrogate",
	"Co": "private_use",
	"Cn": "unassigned",
}

// rangeTableToSet converts a unicode.RangeTable into a charset.Set. Most
// table entries have Stride 1 and convert to a single contiguous Range;
// a Stride > 1 entry (alternating codepoints, e.g. case-paired letters)
// expands to one Range per codepoint.
func rangeTableToSet(rt *unicode.RangeTable) Set {
	var rs []Range
	for _, r := range rt.R16 {
		if r.Stride == 1 {
			rs = append(rs, Range{int(r.Lo), int(r.Hi)})
			continue
		}
		for lo := int(r.Lo); lo <= int(r.Hi); lo += int(r.Stride) {
			rs = append(rs, Range{lo, lo})
		}
	}
	for _, r := range rt.R32 {
		if r.Stride == 1 {
			rs = append(rs, Range{int(r.Lo), int(r.Hi)})
			continue
		}
		for lo := int(r.Lo); lo <= int(r.Hi); lo += int(r.Stride) {
			rs = append(rs, Range{lo, lo})
		}
	}
	return FromRanges(rs...)
}

// cnUnassigned computes the "Cn" (unassigned) category: Go's unicode
// package, unlike a full UCD dump, does not carry an explicit unassigned
// table, so it is derived as the complement of every other category.
func cnUnassigned(others []Set) Set {
	assigned := Set{}
	for _, s := range others {
		assigned = assigned.Union(s)
	}
	return assigned.Complement(unicodeUniverse)
}

func buildUnicodeTable() *Table {
	t := newTable()

	order := []string{
		"Lu", "Ll", "Lt", "Lm", "Lo",
		"Mn", "Mc", "Me",
		"Nd", "Nl", "No",
		"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
		"Sm", "Sc", "Sk", "So",
		"Zs", "Zl", "Zp",
		"Cc", "Cf", "Cs", "Co",
	}

	var assigned []Set
	for _, short := range order {
		rt, ok := unicode.Categories[short]
		if !ok {
			continue
		}
		s := rangeTableToSet(rt)
		t.define(short, s)
		t.alias(categoryLongNames[short], short)
		assigned = append(assigned, s)
	}

	cn := cnUnassigned(assigned)
	t.define("Cn", cn)
	t.alias(categoryLongNames["Cn"], "Cn")

	defineUnicodePosix(t)

	return t
}

// controlWhitespace is the set of C0/C1 control codes that POSIX "space"
// also treats as whitespace: tab, LF, VT, FF, CR and NEL.
var controlWhitespace = FromInts(0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x85)

func defineUnicodePosix(t *Table) {
	lu, _ := t.Lookup("Lu")
	ll, _ := t.Lookup("Ll")
	lt, _ := t.Lookup("Lt")
	nd, _ := t.Lookup("Nd")
	pc, _ := t.Lookup("Pc")
	pd, _ := t.Lookup("Pd")
	ps, _ := t.Lookup("Ps")
	pe, _ := t.Lookup("Pe")
	pi, _ := t.Lookup("Pi")
	pf, _ := t.Lookup("Pf")
	po, _ := t.Lookup("Po")
	sm, _ := t.Lookup("Sm")
	sc, _ := t.Lookup("Sc")
	sk, _ := t.Lookup("Sk")
	so, _ := t.Lookup("So")
	zs, _ := t.Lookup("Zs")
	zl, _ := t.Lookup("Zl")
	zp, _ := t.Lookup("Zp")
	cc, _ := t.Lookup("Cc")

	alpha := lu.Union(ll).Union(lt)
	digit := nd
	alnum := alpha.Union(digit)
	punct := pc.Union(pd).Union(ps).Union(pe).Union(pi).Union(pf).Union(po)
	symbol := sm.Union(sc).Union(sk).Union(so)
	separator := zs.Union(zl).Union(zp)
	space := separator.Union(controlWhitespace)
	graph := alnum.Union(punct).Union(symbol)
	print := graph.Union(FromInts(0x20))
	ascii := FromRanges(Range{0, 0x7F})
	blank := FromInts(0x20, 0x09)
	word := alnum.Union(pc)
	xdigit := FromRanges(Range{'0', '9'}, Range{'A', 'F'}, Range{'a', 'f'})

	t.define("alpha", alpha)
	t.define("digit", digit)
	t.define("alnum", alnum)
	t.define("upper", lu)
	t.define("lower", ll)
	t.define("punct", punct)
	t.define("space", space)
	t.define("graph", graph)
	t.define("print", print)
	t.define("ascii", ascii)
	t.define("blank", blank)
	t.define("word", word)
	t.define("xdigit", xdigit)
	t.define("cntrl", cc)
}
