package charset

// Latin1Table hardcodes the 14 POSIX classes over the 0..=0xFF universe,
// independent of the Unicode general-category tables.
var Latin1Table = buildLatin1Table()

var latin1Universe = Range{0, 0xFF}

func buildLatin1Table() *Table {
	t := newTable()

	upper := FromRanges(Range{'A', 'Z'}, Range{0xC0, 0xD6}, Range{0xD8, 0xDE})
	lower := FromRanges(Range{'a', 'z'}, Range{0xDF, 0xF6}, Range{0xF8, 0xFF})
	alpha := upper.Union(lower)
	digit := FromRanges(Range{'0', '9'})
	alnum := alpha.Union(digit)
	cntrl := FromRanges(Range{0x00, 0x1F}, Range{0x7F, 0x9F})
	space := FromInts(0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20, 0xA0)
	blank := FromInts(0x20, 0x09)
	ascii := FromRanges(Range{0x00, 0x7F})
	// graph: printable, non-space codepoints.
	graph := FromRanges(Range{0x21, 0x7E}, Range{0xA1, 0xFF})
	print := graph.Union(FromInts(0x20, 0xA0))
	// punct: graph minus alnum.
	punct := Build(latin1Universe, func(x int) bool {
		return graph.Member(x) && !alnum.Member(x)
	})
	word := alnum.Union(FromInts('_'))
	xdigit := FromRanges(Range{'0', '9'}, Range{'A', 'F'}, Range{'a', 'f'})

	t.define("alpha", alpha)
	t.define("digit", digit)
	t.define("alnum", alnum)
	t.define("upper", upper)
	t.define("lower", lower)
	t.define("cntrl", cntrl)
	t.define("space", space)
	t.define("blank", blank)
	t.define("ascii", ascii)
	t.define("graph", graph)
	t.define("print", print)
	t.define("punct", punct)
	t.define("word", word)
	t.define("xdigit", xdigit)

	return t
}
