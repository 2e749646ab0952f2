package pcomb

// FullPosition translates a codepoint position into a 1-based (line, col)
// pair, decoding src under dec and expanding tabs to the next multiple of
// tabSize.
func FullPosition(src []byte, dec Decoder, pos int, tabSize int) (line, col int) {
	runes := decodeAll(src, dec)

	lineStarts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	lineIdx := 0
	for lineIdx+1 < len(lineStarts) && lineStarts[lineIdx+1] <= pos {
		lineIdx++
	}
	start := lineStarts[lineIdx]

	col = 1
	end := pos
	if end > len(runes) {
		end = len(runes)
	}
	for i := start; i < end; i++ {
		if runes[i] == '\t' {
			col = ((col-1)/tabSize+1)*tabSize + 1
		} else {
			col++
		}
	}
	return lineIdx + 1, col
}

// decodeAll decodes the entirety of src under dec into a rune slice,
// stopping early on a malformed prefix.
func decodeAll(src []byte, dec Decoder) []rune {
	var out []rune
	rest := src
	for len(rest) > 0 {
		cp, w, ok := dec.Decode(rest)
		if !ok {
			break
		}
		out = append(out, cp)
		rest = rest[w:]
	}
	return out
}
