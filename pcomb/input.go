package pcomb

import "j5.nz/pcomb/pcomb/decode"

// Decoder decodes one codepoint at a time from the input boundary; see
// package pcomb/decode for the Latin-1/UTF-8/UTF-16/UTF-32 decoders.
type Decoder = decode.Decoder

// Input is an immutable view over a byte sequence under a fixed encoding:
// Source is the full original bytes (kept for error rendering), Rest is
// the remaining, not-yet-consumed suffix, and Pos is the codepoint
// position counted from the start of Source. Position is monotone: every
// successful primitive advances it by exactly one.
type Input struct {
	Source []byte
	Rest   []byte
	Pos    int
	Dec    Decoder
}

// NewInput builds an Input over src under decoder dec.
func NewInput(src []byte, dec Decoder) Input {
	return Input{Source: src, Rest: src, Pos: 0, Dec: dec}
}

// Latin1Input builds an Input over s under the Latin-1 decoder.
func Latin1Input(s string) Input { return NewInput([]byte(s), decode.Latin1{}) }

// UTF8Input builds an Input over s under the UTF-8 decoder.
func UTF8Input(s string) Input { return NewInput([]byte(s), decode.UTF8{}) }

// UTF16Input builds an Input over raw UTF-16 bytes, big-endian when
// bigEndian is set and little-endian otherwise.
func UTF16Input(b []byte, bigEndian bool) Input {
	return NewInput(b, decode.UTF16{BigEndian: bigEndian})
}

// UTF32Input builds an Input over raw UTF-32 bytes.
func UTF32Input(b []byte, bigEndian bool) Input {
	return NewInput(b, decode.UTF32{BigEndian: bigEndian})
}

// Peek decodes, without consuming, the codepoint at the cursor.
func (in Input) Peek() (cp rune, width int, ok bool) {
	return in.Dec.Decode(in.Rest)
}

// Empty reports whether the input is exhausted.
func (in Input) Empty() bool {
	return len(in.Rest) == 0
}

// Advance returns the Input positioned width bytes further along Rest
// and one codepoint further along Pos.
func (in Input) Advance(width int) Input {
	return Input{Source: in.Source, Rest: in.Rest[width:], Pos: in.Pos + 1, Dec: in.Dec}
}

// RenderOptions controls Error.FullMessage / FullPosition rendering.
type RenderOptions struct {
	// TabSize is the tab stop width for column expansion; 0 means the
	// default of 8.
	TabSize int
}

func (o RenderOptions) tabSize() int {
	if o.TabSize <= 0 {
		return 8
	}
	return o.TabSize
}

// DefaultRenderOptions is the render configuration Parse uses.
var DefaultRenderOptions = RenderOptions{TabSize: 8}
