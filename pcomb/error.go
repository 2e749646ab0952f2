package pcomb

import "fmt"

// ContentKind tags the three error-content variants of the spec's error
// model.
type ContentKind int

const (
	// Expected means the parser wanted a specific construct and did not
	// find it.
	Expected ContentKind = iota
	// Unexpected means the parser found something it disallows.
	Unexpected
	// Message is a free-form diagnostic from FailWith, Filter, or an adapter.
	Message
)

// Content is one of Expected(description) / Unexpected(description) / a
// free-form message string.
type Content struct {
	Kind ContentKind
	Text string
}

// Message renders content in the spec's fixed phrasing:
// Expected(x) -> "x expected", Unexpected(x) -> "unexpected x", and a
// free-form message passes through unchanged.
func (c Content) Message() string {
	switch c.Kind {
	case Expected:
		return c.Text + " expected"
	case Unexpected:
		return "unexpected " + c.Text
	default:
		return c.Text
	}
}

// EOFDesc is the description used for end-of-input diagnostics.
const EOFDesc = "EOF"

// Error pairs an error Content with the furthest codepoint position the
// diagnosis is meaningful at; the furthest position drives Alt's merging
// of alternatives.
type Error struct {
	Content Content
	Pos     int
}

// ExpectedAt builds an Expected(desc) error at pos.
func ExpectedAt(pos int, desc string) Error { return Error{Content{Expected, desc}, pos} }

// UnexpectedAt builds an Unexpected(desc) error at pos.
func UnexpectedAt(pos int, desc string) Error { return Error{Content{Unexpected, desc}, pos} }

// MessageAt builds a free-form message error at pos.
func MessageAt(pos int, text string) Error { return Error{Content{Message, text}, pos} }

// Alt is the choice-combinator merger (spec §4.D): if both errors are
// Expected at the same position, their descriptions are joined with
// " or "; otherwise whichever error has the greater position wins, and
// on an equal, non-mergeable position the right operand wins.
func (e Error) Alt(o Error) Error {
	if e.Content.Kind == Expected && o.Content.Kind == Expected && e.Pos == o.Pos {
		return ExpectedAt(e.Pos, e.Content.Text+" or "+o.Content.Text)
	}
	switch {
	case e.Pos > o.Pos:
		return e
	case o.Pos > e.Pos:
		return o
	default:
		return o
	}
}

// FullMessage renders "<message> at <line>:<col>" against src, decoded
// under dec, with tabs expanded per opts.TabSize.
func (e Error) FullMessage(src []byte, dec Decoder, opts RenderOptions) string {
	line, col := FullPosition(src, dec, e.Pos, opts.tabSize())
	return fmt.Sprintf("%s at %d:%d", e.Content.Message(), line, col)
}

func (e Error) Error() string {
	return e.Content.Message()
}
