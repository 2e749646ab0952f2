package pcomb

// Match runs p from the start of input and returns its raw Result: either
// Success(remaining, value) or Failure(error).
func Match[V any](in Input, p Parser[V]) Result[V] {
	return p(in)
}

// Parse runs p from the start of input and either returns the parsed
// value, or renders a Failure into a human-readable error via
// Error.FullMessage and returns it as a Go error. Input left unconsumed
// after p succeeds is not an error.
func Parse[V any](in Input, p Parser[V]) (V, error) {
	r := p(in)
	if !r.OK() {
		var zero V
		return zero, r.Err.asError(in.Source, in.Dec)
	}
	return r.Value, nil
}

func (e Error) asError(src []byte, dec Decoder) error {
	return renderedError(e.FullMessage(src, dec, DefaultRenderOptions))
}

// renderedError is a plain string error: Parse's contract is "a rendered
// message", not a typed error chain a caller would match on.
type renderedError string

func (e renderedError) Error() string { return string(e) }
