package pcomb

// ResultKind tags the two observable shapes a Parser's run can settle
// into. The spec's CPS formulation additionally distinguishes a
// continuation-terminal "Ok" shape from an intermediate "Success" shape;
// this direct-style port (design note §9, option (a): a tagged result
// returned directly, no continuation threading) collapses that
// distinction into the single Success case and lets Match/Parse, the two
// entry points, decide how to present it.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultFailure
)

// Result is the outcome of running a Parser: either a value and the
// remaining Input, or a positioned Error.
type Result[V any] struct {
	Kind  ResultKind
	Value V
	Rest  Input
	Err   Error
}

// Succeed builds a successful Result.
func Succeed[V any](v V, rest Input) Result[V] {
	return Result[V]{Kind: ResultSuccess, Value: v, Rest: rest}
}

// Fail builds a failed Result.
func Fail[V any](err Error) Result[V] {
	return Result[V]{Kind: ResultFailure, Err: err}
}

// OK reports whether r succeeded.
func (r Result[V]) OK() bool { return r.Kind == ResultSuccess }

// Parser is a deferred computation that consumes from an Input and
// yields a Result[V]. Parsers are pure values: the same Parser applied to
// the same Input always produces the same Result, and it is safe to run
// the same Parser value concurrently from multiple goroutines since no
// parser mutates shared state.
type Parser[V any] func(Input) Result[V]
