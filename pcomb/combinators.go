package pcomb

import (
	"fmt"
	"reflect"
)

// Pair is the flat two-element tuple Seq2/Ap/Tag build their results
// from; Go has no anonymous tuple type, so combinators that combine two
// differently-typed children return Pair[A, B] explicitly.
type Pair[A, B any] struct {
	First  A
	Second B
}

// --- Trivial ---

// Return succeeds without consuming, yielding v.
func Return[V any](v V) Parser[V] {
	return func(in Input) Result[V] { return Succeed(v, in) }
}

// Pure is an alias of Return.
func Pure[V any](v V) Parser[V] { return Return(v) }

// EmptyList succeeds without consuming, yielding an empty slice.
func EmptyList[V any]() Parser[[]V] {
	return Return[[]V](nil)
}

// FailWith always fails with content at the current position.
func FailWith[V any](content Content) Parser[V] {
	return func(in Input) Result[V] { return Fail[V](Error{content, in.Pos}) }
}

// --- Sequencing ---

// Seq2 runs a then b, yielding the pair of their values.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(in Input) Result[Pair[A, B]] {
		ra := a(in)
		if !ra.OK() {
			return Fail[Pair[A, B]](ra.Err)
		}
		rb := b(ra.Rest)
		if !rb.OK() {
			return Fail[Pair[A, B]](rb.Err)
		}
		return Succeed(Pair[A, B]{ra.Value, rb.Value}, rb.Rest)
	}
}

// Seq runs a homogeneous list of parsers in order, yielding their values
// as a slice (the spec's "explicit tuple form" threaded via append).
func Seq[V any](ps ...Parser[V]) Parser[[]V] {
	return func(in Input) Result[[]V] {
		vals := make([]V, 0, len(ps))
		cur := in
		for _, p := range ps {
			r := p(cur)
			if !r.OK() {
				return Fail[[]V](r.Err)
			}
			vals = append(vals, r.Value)
			cur = r.Rest
		}
		return Succeed(vals, cur)
	}
}

// Cons runs h then t, yielding [h.Value | t.Value...].
func Cons[V any](h Parser[V], t Parser[[]V]) Parser[[]V] {
	return func(in Input) Result[[]V] {
		rh := h(in)
		if !rh.OK() {
			return Fail[[]V](rh.Err)
		}
		rt := t(rh.Rest)
		if !rt.OK() {
			return Fail[[]V](rt.Err)
		}
		out := make([]V, 0, len(rt.Value)+1)
		out = append(out, rh.Value)
		out = append(out, rt.Value...)
		return Succeed(out, rt.Rest)
	}
}

// Concat runs a then b, yielding the concatenation of their list values.
func Concat[V any](a, b Parser[[]V]) Parser[[]V] {
	return Map(Seq2(a, b), func(p Pair[[]V, []V]) []V {
		out := make([]V, 0, len(p.First)+len(p.Second))
		out = append(out, p.First...)
		out = append(out, p.Second...)
		return out
	})
}

// SConcat runs a then b, yielding the concatenation of their string values.
func SConcat(a, b Parser[string]) Parser[string] {
	return Map(Seq2(a, b), func(p Pair[string, string]) string { return p.First + p.Second })
}

// SCons prepends the codepoint c parses to the string s parses.
func SCons(c Parser[rune], s Parser[string]) Parser[string] {
	return Map(Seq2(c, s), func(p Pair[rune, string]) string { return string(p.First) + p.Second })
}

// SAppend appends the codepoint c parses after the string s parses.
func SAppend(s Parser[string], c Parser[rune]) Parser[string] {
	return Map(Seq2(s, c), func(p Pair[string, rune]) string { return p.First + string(p.Second) })
}

// Ap runs a then b, yielding f(a.Value, b.Value).
func Ap[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	return Map(Seq2(a, b), func(p Pair[A, B]) R { return f(p.First, p.Second) })
}

// SkipLeft runs a then b, keeping b's value.
func SkipLeft[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Seq2(a, b), func(p Pair[A, B]) B { return p.Second })
}

// SkipRight runs a then b, keeping a's value.
func SkipRight[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Seq2(a, b), func(p Pair[A, B]) A { return p.First })
}

// SkipAround runs pre, p, post in order, keeping only p's value.
func SkipAround[P, V, Q any](pre Parser[P], p Parser[V], post Parser[Q]) Parser[V] {
	return SkipLeft(pre, SkipRight(p, post))
}

// Between is SkipAround with pre/post given before p, matching the
// spec's between(pre, post, p) argument order.
func Between[P, V, Q any](pre Parser[P], post Parser[Q], p Parser[V]) Parser[V] {
	return SkipAround(pre, p, post)
}

// --- Choice ---

// Alt2 tries a; on failure it retries b from the original (input,
// position). On a double failure it emits Error.Alt(ea, eb). Backtracking
// is unconditional regardless of how much a consumed before failing.
func Alt2[V any](a, b Parser[V]) Parser[V] {
	return func(in Input) Result[V] {
		ra := a(in)
		if ra.OK() {
			return ra
		}
		rb := b(in)
		if rb.OK() {
			return rb
		}
		return Fail[V](ra.Err.Alt(rb.Err))
	}
}

// Alt left-folds Alt2 over a variadic list of alternatives.
func Alt[V any](ps ...Parser[V]) Parser[V] {
	if len(ps) == 0 {
		panic("pcomb: Alt requires at least one alternative")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Alt2(acc, p)
	}
	return acc
}

// --- Mapping ---

// Map runs p, then applies f to its value on success.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) Result[B] {
		r := p(in)
		if !r.OK() {
			return Fail[B](r.Err)
		}
		return Succeed(f(r.Value), r.Rest)
	}
}

// As discards p's value and yields x on success.
func As[A, B any](p Parser[A], x B) Parser[B] {
	return Map(p, func(A) B { return x })
}

// Tag runs p, yielding the pair (t, p's value).
func Tag[T, V any](p Parser[V], t T) Parser[Pair[T, V]] {
	return Map(p, func(v V) Pair[T, V] { return Pair[T, V]{t, v} })
}

// Filter succeeds iff pred holds of p's value; otherwise it fails
// "`v' failed predicate" at p's start position.
func Filter[V any](p Parser[V], pred func(V) bool) Parser[V] {
	return func(in Input) Result[V] {
		r := p(in)
		if !r.OK() {
			return r
		}
		if !pred(r.Value) {
			return Fail[V](MessageAt(in.Pos, fmt.Sprintf("`%v' failed predicate", r.Value)))
		}
		return r
	}
}

// Reverse reverses p's list value.
func Reverse[V any](p Parser[[]V]) Parser[[]V] {
	return Map(p, func(vs []V) []V {
		out := make([]V, len(vs))
		for i, v := range vs {
			out[len(vs)-1-i] = v
		}
		return out
	})
}

// --- Repetition ---

// Many greedily collects values of p until it fails, makes no progress,
// or bound's max is reached; it succeeds iff the collected count meets
// bound's min, else it propagates the inner failure. Implemented as an
// explicit loop, not recursion, per the resource-discipline note on long
// inputs (spec §5).
func Many[V any](p Parser[V], bound Bound) Parser[[]V] {
	return func(in Input) Result[[]V] {
		var vals []V
		cur := in
		for !bound.reached(len(vals)) {
			r := p(cur)
			if !r.OK() {
				if bound.satisfied(len(vals)) {
					return Succeed(vals, cur)
				}
				return Fail[[]V](r.Err)
			}
			if r.Rest.Pos == cur.Pos {
				// no progress: stop to guarantee termination.
				break
			}
			vals = append(vals, r.Value)
			cur = r.Rest
		}
		if !bound.satisfied(len(vals)) {
			return Fail[[]V](ExpectedAt(cur.Pos, "more repetitions"))
		}
		return Succeed(vals, cur)
	}
}

// Many1 is Many(p, AtLeast(1)) capped at max (Unbounded for no cap).
func Many1[V any](p Parser[V], max int) Parser[[]V] {
	return Many(p, Bound{Min: 1, Max: max})
}

// Reduce is Many, but folds in place from z via f(value, acc) -> acc
// instead of collecting a slice.
func Reduce[V, Z any](p Parser[V], z Z, f func(V, Z) Z, bound Bound) Parser[Z] {
	return func(in Input) Result[Z] {
		acc := z
		count := 0
		cur := in
		for !bound.reached(count) {
			r := p(cur)
			if !r.OK() {
				if bound.satisfied(count) {
					return Succeed(acc, cur)
				}
				return Fail[Z](r.Err)
			}
			if r.Rest.Pos == cur.Pos {
				break
			}
			acc = f(r.Value, acc)
			count++
			cur = r.Rest
		}
		if !bound.satisfied(count) {
			return Fail[Z](ExpectedAt(cur.Pos, "more repetitions"))
		}
		return Succeed(acc, cur)
	}
}

// RuneLike constrains StringOf's inner parser to yields the spec leaves
// unspecified behavior for anything else (§9's open question): a single
// codepoint, or a codepoint slice.
type RuneLike interface {
	~rune | ~[]rune
}

// StringOf collects p's yields (rune or []rune) into a string. p may be a charset.Descriptor-backed Parser[rune] built by the
// caller via OneOf, matching the spec's "accepts a charset descriptor as
// shorthand for one_of(desc)" — callers pass OneOf(tbl, desc) directly.
func StringOf[R RuneLike](p Parser[R], bound Bound) Parser[string] {
	return Reduce(p, "", func(v R, acc string) string {
		return acc + runeLikeString(v)
	}, bound)
}

func runeLikeString[R RuneLike](v R) string {
	switch x := any(v).(type) {
	case rune:
		return string(x)
	case []rune:
		return string(x)
	default:
		// a named type whose underlying type is rune or []rune
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			rs := make([]rune, rv.Len())
			for i := range rs {
				rs[i] = rune(rv.Index(i).Int())
			}
			return string(rs)
		}
		return string(rune(rv.Int()))
	}
}

// atStart rewrites err's position to startPos, keeping its content. Used
// by Sep*, Chain_*, and ManyUntil (spec §7) to report a final failure at
// the construct's own boundary rather than wherever the failing
// sub-parser happened to land.
func atStart(err Error, startPos int) Error {
	return Error{Content: err.Content, Pos: startPos}
}

// --- Bounded until ---

// ManyUntil runs term repeatedly, checking end before each iteration: if
// end succeeds (a zero-width peek — its consumption is discarded), the
// loop stops. Otherwise term must make progress; its value is appended.
// A final failure is reported at in's start position (spec §7).
func ManyUntil[V, E any](term Parser[V], end Parser[E]) Parser[[]V] {
	return func(in Input) Result[[]V] {
		var vals []V
		cur := in
		for {
			if re := end(cur); re.OK() {
				return Succeed(vals, cur)
			}
			rt := term(cur)
			if !rt.OK() {
				return Fail[[]V](atStart(rt.Err, in.Pos))
			}
			if rt.Rest.Pos == cur.Pos {
				return Fail[[]V](atStart(ExpectedAt(cur.Pos, "progress before end"), in.Pos))
			}
			vals = append(vals, rt.Value)
			cur = rt.Rest
		}
	}
}

// --- Skip loops ---

// SkipMany consumes left greedily (progress required), then matches
// right from the final position, yielding right's value.
func SkipMany[L, R any](left Parser[L], right Parser[R]) Parser[R] {
	return func(in Input) Result[R] {
		cur := in
		for {
			rl := left(cur)
			if !rl.OK() || rl.Rest.Pos == cur.Pos {
				break
			}
			cur = rl.Rest
		}
		return right(cur)
	}
}

// --- Separation ---

// Sep matches zero or more term separated by sep, no trailing separator.
func Sep[V, S any](term Parser[V], sep Parser[S]) Parser[[]V] {
	return Alt2(Sep1(term, sep), EmptyList[V]())
}

// Sep1 matches one or more term separated by sep. A final failure is
// reported at in's start position (spec §7).
func Sep1[V, S any](term Parser[V], sep Parser[S]) Parser[[]V] {
	return func(in Input) Result[[]V] {
		r0 := term(in)
		if !r0.OK() {
			return Fail[[]V](atStart(r0.Err, in.Pos))
		}
		vals := []V{r0.Value}
		cur := r0.Rest
		for {
			rs := sep(cur)
			if !rs.OK() {
				break
			}
			rt := term(rs.Rest)
			if !rt.OK() {
				return Fail[[]V](atStart(rt.Err, in.Pos))
			}
			if rt.Rest.Pos == cur.Pos {
				// no progress: stop to guarantee termination.
				break
			}
			vals = append(vals, rt.Value)
			cur = rt.Rest
		}
		return Succeed(vals, cur)
	}
}

// SepEnd matches zero or more term separated by sep, accepting an
// optional trailing separator unconditionally once term stops matching.
func SepEnd[V, S any](term Parser[V], sep Parser[S]) Parser[[]V] {
	return Alt2(SepEnd1(term, sep), EmptyList[V]())
}

// SepEnd1 matches one or more term separated by sep, accepting an
// optional trailing separator. A final failure is reported at in's
// start position (spec §7).
func SepEnd1[V, S any](term Parser[V], sep Parser[S]) Parser[[]V] {
	return func(in Input) Result[[]V] {
		r0 := term(in)
		if !r0.OK() {
			return Fail[[]V](atStart(r0.Err, in.Pos))
		}
		vals := []V{r0.Value}
		cur := r0.Rest
		for {
			rs := sep(cur)
			if !rs.OK() {
				break
			}
			start := cur.Pos
			cur = rs.Rest
			rt := term(cur)
			if !rt.OK() {
				// trailing separator, consumed unconditionally.
				break
			}
			if rt.Rest.Pos == start {
				// no progress: stop to guarantee termination.
				break
			}
			vals = append(vals, rt.Value)
			cur = rt.Rest
		}
		return Succeed(vals, cur)
	}
}

// --- Chaining ---

// ChainLeft matches one or more term with op's binary combiner applied
// left-associatively between them. A final failure is reported at in's
// start position (spec §7).
func ChainLeft[V any](term Parser[V], op Parser[func(V, V) V]) Parser[V] {
	return func(in Input) Result[V] {
		r0 := term(in)
		if !r0.OK() {
			return Fail[V](atStart(r0.Err, in.Pos))
		}
		acc := r0.Value
		cur := r0.Rest
		for {
			ro := op(cur)
			if !ro.OK() {
				break
			}
			rt := term(ro.Rest)
			if !rt.OK() {
				return Fail[V](atStart(rt.Err, in.Pos))
			}
			acc = ro.Value(acc, rt.Value)
			cur = rt.Rest
		}
		return Succeed(acc, cur)
	}
}

// ChainRight matches one or more term, right-associatively: the
// combiner is deferred until the whole chain is parsed. A final failure
// is reported at in's start position (spec §7).
func ChainRight[V any](term Parser[V], op Parser[func(V, V) V]) Parser[V] {
	return func(in Input) Result[V] {
		r0 := term(in)
		if !r0.OK() {
			return Fail[V](atStart(r0.Err, in.Pos))
		}
		values := []V{r0.Value}
		var combiners []func(V, V) V
		cur := r0.Rest
		for {
			ro := op(cur)
			if !ro.OK() {
				break
			}
			rt := term(ro.Rest)
			if !rt.OK() {
				return Fail[V](atStart(rt.Err, in.Pos))
			}
			combiners = append(combiners, ro.Value)
			values = append(values, rt.Value)
			cur = rt.Rest
		}
		acc := values[len(values)-1]
		for i := len(combiners) - 1; i >= 0; i-- {
			acc = combiners[i](values[i], acc)
		}
		return Succeed(acc, cur)
	}
}

// --- Lookahead ---

// Lookahead runs p and, on success, restores the original (input,
// position) before yielding p's value; p's consumption never reaches the
// caller.
func Lookahead[V any](p Parser[V]) Parser[V] {
	return func(in Input) Result[V] {
		r := p(in)
		if !r.OK() {
			return r
		}
		return Succeed(r.Value, in)
	}
}

// Exclude runs p; on success it fails Unexpected(inspect(v)) without
// consuming, and on failure it succeeds without consuming.
func Exclude[V any](p Parser[V]) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		r := p(in)
		if r.OK() {
			return Fail[struct{}](UnexpectedAt(in.Pos, fmt.Sprintf("%v", r.Value)))
		}
		return Succeed(struct{}{}, in)
	}
}

// --- Monadic bind ---

// Bind runs p, then calls f(p's value) to produce a new parser and runs
// it from p's end position.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Input) Result[B] {
		r := p(in)
		if !r.OK() {
			return Fail[B](r.Err)
		}
		return f(r.Value)(r.Rest)
	}
}

// --- Labeling ---

// Label runs p; on a failure at a position no greater than in's start,
// it rewrites the error to Expected(name) at the start position,
// informative over generic. A failure that occurred further in is left
// unchanged.
func Label[V any](p Parser[V], name string) Parser[V] {
	return func(in Input) Result[V] {
		r := p(in)
		if r.OK() || r.Err.Pos > in.Pos {
			return r
		}
		return Fail[V](ExpectedAt(in.Pos, name))
	}
}

// --- Adapters ---

// ParseWith treats an external str -> (value, remainder) | (error, msg)
// function as a Parser: it advances position by the codepoint difference
// between the consumed prefix and the original remaining input.
func ParseWith[V any](name string, f func(string) (V, string, error)) Parser[V] {
	return func(in Input) Result[V] {
		v, remainder, err := f(string(in.Rest))
		if err != nil {
			return Fail[V](MessageAt(in.Pos, name+": "+err.Error()))
		}
		consumed := len(in.Rest) - len(remainder)
		if consumed < 0 || consumed > len(in.Rest) {
			return Fail[V](MessageAt(in.Pos, name+": invalid remainder"))
		}
		cur := in
		rest := in.Rest
		n := 0
		for n < consumed && len(rest) > 0 {
			_, w, ok := cur.Peek()
			if !ok {
				break
			}
			cur = cur.Advance(w)
			rest = rest[w:]
			n += w
		}
		return Succeed(v, cur)
	}
}

// ParseAsFunc is the function shape ParseAs adapts: a module's exported
// parse entry point.
type ParseAsFunc[V any] func(string) (V, string, error)

// ParseAs adapts an external module's parse function the same way
// ParseWith does, using the module's own name for diagnostics.
func ParseAs[V any](name string, fn ParseAsFunc[V]) Parser[V] {
	return ParseWith(name, func(s string) (V, string, error) { return fn(s) })
}
