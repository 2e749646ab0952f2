package pcomb

import "fmt"

// OpKind tags the four operator-descriptor shapes of the precedence
// engine.
type OpKind int

const (
	OpPrefix OpKind = iota
	OpPostfix
	OpInfixLeft
	OpInfixRight
)

// Op is an Operator Descriptor (spec §3): a tagged value produced by the
// Prefix/Postfix/InfixLeft/InfixRight builders and consumed by Prec. BP
// is the binding power for Prefix/Postfix; LBP/RBP are the (left, right)
// binding powers for the two infix shapes, asymmetric so the same
// "bp >= minBP" test implements both associativities.
type Op[V any] struct {
	Kind   OpKind
	BP     int
	LBP    int
	RBP    int
	Unary  func(V) V
	Binary func(V, V) V
}

// Prefix builds a Parser[Op[V]] from an operator-token parser op: on a
// match it yields a Prefix descriptor at binding power 2*precedence.
func Prefix[V, T any](op Parser[T], precedence int, f func(V) V) Parser[Op[V]] {
	return Map(op, func(T) Op[V] {
		return Op[V]{Kind: OpPrefix, BP: 2 * precedence, Unary: f}
	})
}

// Postfix builds a Parser[Op[V]] yielding a Postfix descriptor at
// binding power 2*precedence - 1.
func Postfix[V, T any](op Parser[T], precedence int, f func(V) V) Parser[Op[V]] {
	return Map(op, func(T) Op[V] {
		return Op[V]{Kind: OpPostfix, BP: 2*precedence - 1, Unary: f}
	})
}

// InfixLeft builds a Parser[Op[V]] yielding a left-associative InfixLeft
// descriptor with (lbp, rbp) = (2*precedence - 1, 2*precedence).
func InfixLeft[V, T any](op Parser[T], precedence int, f func(V, V) V) Parser[Op[V]] {
	return Map(op, func(T) Op[V] {
		return Op[V]{Kind: OpInfixLeft, LBP: 2*precedence - 1, RBP: 2 * precedence, Binary: f}
	})
}

// InfixRight builds a Parser[Op[V]] yielding a right-associative
// InfixRight descriptor with (lbp, rbp) = (2*precedence, 2*precedence - 1).
func InfixRight[V, T any](op Parser[T], precedence int, f func(V, V) V) Parser[Op[V]] {
	return Map(op, func(T) Op[V] {
		return Op[V]{Kind: OpInfixRight, LBP: 2 * precedence, RBP: 2*precedence - 1, Binary: f}
	})
}

// Prec implements Pratt/precedence-climbing (spec §4.H) over a term atom
// parser and an op parser yielding Operator Descriptors. Modeled on
// std/compiler/parser.go's hand-rolled parseBinaryExpr(minPrec), which
// this generalizes from a fixed operator switch to a user-supplied op
// parser and the four-shape descriptor.
func Prec[V any](term Parser[V], op Parser[Op[V]], minBP int) Parser[V] {
	var climb func(Input, int) Result[V]
	climb = func(in Input, minBP int) Result[V] {
		var value V
		cur := in

		if ro := op(in); ro.OK() && ro.Value.Kind == OpPrefix {
			roperand := climb(ro.Rest, ro.Value.BP)
			if !roperand.OK() {
				return roperand
			}
			value = ro.Value.Unary(roperand.Value)
			cur = roperand.Rest
		} else {
			rt := term(in)
			if !rt.OK() {
				return rt
			}
			value = rt.Value
			cur = rt.Rest
		}

		for {
			ro := op(cur)
			if !ro.OK() {
				return Succeed(value, cur)
			}
			switch ro.Value.Kind {
			case OpPostfix:
				if ro.Value.BP < minBP {
					return Succeed(value, cur)
				}
				value = ro.Value.Unary(value)
				cur = ro.Rest
			case OpInfixLeft, OpInfixRight:
				if ro.Value.LBP < minBP {
					return Succeed(value, cur)
				}
				rright := climb(ro.Rest, ro.Value.RBP)
				if !rright.OK() {
					return rright
				}
				value = ro.Value.Binary(value, rright.Value)
				cur = rright.Rest
			default:
				return Succeed(value, cur)
			}
		}
	}
	return func(in Input) Result[V] { return climb(in, minBP) }
}

// Node is the generic tagged tuple spec §4.H describes as the default
// shape Prefix/Postfix/InfixLeft/InfixRight build when their combining
// function f is omitted: Tag holds the matched operator token
// (stringified), Children the operand(s) in source order. Go generics
// cannot construct a default value of an arbitrary V (there is no zero
// "tagged tuple of V" without a concrete shared representation), so the
// default-constructor surface is offered here as a concrete Parser[Node]
// family (NodePrefix/NodePostfix/NodeInfixLeft/NodeInfixRight) alongside
// the fully generic, f-required builders above, rather than as an
// optional f on Prefix/Postfix/InfixLeft/InfixRight themselves. See
// DESIGN.md.
type Node struct {
	Tag      string
	Children []Node
}

// tokenTag stringifies a matched operator token for Node.Tag: a rune
// token becomes its character, any other token goes through fmt.Sprint.
func tokenTag(t any) string {
	if r, ok := t.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(t)
}

// NodePrefix is Prefix's default-descriptor form: f defaults to
// wrapping op's matched token and the single operand into a Node.
func NodePrefix[T any](op Parser[T], precedence int) Parser[Op[Node]] {
	return Map(op, func(t T) Op[Node] {
		tag := tokenTag(t)
		return Op[Node]{Kind: OpPrefix, BP: 2 * precedence, Unary: func(v Node) Node {
			return Node{Tag: tag, Children: []Node{v}}
		}}
	})
}

// NodePostfix is Postfix's default-descriptor form.
func NodePostfix[T any](op Parser[T], precedence int) Parser[Op[Node]] {
	return Map(op, func(t T) Op[Node] {
		tag := tokenTag(t)
		return Op[Node]{Kind: OpPostfix, BP: 2*precedence - 1, Unary: func(v Node) Node {
			return Node{Tag: tag, Children: []Node{v}}
		}}
	})
}

// NodeInfixLeft is InfixLeft's default-descriptor form: f defaults to
// wrapping op's matched token and both operands, left then right, into
// a Node.
func NodeInfixLeft[T any](op Parser[T], precedence int) Parser[Op[Node]] {
	return Map(op, func(t T) Op[Node] {
		tag := tokenTag(t)
		return Op[Node]{Kind: OpInfixLeft, LBP: 2*precedence - 1, RBP: 2 * precedence, Binary: func(l, r Node) Node {
			return Node{Tag: tag, Children: []Node{l, r}}
		}}
	})
}

// NodeInfixRight is InfixRight's default-descriptor form.
func NodeInfixRight[T any](op Parser[T], precedence int) Parser[Op[Node]] {
	return Map(op, func(t T) Op[Node] {
		tag := tokenTag(t)
		return Op[Node]{Kind: OpInfixRight, LBP: 2 * precedence, RBP: 2*precedence - 1, Binary: func(l, r Node) Node {
			return Node{Tag: tag, Children: []Node{l, r}}
		}}
	})
}
