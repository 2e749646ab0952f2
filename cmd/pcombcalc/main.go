// Command pcombcalc is a worked grammar built entirely from package
// pcomb: an arithmetic calculator exercising the precedence engine, and
// a bracket-delimited integer list exercising Between/Sep1.
//
//	pcombcalc calc "1 + 2 * 3"
//	pcombcalc list "[1,2,3]"
package main

import (
	"fmt"
	"os"

	"j5.nz/pcomb/pcomb"
	"j5.nz/pcomb/pcomb/charset"
)

func spaces() pcomb.Parser[struct{}] {
	return pcomb.SkipMany(pcomb.OneOf(charset.Latin1Table, charset.Name("blank")), pcomb.Return(struct{}{}))
}

func lexeme[V any](p pcomb.Parser[V]) pcomb.Parser[V] {
	return pcomb.SkipRight(p, spaces())
}

func sym(s string) pcomb.Parser[string] {
	return lexeme(pcomb.String(s))
}

// lazy defers the lookup of *pp until parse time, letting a grammar with
// parenthesized sub-expressions refer to its own top-level parser before
// that parser's definition is complete.
func lazy[V any](pp *pcomb.Parser[V]) pcomb.Parser[V] {
	return func(in pcomb.Input) pcomb.Result[V] { return (*pp)(in) }
}

func intPow(base, exp int) int {
	if exp < 0 {
		return 0
	}
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func digitOf() pcomb.Parser[rune] {
	return pcomb.OneOf(charset.Latin1Table, charset.Name("digit"))
}

func integer() pcomb.Parser[int] {
	digits := pcomb.StringOf(digitOf(), pcomb.AtLeast(1))
	return lexeme(pcomb.Map(digits, func(s string) int {
		n := 0
		for _, c := range s {
			n = n*10 + int(c-'0')
		}
		return n
	}))
}

// buildCalc assembles the arithmetic grammar: the five binary operators
// via the precedence engine (left-associative except '^'), over
// parenthesized or bare integer terms. Unary minus is folded into term
// itself, recursively, rather than given to Prec as a Prefix descriptor:
// '-' already denotes binary subtraction in op, and a single token
// cannot carry both roles through the same op parser (Prec picks
// whichever descriptor matches first, uniformly at every position — see
// precedence_test.go). This mirrors the teacher's own
// parseUnaryExpr/parseBinaryExpr split in std/compiler/parser.go, where
// unary operators are resolved before ever consulting the binary
// precedence table.
func buildCalc() pcomb.Parser[int] {
	var expr, term pcomb.Parser[int]

	term = pcomb.Alt(
		integer(),
		pcomb.Between(sym("("), sym(")"), lazy(&expr)),
		pcomb.Map(pcomb.SkipLeft(sym("-"), lazy(&term)), func(v int) int { return -v }),
	)

	op := pcomb.Alt(
		pcomb.InfixLeft(sym("+"), 2, func(a, b int) int { return a + b }),
		pcomb.InfixLeft(sym("-"), 2, func(a, b int) int { return a - b }),
		pcomb.InfixLeft(sym("*"), 3, func(a, b int) int { return a * b }),
		pcomb.InfixLeft(sym("/"), 3, func(a, b int) int { return a / b }),
		pcomb.InfixRight(sym("^"), 4, intPow),
	)

	expr = pcomb.Prec(term, op, 0)
	return pcomb.SkipLeft(spaces(), pcomb.SkipRight(expr, pcomb.EOF()))
}

func buildList() pcomb.Parser[[]int] {
	digit := pcomb.Map(digitOf(), func(r rune) int { return int(r - '0') })
	return pcomb.Between(
		pcomb.Char('['), pcomb.Char(']'),
		pcomb.Sep1(digit, pcomb.Char(',')),
	)
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: pcombcalc calc|list EXPR")
		os.Exit(2)
	}
	mode, expr := os.Args[1], os.Args[2]

	switch mode {
	case "calc":
		v, err := pcomb.Parse(pcomb.UTF8Input(expr), buildCalc())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(v)
	case "list":
		v, err := pcomb.Parse(pcomb.UTF8Input(expr), buildList())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(v)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", mode)
		os.Exit(2)
	}
}
