package mathexpr

import (
	"math"
	"strconv"
	"strings"
)

// Format renders e with minimal bracketing. Integer exponents render as
// Unicode superscripts, so x^2 formats as x². The scanner accepts the
// rendered form back, so Format output parses to an expression that
// evaluates identically.
func (e *Expr) Format() string {
	var b strings.Builder
	e.format(&b, nil)
	return b.String()
}

// format writes e to b. parent is the node e is rendered inside of, or
// nil at the top level; each kind decides from it whether it must wrap
// itself in brackets.
func (e *Expr) format(b *strings.Builder, parent *Expr) {
	switch e.kind {
	case exprConst:
		b.WriteString(strconv.FormatFloat(e.num, 'g', -1, 64))
	case exprUnknown:
		b.WriteString(e.name)
	case exprAdd, exprSub:
		// a + b + c renders flat; any other parent forces brackets.
		wrap := parent != nil && parent.kind != exprAdd && parent.kind != exprSub
		if wrap {
			b.WriteByte('(')
		}
		e.left.format(b, e)
		if e.kind == exprAdd {
			b.WriteString(" + ")
		} else {
			b.WriteString(" - ")
		}
		e.right.format(b, e)
		if wrap {
			b.WriteByte(')')
		}
	case exprMul:
		wrap := parent != nil && parent.kind != exprAdd && parent.kind != exprSub && parent.kind != exprMul
		if wrap {
			b.WriteByte('(')
		}
		e.left.format(b, e)
		b.WriteRune('•')
		e.right.format(b, e)
		if wrap {
			b.WriteByte(')')
		}
	case exprDiv:
		// A Quotient child of a Quotient must bracket, or the flat
		// rendering reads left-associatively: 8/(4/2) is not 8/4/2.
		wrap := parent != nil && (parent.kind == exprMul || parent.kind == exprPow || parent.kind == exprDiv)
		if wrap {
			b.WriteByte('(')
		}
		e.left.format(b, e)
		b.WriteString(" / ")
		e.right.format(b, e)
		if wrap {
			b.WriteByte(')')
		}
	case exprPow:
		// A Power base that is itself a Power must bracket, otherwise
		// adjacent superscript runs merge into a single exponent.
		wrap := e.left.kind == exprPow
		if wrap {
			b.WriteByte('(')
		}
		e.left.format(b, e)
		if wrap {
			b.WriteByte(')')
		}
		if s, ok := superscript(e.right); ok {
			b.WriteString(s)
		} else {
			b.WriteByte('^')
			e.right.format(b, e)
		}
	default:
		panic("mathexpr: invalid expression kind " + e.kind.String())
	}
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻',
}

// superscript renders a constant integer exponent as superscript runes.
func superscript(e *Expr) (string, bool) {
	if e.kind != exprConst {
		return "", false
	}
	v := e.num
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > 1e15 {
		return "", false
	}
	var b strings.Builder
	for _, r := range strconv.FormatFloat(v, 'f', -1, 64) {
		s, ok := superscripts[r]
		if !ok {
			return "", false
		}
		b.WriteRune(s)
	}
	return b.String(), true
}
