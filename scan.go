package mathexpr

import (
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	kind tokenKind
	num  float64 // value of a tokenNum
	name string  // name of a tokenChar
	pos  int     // rune column of the first rune, starting at 1
}

func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return "Numeric(" + strconv.FormatFloat(t.num, 'g', -1, 64) + ")@" + strconv.Itoa(t.pos)
	case tokenChar:
		return "Char(" + t.name + ")@" + strconv.Itoa(t.pos)
	}
	return t.kind.String() + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	tokenPlus
	tokenMinus
	tokenMul
	tokenDiv
	tokenPow
	tokenOpen
	tokenClose
	tokenNum
	tokenChar
)

func (k tokenKind) String() string {
	names := [...]string{"None", "Plus", "Minus", "Multiply", "Divide", "Exponent", "OpenBracket", "CloseBracket", "Numeric", "Char"}
	if int(k) < len(names) {
		return names[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Superscripts maps the runes the formatter uses for integer exponents to
// their ASCII counterparts. The scanner accepts them back, so formatted
// output scans to an equivalent token sequence.
const Superscripts = "⁰¹²³⁴⁵⁶⁷⁸⁹⁻"

var superdigits = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁻': '-',
}

// scan converts text into a token sequence. It is total: a rune that
// cannot begin a token is skipped, reporting it to diag when diag is
// non-nil. Adjacent operand-like tokens get a synthetic multiplication
// between them, so "2x" and "(x+1)(x-1)" scan as products.
func scan(text string, diag func(col int, r rune)) []token {
	src := []rune(text)
	var toks []token
	i := 0
	for i < len(src) {
		r := src[i]
		tok := token{pos: i + 1}
		switch {
		case r == '(':
			tok.kind = tokenOpen
		case r == ')':
			tok.kind = tokenClose
		case r == '+':
			tok.kind = tokenPlus
		case r == '-':
			tok.kind = tokenMinus
		case r == '*', r == '×', r == '•':
			tok.kind = tokenMul
		case r == '/', r == '÷':
			tok.kind = tokenDiv
		case r == '^':
			tok.kind = tokenPow
		case '0' <= r && r <= '9':
			j := i
			bad := -1
			dotted := false
			for j < len(src) && ('0' <= src[j] && src[j] <= '9' || src[j] == '.') {
				if src[j] == '.' {
					if dotted && bad < 0 {
						bad = j
					}
					dotted = true
				}
				j++
			}
			s := string(src[i:j])
			v, err := strconv.ParseFloat(s, 64)
			if err != nil && diag != nil {
				// Malformed numerals like "1.2.3" are kept, not rejected,
				// diagnosing the surplus decimal point.
				if bad < 0 {
					bad = i
				}
				diag(bad+1, src[bad])
			}
			tok.kind = tokenNum
			tok.num = v
			i = j
			toks = append(toks, tok)
			continue
		case unicode.IsLetter(r):
			j := i
			for j < len(src) && unicode.IsLetter(src[j]) {
				j++
			}
			tok.kind = tokenChar
			tok.name = string(src[i:j])
			i = j
			toks = append(toks, tok)
			continue
		case strings.ContainsRune(Superscripts, r):
			// A superscript run is an exponentiation by the spelled-out
			// integer: x² scans as x ^ 2.
			var b strings.Builder
			j := i
			for j < len(src) && strings.ContainsRune(Superscripts, src[j]) {
				b.WriteRune(superdigits[src[j]])
				j++
			}
			v, err := strconv.ParseFloat(b.String(), 64)
			if err != nil {
				if diag != nil {
					diag(i+1, r)
				}
				i = j
				continue
			}
			toks = append(toks, token{kind: tokenPow, pos: i + 1})
			toks = append(toks, token{kind: tokenNum, num: v, pos: i + 1})
			i = j
			continue
		case unicode.IsSpace(r):
			i++
			continue
		default:
			if diag != nil {
				diag(i+1, r)
			}
			i++
			continue
		}
		toks = append(toks, tok)
		i++
	}
	return insertImplicitMul(toks)
}

// insertImplicitMul inserts a multiplication token between adjacent
// operand-like tokens: 2x, 2(, x(, )x and )( all multiply.
func insertImplicitMul(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i, tok := range toks {
		if i > 0 && implicitMul(toks[i-1].kind, tok.kind) {
			out = append(out, token{kind: tokenMul, pos: tok.pos})
		}
		out = append(out, tok)
	}
	return out
}

func implicitMul(prev, next tokenKind) bool {
	switch {
	case prev == tokenNum && next == tokenChar:
	case prev == tokenNum && next == tokenOpen:
	case prev == tokenChar && next == tokenOpen:
	case prev == tokenClose && next == tokenChar:
	case prev == tokenClose && next == tokenOpen:
	default:
		return false
	}
	return true
}
