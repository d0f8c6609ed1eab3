// Package mathexpr evaluates arithmetic expressions over a closed grammar:
// numbers, + - * / % operators, floor division, power, parentheses, a fixed
// set of math functions and the constants pi and e. Anything outside the
// grammar fails with ErrInvalidExpression, nothing is ever executed or
// reflected on.
package mathexpr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidExpression marks any input the restricted grammar rejects,
// including malformed syntax, unknown identifiers and domain errors such as
// division by zero.
var ErrInvalidExpression = errors.New("invalid expression")

// functions the grammar accepts, all single-argument
var functions = map[string]func(float64) (float64, error){
	"sin":   wrap(math.Sin),
	"cos":   wrap(math.Cos),
	"tan":   wrap(math.Tan),
	"sqrt":  wrap(math.Sqrt),
	"log":   wrap(math.Log),
	"log10": wrap(math.Log10),
	"ceil":  wrap(math.Ceil),
	"floor": wrap(math.Floor),
	"abs":   wrap(math.Abs),
	"fabs":  wrap(math.Abs),
	"factorial": func(v float64) (float64, error) {
		if v < 0 || v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: factorial needs a non-negative integer", ErrInvalidExpression)
		}
		if v > 170 { // 171! overflows float64
			return 0, fmt.Errorf("%w: factorial argument too large", ErrInvalidExpression)
		}
		res := 1.0
		for i := 2.0; i <= v; i++ {
			res *= i
		}
		return res, nil
	},
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func wrap(f func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) { return f(v), nil }
}

// Eval parses and evaluates the expression. The result is always a finite
// float64; NaN and infinities are rejected as invalid.
func Eval(expr string) (float64, error) {
	toks, err := lex(expr)
	if err != nil {
		return 0, err
	}

	p := &parser{toks: toks}
	res, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokEnd {
		return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidExpression, p.peek().text)
	}

	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, fmt.Errorf("%w: result is not a finite number", ErrInvalidExpression)
	}
	return res, nil
}

type tokenKind int

const (
	tokEnd tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokSlashSlash
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(input) && (input[j] >= '0' && input[j] <= '9' || input[j] == '.') {
				j++
			}
			num, err := strconv.ParseFloat(input[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, input[i:j])
			}
			toks = append(toks, token{kind: tokNumber, text: input[i:j], num: num})
			i = j
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			j := i
			for j < len(input) && (input[j] >= 'a' && input[j] <= 'z' || input[j] >= 'A' && input[j] <= 'Z' || input[j] >= '0' && input[j] <= '9') {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: strings.ToLower(input[i:j])})
			i = j
		case c == '+':
			toks = append(toks, token{kind: tokPlus, text: "+"})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, text: "-"})
			i++
		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				toks = append(toks, token{kind: tokCaret, text: "**"})
				i += 2
				break
			}
			toks = append(toks, token{kind: tokStar, text: "*"})
			i++
		case c == '/':
			if i+1 < len(input) && input[i+1] == '/' {
				toks = append(toks, token{kind: tokSlashSlash, text: "//"})
				i += 2
				break
			}
			toks = append(toks, token{kind: tokSlash, text: "/"})
			i++
		case c == '%':
			toks = append(toks, token{kind: tokPercent, text: "%"})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret, text: "^"})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ","})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidExpression, string(c))
		}
	}
	toks = append(toks, token{kind: tokEnd, text: "end of expression"})
	return toks, nil
}

// recursive descent over: expr -> term (('+'|'-') term)*,
// term -> unary (('*'|'/'|'//'|'%') unary)*, unary -> ('-'|'+') unary | power,
// power -> primary ('^' unary)?, primary -> number | const | func '(' expr ')' | '(' expr ')'
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEnd {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidExpression)
			}
			left /= right
		case tokSlashSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidExpression)
			}
			left = math.Floor(left / right)
		case tokPercent:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("%w: modulo by zero", ErrInvalidExpression)
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	// right-associative, exponent may carry its own unary minus
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) parsePrimary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokIdent:
		if c, ok := constants[t.text]; ok {
			return c, nil
		}
		fn, ok := functions[t.text]
		if !ok {
			return 0, fmt.Errorf("%w: unknown identifier %q", ErrInvalidExpression, t.text)
		}
		if p.peek().kind != tokLParen {
			return 0, fmt.Errorf("%w: %s needs an argument", ErrInvalidExpression, t.text)
		}
		p.next()
		arg, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek().kind == tokComma {
			return 0, fmt.Errorf("%w: %s takes one argument", ErrInvalidExpression, t.text)
		}
		if p.peek().kind != tokRParen {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidExpression)
		}
		p.next()
		return fn(arg)
	case tokLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek().kind != tokRParen {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidExpression)
		}
		p.next()
		return v, nil
	case tokEnd:
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrInvalidExpression)
	default:
		return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidExpression, t.text)
	}
}
