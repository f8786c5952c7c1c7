package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotFinite      = errors.New("result is not a finite number")
)

// SyntaxError reports malformed input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// Expr is an arithmetic expression tree.
type Expr interface {
	Eval() (float64, error)
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Unary is a signed operand.
type Unary struct {
	Op      TokenKind
	Operand Expr
}

// Binary is a two-operand operation.
type Binary struct {
	Left  Expr
	Op    TokenKind
	Right Expr
}

func (n *Number) Eval() (float64, error) { return n.Value, nil }
func (n *Number) String() string         { return Format(n.Value) }

func (u *Unary) Eval() (float64, error) {
	v, err := u.Operand.Eval()
	if err != nil {
		return 0, err
	}
	if u.Op == TokenMinus {
		return -v, nil
	}
	return v, nil
}

func (u *Unary) String() string { return fmt.Sprintf("(%s%s)", u.Op, u.Operand) }

func (b *Binary) Eval() (float64, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	var v float64
	switch b.Op {
	case TokenPlus:
		v = l + r
	case TokenMinus:
		v = l - r
	case TokenMul:
		v = l * r
	case TokenDiv:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		v = l / r
	default:
		return 0, fmt.Errorf("unknown operator %s", b.Op)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func (b *Binary) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// Parse builds an expression tree from src.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("×" | "÷") unary }
//	unary  = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
func Parse(src string) (Expr, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected %s", tok.Kind)}
	}
	return e, nil
}

// Evaluate parses and evaluates src.
func Evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokenPlus || p.current().Kind == TokenMinus {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokenMul || p.current().Kind == TokenDiv {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op.Kind, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if k := p.current().Kind; k == TokenPlus || k == TokenMinus {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.Kind, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		return &Number{Value: tok.Value}, nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != TokenRParen {
			return nil, &SyntaxError{Pos: p.current().Pos, Msg: fmt.Sprintf("expected ) but got %s", p.current().Kind)}
		}
		p.advance()
		return inner, nil
	default:
		return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("expected a number but got %s", tok.Kind)}
	}
}
