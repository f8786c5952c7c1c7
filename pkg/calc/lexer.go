// Package calc implements the calculator's arithmetic. Only numbers,
// + - × ÷ (or * /), unary signs and parentheses are understood; there is
// no way to reach anything else from an expression.
package calc

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies the type of a lexer token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenLParen
	TokenRParen
	TokenEOF
)

var tokenNames = map[TokenKind]string{
	TokenNumber: "number",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenMul:    "×",
	TokenDiv:    "÷",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenEOF:    "end of input",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Token is a lexed token with its byte offset.
type Token struct {
	Kind  TokenKind
	Value float64
	Pos   int
}

// Lex tokenizes src.
func Lex(src string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(src) {
		ch, size := utf8.DecodeRuneInString(src[pos:])
		if unicode.IsSpace(ch) {
			pos += size
			continue
		}
		if kind, ok := operatorKind(ch); ok {
			tokens = append(tokens, Token{Kind: kind, Pos: pos})
			pos += size
			continue
		}
		if isDigit(ch) || ch == '.' {
			end := scanNumber(src, pos)
			text := src[pos:end]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("bad number %q", text)}
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Value: v, Pos: pos})
			pos = end
			continue
		}
		return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", string(ch))}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Pos: pos})
	return tokens, nil
}

func operatorKind(ch rune) (TokenKind, bool) {
	switch ch {
	case '+':
		return TokenPlus, true
	case '-', '−':
		return TokenMinus, true
	case '*', '×':
		return TokenMul, true
	case '/', '÷':
		return TokenDiv, true
	case '(':
		return TokenLParen, true
	case ')':
		return TokenRParen, true
	}
	return 0, false
}

// scanNumber returns the end offset of the digits-and-dots run at start.
// Malformed runs such as "1.2.3" are left to ParseFloat to reject.
func scanNumber(src string, start int) int {
	end := start
	for end < len(src) && (isDigit(rune(src[end])) || src[end] == '.') {
		end++
	}
	return end
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
