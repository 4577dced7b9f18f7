package token

import (
	"fmt"
	"strconv"
)

type Token struct {
	Lexeme []byte
	Kind   Kind
	Pos    Pos
}

func New(lexeme []byte, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

func (token *Token) Name() string {
	if token.Kind == IDENT || token.Kind == SYMBOL || token.Kind == NUMBER {
		return string(token.Lexeme)
	}
	return token.Kind.String()
}

// Float64 converts a NUMBER lexeme the way strtod does: the longest prefix
// that is a valid float wins and any unparseable suffix is dropped, so a
// malformed literal such as "1.2.3" converts as 1.2 instead of failing.
func (token *Token) Float64() float64 {
	lexeme := string(token.Lexeme)
	for len(lexeme) > 0 {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err == nil {
			return value
		}
		lexeme = lexeme[:len(lexeme)-1]
	}
	return 0
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", string(token.Lexeme), token.Kind, token.Pos)
}
