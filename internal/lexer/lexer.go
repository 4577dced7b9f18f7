package lexer

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/kaleido-lang/kaleido/internal/lexer/token"
)

const eof = '\000'

// Lexer turns a character stream into tokens. It keeps exactly one pending
// character of lookahead between calls to Next, which is all the pushback
// the grammar ever needs. The lexer never rejects a character, so it emits
// no diagnostics of its own.
type Lexer struct {
	Filename string

	r       io.ByteReader
	pending byte
	primed  bool
	pos     token.Pos
}

func New(filename string, r io.ByteReader) *Lexer {
	lexer := new(Lexer)

	lexer.Filename = filename
	lexer.r = r
	lexer.pos = token.NewPosition(filename, 1, 1)

	return lexer
}

func NewFromString(filename, src string) *Lexer {
	return New(filename, strings.NewReader(src))
}

func NewFromFilePath(path string) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, bytes.NewReader(src)), nil
}

func (lex *Lexer) Next() *token.Token {
	tok := &token.Token{}

	lex.skipWhitespace()
	for lex.peekChar() == '#' {
		lex.skipComment()
		lex.skipWhitespace()
	}

	character := lex.peekChar()
	tok.Pos = lex.pos

	switch {
	case character == eof:
		tok.Kind = token.EOF
	case isAlpha(character):
		lex.getIdOrKeyword(tok)
	case isDigit(character) || character == '.':
		lex.getNumberLit(tok)
	default:
		lex.getSymbol(tok, character)
	}

	return tok
}

// Useful for testing and for dumping a token stream.
func (lex *Lexer) Tokenize() []*token.Token {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	identifier := lex.readWhile(
		func(chr byte) bool { return isAlpha(chr) || isDigit(chr) },
	)
	tok.Kind = token.IDENT
	tok.Lexeme = identifier
	keyword, ok := token.KEYWORDS[string(identifier)]
	if ok {
		tok.Kind = keyword
	}
}

// Numbers are scanned as [0-9.]+ with no validation of the digit and dot
// arrangement. Conversion happens later through token.Float64, which keeps
// the permissive strtod behavior for malformed literals like "1.2.3".
func (lex *Lexer) getNumberLit(tok *token.Token) {
	number := lex.readWhile(
		func(chr byte) bool { return isDigit(chr) || chr == '.' },
	)
	tok.Kind = token.NUMBER
	tok.Lexeme = number
}

func (lex *Lexer) getSymbol(tok *token.Token, character byte) {
	switch character {
	case '(':
		tok.Kind = token.OPEN_PAREN
	case ')':
		tok.Kind = token.CLOSE_PAREN
	case ',':
		tok.Kind = token.COMMA
	case ';':
		tok.Kind = token.SEMICOLON
	default:
		// Unrecognized characters are never an error here. The parser
		// checks them against the operator table.
		tok.Kind = token.SYMBOL
	}
	tok.Lexeme = []byte{character}
	lex.nextChar()
}

// skipComment consumes a '#' comment through the end of the line. A comment
// that runs into the end of input is fine, the next Next call returns EOF.
func (lex *Lexer) skipComment() {
	for {
		character := lex.peekChar()
		if character == eof || character == '\n' || character == '\r' {
			break
		}
		lex.nextChar()
	}
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	var read []byte

	for {
		character := lex.peekChar()
		if character == eof || !isValid(character) {
			break
		}
		read = append(read, character)
		lex.nextChar()
	}

	return read
}

func (lex *Lexer) nextChar() byte {
	character := lex.peekChar()
	if character == eof {
		return eof
	}
	lex.pos.Move(character)
	lex.primed = false
	return character
}

func (lex *Lexer) peekChar() byte {
	if !lex.primed {
		character, err := lex.r.ReadByte()
		if err != nil {
			character = eof
		}
		lex.pending = character
		lex.primed = true
	}
	return lex.pending
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
