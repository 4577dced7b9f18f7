package token

import "log"

type Kind int

const (
	// EOF
	EOF Kind = iota

	// Identifier
	IDENT

	// Number literal
	NUMBER

	// Keywords
	DEF
	EXTERN

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// ,
	COMMA

	// ;
	SEMICOLON

	// Any other single character, operators included. The lexer never
	// rejects a character, it hands it to the parser as a SYMBOL and the
	// parser decides whether the precedence table knows it.
	SYMBOL
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"def":    DEF,
	"extern": EXTERN,
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case IDENT:
		return "identifier"
	case NUMBER:
		return "number literal"
	case DEF:
		return "def"
	case EXTERN:
		return "extern"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case SYMBOL:
		return "symbol"
	default:
		log.Fatalf("String() method not defined for the following token kind '%d'", kind)
	}
	return ""
}
