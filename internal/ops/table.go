// Package ops holds the binary operator precedence table. The table is
// configuration, not logic: the parser climbs whatever bindings are
// installed, and new operators are added by insertion.
package ops

import (
	"github.com/kaleido-lang/kaleido/internal/lexer/token"
)

// Table maps a single-character binary operator to its binding strength.
// Higher binds tighter. Entries that are absent or not positive mean "not
// a binary operator".
type Table map[byte]int

// Default returns the stock bindings: '<' 10, '+' 20, '-' 20, '*' 40.
// All operators are left-associative at equal strength.
func Default() Table {
	return Table{
		'<': 10,
		'+': 20,
		'-': 20,
		'*': 40,
	}
}

func (t Table) Add(op byte, prec int) {
	t[op] = prec
}

// Precedence returns the binding strength of the pending token, or -1 when
// the token is not a registered binary operator.
func (t Table) Precedence(tok *token.Token) int {
	if tok == nil || tok.Kind != token.SYMBOL {
		return -1
	}
	prec, ok := t[tok.Lexeme[0]]
	if !ok || prec <= 0 {
		return -1
	}
	return prec
}
