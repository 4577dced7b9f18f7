package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kaleido-lang/kaleido/internal/lexer/token"
)

type NumberExpr struct {
	Value float64
}

func (number *NumberExpr) String() string {
	return strconv.FormatFloat(number.Value, 'g', -1, 64)
}

type IdExpr struct {
	Name *token.Token
}

func (idExpr *IdExpr) String() string {
	return idExpr.Name.Name()
}

// BinaryExpr is only ever built with an operator the precedence table knew
// at parse time.
type BinaryExpr struct {
	Left  *Node
	Op    byte
	Right *Node
}

func (binExpr *BinaryExpr) String() string {
	return fmt.Sprintf("(%v %c %v)", binExpr.Left, binExpr.Op, binExpr.Right)
}

type FnCall struct {
	Name *token.Token
	Args []*Node
}

func (fnCall *FnCall) String() string {
	args := make([]string, len(fnCall.Args))
	for i, arg := range fnCall.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", fnCall.Name.Name(), strings.Join(args, ", "))
}
