package ast

import (
	"fmt"
	"strings"

	"github.com/kaleido-lang/kaleido/internal/lexer/token"
)

// Proto is a function's name plus its ordered parameter names, no body.
// Parameter names are not checked for uniqueness.
type Proto struct {
	Name   *token.Token
	Params []*token.Token
}

// IsAnon reports whether this is the synthetic wrapper prototype the parser
// builds around a bare top-level expression.
func (proto *Proto) IsAnon() bool {
	return len(proto.Name.Lexeme) == 0
}

func (proto *Proto) ParamNames() []string {
	names := make([]string, len(proto.Params))
	for i, param := range proto.Params {
		names[i] = param.Name()
	}
	return names
}

func (proto *Proto) String() string {
	return fmt.Sprintf("PROTO %s(%s)", proto.Name.Name(), strings.Join(proto.ParamNames(), " "))
}

type FnDecl struct {
	Proto *Proto
	Body  *Node
}

func (fnDecl *FnDecl) String() string {
	return fmt.Sprintf("FN %s(%s) %v", fnDecl.Proto.Name.Name(), strings.Join(fnDecl.Proto.ParamNames(), " "), fnDecl.Body)
}
