package testutil

import (
	"github.com/kaleido-lang/kaleido/internal/ast"
	"github.com/kaleido-lang/kaleido/internal/diagnostics"
	"github.com/kaleido-lang/kaleido/internal/lexer"
	"github.com/kaleido-lang/kaleido/internal/lexer/token"
	"github.com/kaleido-lang/kaleido/internal/ops"
	"github.com/kaleido-lang/kaleido/internal/parser"
)

const DefaultFilename = "test.k"

func NewLexer(src string, filename string) *lexer.Lexer {
	if filename == "" {
		filename = DefaultFilename
	}
	return lexer.NewFromString(filename, src)
}

func NewParser(src string, table ops.Table) (*parser.Parser, *diagnostics.Collector) {
	collector := diagnostics.New()
	return parser.New(NewLexer(src, ""), collector, table), collector
}

func NewToken(lexeme string, kind token.Kind) *token.Token {
	return token.New([]byte(lexeme), kind, token.NewPosition(DefaultFilename, 1, 1))
}

func NewNumberExpr(value float64) *ast.Node {
	return &ast.Node{Kind: ast.KIND_NUMBER_EXPR, Node: &ast.NumberExpr{Value: value}}
}

func NewIdExpr(name string) *ast.Node {
	return &ast.Node{Kind: ast.KIND_ID_EXPR, Node: &ast.IdExpr{Name: NewToken(name, token.IDENT)}}
}

func NewBinExpr(left *ast.Node, op byte, right *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KIND_BINARY_EXPR, Node: &ast.BinaryExpr{Left: left, Op: op, Right: right}}
}

func NewFnCall(name string, args ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KIND_FN_CALL, Node: &ast.FnCall{Name: NewToken(name, token.IDENT), Args: args}}
}

func NewProto(name string, params ...string) *ast.Proto {
	proto := &ast.Proto{Name: NewToken(name, token.IDENT)}
	for _, param := range params {
		proto.Params = append(proto.Params, NewToken(param, token.IDENT))
	}
	return proto
}
