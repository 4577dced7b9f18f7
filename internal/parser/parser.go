package parser

import (
	"tlog.app/go/errors"

	"github.com/kaleido-lang/kaleido/internal/ast"
	"github.com/kaleido-lang/kaleido/internal/diagnostics"
	"github.com/kaleido-lang/kaleido/internal/lexer"
	"github.com/kaleido-lang/kaleido/internal/lexer/token"
	"github.com/kaleido-lang/kaleido/internal/ops"
)

// Parser is a recursive-descent parser with a single token of lookahead.
// Every parse method either consumes everything it recognizes and returns
// a node, or returns an error leaving the cursor at the offending token.
// A failed parse never returns a partial node.
type Parser struct {
	lex       *lexer.Lexer
	collector *diagnostics.Collector
	table     ops.Table

	cur *token.Token
}

func New(lex *lexer.Lexer, collector *diagnostics.Collector, table ops.Table) *Parser {
	if table == nil {
		table = ops.Default()
	}
	parser := new(Parser)
	parser.lex = lex
	parser.collector = collector
	parser.table = table
	return parser
}

// Next advances the cursor by one token. The cursor starts empty so the
// caller decides when the first (possibly blocking) read happens; prime it
// with one Next before calling any parse method.
func (p *Parser) Next() *token.Token {
	p.cur = p.lex.Next()
	return p.cur
}

func (p *Parser) Cur() *token.Token {
	return p.cur
}

// Useful for testing
func ParseExprFrom(expr, filename string) (*ast.Node, error) {
	lex := lexer.NewFromString(filename, expr)
	parser := New(lex, diagnostics.New(), nil)
	parser.Next()

	return parser.parseExpr()
}

// ParseFile parses every top-level construct until end of input. Unlike
// the interactive driver it fails on the first syntax error, carrying the
// offending position in the returned error.
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{Path: p.lex.Filename}

	p.Next()
	for {
		var node *ast.Node
		var err error

		switch p.cur.Kind {
		case token.EOF:
			return file, nil
		case token.SEMICOLON:
			// Top-level semicolons separate constructs and mean nothing.
			p.Next()
			continue
		case token.DEF:
			node, err = p.ParseFnDecl()
		case token.EXTERN:
			node, err = p.ParseExternDecl()
		default:
			node, err = p.ParseTopLevelExpr()
		}

		if err != nil {
			return nil, errors.Wrap(err, "%v", p.cur.Pos)
		}
		file.Body = append(file.Body, node)
	}
}

// ParseFnDecl parses 'def' prototype expression, the cursor sitting on the
// 'def' keyword.
func (p *Parser) ParseFnDecl() (*ast.Node, error) {
	p.Next() // def

	proto, err := p.parseProto()
	if err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_FN_DECL
	n.Node = &ast.FnDecl{Proto: proto, Body: body}
	return n, nil
}

// ParseExternDecl parses 'extern' prototype, a declaration with no body,
// the cursor sitting on the 'extern' keyword.
func (p *Parser) ParseExternDecl() (*ast.Node, error) {
	p.Next() // extern

	proto, err := p.parseProto()
	if err != nil {
		return nil, err
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_PROTO
	n.Node = proto
	return n, nil
}

// ParseTopLevelExpr wraps a bare expression in an anonymous zero-parameter
// function definition so the driver handles every construct uniformly.
func (p *Parser) ParseTopLevelExpr() (*ast.Node, error) {
	pos := p.cur.Pos

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	proto := &ast.Proto{
		Name:   token.New(nil, token.IDENT, pos),
		Params: nil,
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_FN_DECL
	n.Node = &ast.FnDecl{Proto: proto, Body: body}
	return n, nil
}

// parseProto parses name '(' param* ')'. Parameters are identifiers
// separated by whitespace alone, there is no comma grammar here.
func (p *Parser) parseProto() (*ast.Proto, error) {
	if p.cur.Kind != token.IDENT {
		return nil, p.logError("expected function name in prototype")
	}
	name := p.cur

	p.Next()
	if p.cur.Kind != token.OPEN_PAREN {
		return nil, p.logError("expected '(' in prototype")
	}

	var params []*token.Token
	for p.Next().Kind == token.IDENT {
		params = append(params, p.cur)
	}
	if p.cur.Kind != token.CLOSE_PAREN {
		return nil, p.logError("expected ')' in prototype")
	}
	p.Next() // )

	return &ast.Proto{Name: name, Params: params}, nil
}

func (p *Parser) parseExpr() (*ast.Node, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// parseBinOpRHS is the precedence climbing loop. Operators weaker than
// minPrec are left for the enclosing call; a strictly tighter operator
// after the rhs is absorbed into the rhs first. Left-associative grouping
// at equal strength falls out of the strict '>' comparison.
func (p *Parser) parseBinOpRHS(minPrec int, lhs *ast.Node) (*ast.Node, error) {
	for {
		prec := p.table.Precedence(p.cur)
		if prec < minPrec {
			return lhs, nil
		}

		op := p.cur.Lexeme[0]
		p.Next() // operator

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if nextPrec := p.table.Precedence(p.cur); nextPrec > prec {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		n := new(ast.Node)
		n.Kind = ast.KIND_BINARY_EXPR
		n.Node = &ast.BinaryExpr{Left: lhs, Op: op, Right: rhs}
		lhs = n
	}
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	switch p.cur.Kind {
	case token.IDENT:
		return p.parseIdExpr()
	case token.NUMBER:
		n := new(ast.Node)
		n.Kind = ast.KIND_NUMBER_EXPR
		n.Node = &ast.NumberExpr{Value: p.cur.Float64()}
		p.Next() // number
		return n, nil
	case token.OPEN_PAREN:
		return p.parseParenExpr()
	default:
		return nil, p.logError("unknown token when expecting an expression")
	}
}

func (p *Parser) parseParenExpr() (*ast.Node, error) {
	p.Next() // (

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur.Kind != token.CLOSE_PAREN {
		return nil, p.logError("expected ')'")
	}
	p.Next() // )

	// Parentheses only group, they produce no node of their own.
	return expr, nil
}

// parseIdExpr parses a plain variable reference, or a call when the
// identifier is followed by '('.
func (p *Parser) parseIdExpr() (*ast.Node, error) {
	name := p.cur

	p.Next() // identifier
	if p.cur.Kind != token.OPEN_PAREN {
		n := new(ast.Node)
		n.Kind = ast.KIND_ID_EXPR
		n.Node = &ast.IdExpr{Name: name}
		return n, nil
	}

	p.Next() // (

	var args []*ast.Node
	if p.cur.Kind != token.CLOSE_PAREN {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur.Kind == token.CLOSE_PAREN {
				break
			}
			if p.cur.Kind != token.COMMA {
				return nil, p.logError("expected ')' or ',' in argument list")
			}
			p.Next() // ,
		}
	}
	p.Next() // )

	n := new(ast.Node)
	n.Kind = ast.KIND_FN_CALL
	n.Node = &ast.FnCall{Name: name, Args: args}
	return n, nil
}

// logError reports the diagnostic and returns it as an error, leaving the
// cursor where it stands so the driver can resynchronize.
func (p *Parser) logError(msg string) error {
	p.collector.ReportAndSave(diagnostics.Diag{Message: msg})
	return errors.New("%s", msg)
}
