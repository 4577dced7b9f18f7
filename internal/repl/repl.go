// Package repl drives the parser one top-level construct at a time, the
// way the interactive interpreter does: dispatch on the current token,
// hand every finished node to the consumer, and on a syntax error skip a
// single token so the loop always makes forward progress.
package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/kaleido-lang/kaleido/internal/ast"
	"github.com/kaleido-lang/kaleido/internal/lexer/token"
	"github.com/kaleido-lang/kaleido/internal/parser"
)

type Repl struct {
	// Prompt is written to Out before each top-level construct. Empty
	// means no prompt, which is what batch tests want.
	Prompt string
	Out    io.Writer

	// Emit receives every successfully parsed top-level node. When nil,
	// Run prints a short acknowledgement to Out instead.
	Emit func(node *ast.Node)

	parser *parser.Parser
}

func New(p *parser.Parser) *Repl {
	return &Repl{
		Prompt: "ready> ",
		Out:    os.Stderr,
		parser: p,
	}
}

// Run loops until end of input. Syntax errors were already reported
// through the diagnostics collector by the parser; recovery here is
// skipping exactly one token and trying again. That can desynchronize
// across a multi-token construct, which is accepted: the next ';' or
// keyword resynchronizes the stream.
func (r *Repl) Run() {
	r.prompt()
	r.parser.Next()

	for {
		r.prompt()
		switch r.parser.Cur().Kind {
		case token.EOF:
			return
		case token.SEMICOLON:
			r.parser.Next() // ignore top-level semicolons
		case token.DEF:
			r.handleFnDecl()
		case token.EXTERN:
			r.handleExtern()
		default:
			r.handleTopLevelExpr()
		}
	}
}

func (r *Repl) handleFnDecl() {
	node, err := r.parser.ParseFnDecl()
	if err != nil {
		r.parser.Next() // skip token for error recovery
		return
	}
	r.emit(node, "Parsed a function definition.")
}

func (r *Repl) handleExtern() {
	node, err := r.parser.ParseExternDecl()
	if err != nil {
		r.parser.Next() // skip token for error recovery
		return
	}
	r.emit(node, "Parsed an extern.")
}

func (r *Repl) handleTopLevelExpr() {
	node, err := r.parser.ParseTopLevelExpr()
	if err != nil {
		r.parser.Next() // skip token for error recovery
		return
	}
	r.emit(node, "Parsed a top-level expression.")
}

func (r *Repl) emit(node *ast.Node, ack string) {
	if r.Emit != nil {
		r.Emit(node)
	} else {
		fmt.Fprintln(r.Out, ack)
	}
}

func (r *Repl) prompt() {
	if r.Prompt != "" {
		fmt.Fprint(r.Out, r.Prompt)
	}
}
