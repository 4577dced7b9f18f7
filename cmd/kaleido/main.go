package main

import (
	"bufio"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/kaleido-lang/kaleido/internal/diagnostics"
	"github.com/kaleido-lang/kaleido/internal/lexer"
	"github.com/kaleido-lang/kaleido/internal/ops"
	"github.com/kaleido-lang/kaleido/internal/parser"
	"github.com/kaleido-lang/kaleido/internal/repl"
)

func main() {
	opsFlag := func() *cli.Flag {
		return cli.NewFlag("ops", "", "operator precedence table file (toml or yaml)")
	}

	replCmd := &cli.Command{
		Name:        "repl",
		Description: "interactive read-parse loop over stdin",
		Action:      replAct,
		Flags:       []*cli.Flag{opsFlag()},
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse source files and print their top-level constructs",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags:       []*cli.Flag{opsFlag()},
	}

	lexCmd := &cli.Command{
		Name:        "lex",
		Description: "dump the token stream of source files",
		Action:      lexAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "kaleido",
		Description: "kaleido is a front-end for the kaleido expression language",
		Commands: []*cli.Command{
			replCmd,
			parseCmd,
			lexCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func replAct(c *cli.Command) (err error) {
	table, err := loadTable(c)
	if err != nil {
		return err
	}

	lex := lexer.New("<stdin>", bufio.NewReader(os.Stdin))
	p := parser.New(lex, diagnostics.New(), table)

	repl.New(p).Run()

	return nil
}

func parseAct(c *cli.Command) (err error) {
	table, err := loadTable(c)
	if err != nil {
		return err
	}

	for _, a := range c.Args {
		lex, err := lexer.NewFromFilePath(a)
		if err != nil {
			return errors.Wrap(err, "open %v", a)
		}

		file, err := parser.New(lex, diagnostics.New(), table).ParseFile()
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		tlog.Root().Printw("parsed file", "name", a, "top_level_constructs", len(file.Body))

		for _, node := range file.Body {
			fmt.Printf("%v\n", node)
		}
	}

	return nil
}

func lexAct(c *cli.Command) (err error) {
	for _, a := range c.Args {
		lex, err := lexer.NewFromFilePath(a)
		if err != nil {
			return errors.Wrap(err, "open %v", a)
		}

		tokens := lex.Tokenize()
		tlog.Root().Printw("tokenized file", "name", a, "tokens", len(tokens))

		for _, tok := range tokens {
			fmt.Printf("%v\n", tok)
		}
	}

	return nil
}

func loadTable(c *cli.Command) (ops.Table, error) {
	path := c.String("ops")
	if path == "" {
		return ops.Default(), nil
	}
	return ops.LoadFile(path)
}
