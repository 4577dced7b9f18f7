package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaleido-lang/kaleido/internal/ast"
	"github.com/kaleido-lang/kaleido/internal/diagnostics"
	"github.com/kaleido-lang/kaleido/internal/lexer"
	"github.com/kaleido-lang/kaleido/internal/lexer/token"
	"github.com/kaleido-lang/kaleido/internal/ops"
)

func newParser(src string, table ops.Table) (*Parser, *diagnostics.Collector) {
	collector := diagnostics.New()
	lex := lexer.NewFromString("test.k", src)
	return New(lex, collector, table), collector
}

func TestParseExpr(t *testing.T) {
	tests := []struct {
		input string
		// Rendered tree with explicit grouping, which pins down the
		// exact associativity and precedence the parser produced.
		want string
	}{
		{"42", "42"},
		{"x", "x"},
		{"1+2", "(1 + 2)"},
		{"1+2*3", "(1 + (2 * 3))"},
		{"1*2+3", "((1 * 2) + 3)"},
		{"1+2+3", "((1 + 2) + 3)"},
		{"1-2-3", "((1 - 2) - 3)"},
		{"a<b+c*d", "(a < (b + (c * d)))"},
		{"a*b<c-d", "((a * b) < (c - d))"},
		{"(1+2)*3", "((1 + 2) * 3)"},
		{"((x))", "x"},
		{"foo(1, 2)", "foo(1, 2)"},
		{"foo()", "foo()"},
		{"foo(bar(x), y+1)", "foo(bar(x), (y + 1))"},
		{"foo(x)*2", "(foo(x) * 2)"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := ParseExprFrom(test.input, "test.k")
			require.NoError(t, err)
			assert.Equal(t, test.want, node.String())
		})
	}
}

func TestParseExprShapes(t *testing.T) {
	t.Run("higher precedence absorbed right", func(t *testing.T) {
		node, err := ParseExprFrom("1+2*3", "test.k")
		require.NoError(t, err)

		require.Equal(t, ast.KIND_BINARY_EXPR, node.Kind)
		add := node.Node.(*ast.BinaryExpr)
		assert.Equal(t, byte('+'), add.Op)

		require.Equal(t, ast.KIND_NUMBER_EXPR, add.Left.Kind)
		assert.Equal(t, 1.0, add.Left.Node.(*ast.NumberExpr).Value)

		require.Equal(t, ast.KIND_BINARY_EXPR, add.Right.Kind)
		mul := add.Right.Node.(*ast.BinaryExpr)
		assert.Equal(t, byte('*'), mul.Op)
		assert.Equal(t, 2.0, mul.Left.Node.(*ast.NumberExpr).Value)
		assert.Equal(t, 3.0, mul.Right.Node.(*ast.NumberExpr).Value)
	})

	t.Run("left to right at non-increasing precedence", func(t *testing.T) {
		node, err := ParseExprFrom("1*2+3", "test.k")
		require.NoError(t, err)

		require.Equal(t, ast.KIND_BINARY_EXPR, node.Kind)
		add := node.Node.(*ast.BinaryExpr)
		assert.Equal(t, byte('+'), add.Op)
		require.Equal(t, ast.KIND_BINARY_EXPR, add.Left.Kind)
		assert.Equal(t, byte('*'), add.Left.Node.(*ast.BinaryExpr).Op)
		require.Equal(t, ast.KIND_NUMBER_EXPR, add.Right.Kind)
	})

	t.Run("call arguments in order", func(t *testing.T) {
		node, err := ParseExprFrom("foo(a, 2, b)", "test.k")
		require.NoError(t, err)

		require.Equal(t, ast.KIND_FN_CALL, node.Kind)
		call := node.Node.(*ast.FnCall)
		assert.Equal(t, "foo", call.Name.Name())
		require.Len(t, call.Args, 3)
		assert.Equal(t, ast.KIND_ID_EXPR, call.Args[0].Kind)
		assert.Equal(t, ast.KIND_NUMBER_EXPR, call.Args[1].Kind)
		assert.Equal(t, ast.KIND_ID_EXPR, call.Args[2].Kind)
	})
}

func TestParseExprErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1+2", "expected ')'"},
		{"(", "unknown token when expecting an expression"},
		{"+", "unknown token when expecting an expression"},
		{"1+", "unknown token when expecting an expression"},
		{"foo(1 2)", "expected ')' or ',' in argument list"},
		{"foo(1,", "unknown token when expecting an expression"},
		{"", "unknown token when expecting an expression"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := ParseExprFrom(test.input, "test.k")
			assert.Nil(t, node)
			assert.EqualError(t, err, test.want)
		})
	}
}

func TestUnregisteredOperatorEndsExpression(t *testing.T) {
	// '/' is not in the default table, so it is not a syntax error: the
	// expression simply ends before it.
	node, err := ParseExprFrom("a/b", "test.k")
	require.NoError(t, err)
	require.Equal(t, ast.KIND_ID_EXPR, node.Kind)
	assert.Equal(t, "a", node.Node.(*ast.IdExpr).Name.Name())
}

func TestCustomOperatorTable(t *testing.T) {
	table := ops.Default()
	table.Add('|', 5)
	table.Add('/', 40)

	p, _ := newParser("a|b/c", table)
	p.Next()

	node, err := p.parseExpr()
	require.NoError(t, err)
	assert.Equal(t, "(a | (b / c))", node.String())
}

func TestParseFnDecl(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, node *ast.Node)
	}{
		{
			input: "def f(x) x",
			check: func(t *testing.T, node *ast.Node) {
				require.Equal(t, ast.KIND_FN_DECL, node.Kind)
				fnDecl := node.Node.(*ast.FnDecl)
				assert.Equal(t, "f", fnDecl.Proto.Name.Name())
				assert.Equal(t, []string{"x"}, fnDecl.Proto.ParamNames())
				assert.Equal(t, ast.KIND_ID_EXPR, fnDecl.Body.Kind)
			},
		},
		{
			input: "def foo(x y) x+y",
			check: func(t *testing.T, node *ast.Node) {
				fnDecl := node.Node.(*ast.FnDecl)
				assert.Equal(t, "foo", fnDecl.Proto.Name.Name())
				assert.Equal(t, []string{"x", "y"}, fnDecl.Proto.ParamNames())
				assert.Equal(t, "(x + y)", fnDecl.Body.String())
			},
		},
		{
			input: "def nullary() 42",
			check: func(t *testing.T, node *ast.Node) {
				fnDecl := node.Node.(*ast.FnDecl)
				assert.Empty(t, fnDecl.Proto.Params)
				assert.False(t, fnDecl.Proto.IsAnon())
			},
		},
		{
			// Parameter names are not checked for uniqueness.
			input: "def twice(x x) x",
			check: func(t *testing.T, node *ast.Node) {
				fnDecl := node.Node.(*ast.FnDecl)
				assert.Equal(t, []string{"x", "x"}, fnDecl.Proto.ParamNames())
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p, _ := newParser(test.input, nil)
			p.Next()

			node, err := p.ParseFnDecl()
			require.NoError(t, err)
			test.check(t, node)
		})
	}
}

func TestParseExternDecl(t *testing.T) {
	p, _ := newParser("extern sin(a)", nil)
	p.Next()

	node, err := p.ParseExternDecl()
	require.NoError(t, err)

	require.Equal(t, ast.KIND_PROTO, node.Kind)
	proto := node.Node.(*ast.Proto)
	assert.Equal(t, "sin", proto.Name.Name())
	assert.Equal(t, []string{"a"}, proto.ParamNames())
}

func TestParseTopLevelExpr(t *testing.T) {
	p, _ := newParser("x+1", nil)
	p.Next()

	node, err := p.ParseTopLevelExpr()
	require.NoError(t, err)

	require.Equal(t, ast.KIND_FN_DECL, node.Kind)
	fnDecl := node.Node.(*ast.FnDecl)
	assert.True(t, fnDecl.Proto.IsAnon())
	assert.Empty(t, fnDecl.Proto.Params)
	assert.Equal(t, "(x + 1)", fnDecl.Body.String())
}

func TestPrototypeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"def 1(x) x", "expected function name in prototype"},
		{"def (x) x", "expected function name in prototype"},
		{"def f x", "expected '(' in prototype"},
		{"def f(x, y) x", "expected ')' in prototype"},
		{"def f(x", "expected ')' in prototype"},
		{"extern 2(a)", "expected function name in prototype"},
		{"extern f", "expected '(' in prototype"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p, collector := newParser(test.input, nil)
			p.Next()

			var err error
			if p.Cur().Kind == token.DEF {
				_, err = p.ParseFnDecl()
			} else {
				_, err = p.ParseExternDecl()
			}

			assert.EqualError(t, err, test.want)
			require.Len(t, collector.Diags, 1)
			assert.Equal(t, test.want, collector.Diags[0].Message)
		})
	}
}

func TestParseFile(t *testing.T) {
	p, _ := newParser("def f(x) x; f(1); extern g(a b);", nil)

	file, err := p.ParseFile()
	require.NoError(t, err)
	require.Len(t, file.Body, 3)

	require.Equal(t, ast.KIND_FN_DECL, file.Body[0].Kind)
	assert.Equal(t, "f", file.Body[0].Node.(*ast.FnDecl).Proto.Name.Name())

	require.Equal(t, ast.KIND_FN_DECL, file.Body[1].Kind)
	assert.True(t, file.Body[1].Node.(*ast.FnDecl).Proto.IsAnon())
	assert.Equal(t, "f(1)", file.Body[1].Node.(*ast.FnDecl).Body.String())

	require.Equal(t, ast.KIND_PROTO, file.Body[2].Kind)
	proto := file.Body[2].Node.(*ast.Proto)
	assert.Equal(t, "g", proto.Name.Name())
	assert.Equal(t, []string{"a", "b"}, proto.ParamNames())
}

func TestParseFileFailsFast(t *testing.T) {
	p, _ := newParser("def f(x) x; def g(", nil)

	file, err := p.ParseFile()
	assert.Nil(t, file)
	require.Error(t, err)
	assert.ErrorContains(t, err, "expected ')' in prototype")
	assert.ErrorContains(t, err, "test.k")
}

func TestParseFileEmpty(t *testing.T) {
	p, _ := newParser(" # just a comment\n;;;", nil)

	file, err := p.ParseFile()
	require.NoError(t, err)
	assert.Empty(t, file.Body)
}
