// Package ast defines the abstract syntax tree (AST) for the Kaleido
// language. The node set is closed: parsing produces numbers, variable
// references, binary expressions, calls, prototypes and function
// definitions, nothing else.
package ast

import "fmt"

type NodeKind int

const (
	DECL_START NodeKind = iota // declaration node start delimiter

	KIND_FN_DECL
	KIND_PROTO

	DECL_END // declaration node end delimiter

	EXPR_START // expression node start delimiter

	KIND_NUMBER_EXPR
	KIND_ID_EXPR
	KIND_BINARY_EXPR
	KIND_FN_CALL

	EXPR_END // expression node end delimiter
)

// Node is a tagged wrapper over the concrete node structs. Every node owns
// its children outright: trees are built bottom-up, never shared and never
// mutated after construction.
type Node struct {
	Kind NodeKind
	Node any
}

func (n *Node) IsExpr() bool {
	return n.Kind > EXPR_START && n.Kind < EXPR_END
}

func (n *Node) IsDecl() bool {
	return n.Kind > DECL_START && n.Kind < DECL_END
}

func (n *Node) String() string {
	return fmt.Sprintf("%v", n.Node)
}

func (kind NodeKind) String() string {
	switch kind {
	case KIND_FN_DECL:
		return "KIND_FN_DECL"
	case KIND_PROTO:
		return "KIND_PROTO"
	case KIND_NUMBER_EXPR:
		return "KIND_NUMBER_EXPR"
	case KIND_ID_EXPR:
		return "KIND_ID_EXPR"
	case KIND_BINARY_EXPR:
		return "KIND_BINARY_EXPR"
	case KIND_FN_CALL:
		return "KIND_FN_CALL"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}
