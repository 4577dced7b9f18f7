package ast

// File holds every top-level construct parsed from one source file, in
// order: function definitions, extern prototypes and the anonymous
// wrappers around bare expressions.
type File struct {
	Path string
	Body []*Node
}
