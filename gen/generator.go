// Package gen renders expression trees back to source text.
//
// Generator has one rule per expression variant and reaches every rule
// through ast.ExprVisitor, so adding a variant to the tree without a rule
// here is a compile error. Types and statements nested inside expressions
// are delegated to a TypeRenderer and a StatementRenderer, which default to
// TypeGenerator and StatementGenerator.
//
// Rendering never fails and never inserts parentheses: a tree that needs
// grouping carries an explicit ast.ParenExpr.
package gen

import (
	"github.com/kr/pretty"
	"github.com/rubiojr/exprgen/ast"
)

// DefaultIndent is the closure body indentation used by the zero Generator.
const DefaultIndent = "    "

// TypeRenderer renders the type constructs nested in expressions.
type TypeRenderer interface {
	GenerateType(t ast.Type) string
	GenerateTypeAnnotation(a *ast.TypeAnnotation) string
	GenerateFunctionResult(r *ast.FunctionResult) string
	GenerateGenericArgumentClause(c *ast.GenericArgumentClause) string
}

// StatementRenderer renders closure bodies. The result has no leading or
// trailing newline; multiple statements are separated by newlines.
type StatementRenderer interface {
	GenerateStatements(stmts []ast.Statement) string
}

// Generator renders expressions. The zero value is ready to use and is
// safe for concurrent use as long as its fields are not modified.
type Generator struct {
	// Types renders cast targets, annotations, results and generic
	// arguments. nil means TypeGenerator.
	Types TypeRenderer
	// Statements renders closure bodies. nil means a StatementGenerator
	// that renders nested expressions with this Generator.
	Statements StatementRenderer
	// Indent is prepended to each line of a multi-line closure body.
	// Empty means DefaultIndent.
	Indent string
	// Flat leaves multi-line closure bodies unindented, ignoring Indent.
	Flat bool
}

var _ ast.ExprVisitor = (*Generator)(nil)

// Generate renders e. A nil expression renders as the empty string.
func Generate(e ast.Expr) string {
	g := &Generator{}
	return g.Generate(e)
}

// Generate renders e with g's collaborators.
func (g *Generator) Generate(e ast.Expr) string {
	if e == nil {
		return ""
	}
	return e.Accept(g)
}

// GenerateStatements renders a statement block with g's statement renderer.
func (g *Generator) GenerateStatements(stmts []ast.Statement) string {
	return g.statements().GenerateStatements(stmts)
}

// VisitExtension renders nodes this generator does not know about using
// their own description.
func (g *Generator) VisitExtension(e ast.Expr) string {
	return describe(e)
}

func (g *Generator) types() TypeRenderer {
	if g.Types != nil {
		return g.Types
	}
	return TypeGenerator{}
}

func (g *Generator) statements() StatementRenderer {
	if g.Statements != nil {
		return g.Statements
	}
	return &StatementGenerator{Exprs: g}
}

func (g *Generator) indent() string {
	if g.Indent != "" {
		return g.Indent
	}
	return DefaultIndent
}

// describe returns a node's self-description, or a structural dump when the
// node cannot describe itself.
func describe(node any) string {
	if d, ok := node.(ast.Describer); ok {
		return d.TextDescription()
	}
	return pretty.Sprint(node)
}
