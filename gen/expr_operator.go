package gen

import (
	"fmt"

	"github.com/rubiojr/exprgen/ast"
)

func (g *Generator) VisitAssignment(e *ast.AssignmentExpr) string {
	return fmt.Sprintf("%s = %s", g.Generate(e.Left), g.Generate(e.Right))
}

// VisitBinary renders the operator token as stored, with one space on each
// side whatever its length.
func (g *Generator) VisitBinary(e *ast.BinaryExpr) string {
	return fmt.Sprintf("%s %s %s", g.Generate(e.Left), e.Op, g.Generate(e.Right))
}

func (g *Generator) VisitTernary(e *ast.TernaryExpr) string {
	return fmt.Sprintf("%s ? %s : %s", g.Generate(e.Cond), g.Generate(e.Then), g.Generate(e.Else))
}

func (g *Generator) VisitTypeCast(e *ast.TypeCastExpr) string {
	switch e.Kind {
	case ast.CastCheck, ast.CastAs, ast.CastConditional, ast.CastForced:
		return fmt.Sprintf("%s %s %s", g.Generate(e.Expr), e.Kind, g.types().GenerateType(e.Type))
	default:
		return describe(e)
	}
}

func (g *Generator) VisitTry(e *ast.TryExpr) string {
	switch e.Kind {
	case ast.TryPlain, ast.TryForced, ast.TryOptional:
		return fmt.Sprintf("%s %s", e.Kind, g.Generate(e.Expr))
	default:
		return describe(e)
	}
}
