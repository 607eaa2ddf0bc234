package gen

import "github.com/rubiojr/exprgen/ast"

func (g *Generator) VisitForcedValue(e *ast.ForcedValueExpr) string {
	return g.Generate(e.Expr) + "!"
}

func (g *Generator) VisitOptionalChaining(e *ast.OptionalChainingExpr) string {
	return g.Generate(e.Expr) + "?"
}

func (g *Generator) VisitPrefixOperator(e *ast.PrefixOperatorExpr) string {
	return e.Op + g.Generate(e.Expr)
}

func (g *Generator) VisitPostfixOperator(e *ast.PostfixOperatorExpr) string {
	return g.Generate(e.Expr) + e.Op
}

func (g *Generator) VisitPostfixSelf(e *ast.PostfixSelfExpr) string {
	return g.Generate(e.Expr) + ".self"
}

// VisitInOut renders &name. The operand is a raw identifier, unlike the
// in-out call argument whose operand is a full expression.
func (g *Generator) VisitInOut(e *ast.InOutExpr) string {
	return "&" + e.Name
}

func (g *Generator) VisitParen(e *ast.ParenExpr) string {
	return "(" + g.Generate(e.Inner) + ")"
}
