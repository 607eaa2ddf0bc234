package gen

import "github.com/rubiojr/exprgen/ast"

func (g *Generator) VisitKeyPathString(e *ast.KeyPathStringExpr) string {
	return "#keyPath(" + g.Generate(e.Expr) + ")"
}

func (g *Generator) VisitSelector(e *ast.SelectorExpr) string {
	switch e.Kind {
	case ast.SelectorPlain:
		return "#selector(" + g.Generate(e.Expr) + ")"
	case ast.SelectorGetter:
		return "#selector(getter: " + g.Generate(e.Expr) + ")"
	case ast.SelectorSetter:
		return "#selector(setter: " + g.Generate(e.Expr) + ")"
	case ast.SelectorSelfMember:
		return "#selector(" + e.Name + argumentNames(e.ArgumentNames) + ")"
	default:
		return describe(e)
	}
}
