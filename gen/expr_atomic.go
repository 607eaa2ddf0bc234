package gen

import (
	"fmt"

	"github.com/rubiojr/exprgen/ast"
)

func (g *Generator) VisitWildcard(*ast.WildcardExpr) string {
	return "_"
}

func (g *Generator) VisitIdentifier(e *ast.IdentifierExpr) string {
	generic := ""
	if e.GenericArgs != nil {
		generic = g.types().GenerateGenericArgumentClause(e.GenericArgs)
	}
	if e.Implicit {
		return fmt.Sprintf("$%d%s", e.Index, generic)
	}
	return e.Name + generic
}

// VisitLiteral renders literals. Numeric and string lexemes are emitted
// exactly as stored; no escaping is applied.
func (g *Generator) VisitLiteral(e *ast.LiteralExpr) string {
	switch e.Kind {
	case ast.LiteralNil:
		return "nil"
	case ast.LiteralBool:
		if e.Bool {
			return "true"
		}
		return "false"
	case ast.LiteralInteger, ast.LiteralFloat, ast.LiteralString, ast.LiteralInterpolatedString:
		return e.Raw
	case ast.LiteralArray:
		return "[" + g.exprList(e.Elements) + "]"
	case ast.LiteralDictionary:
		if len(e.Entries) == 0 {
			return "[:]"
		}
		return "[" + g.dictionaryEntries(e.Entries) + "]"
	default:
		return describe(e)
	}
}
