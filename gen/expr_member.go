package gen

import (
	"strconv"

	"github.com/rubiojr/exprgen/ast"
)

func (g *Generator) VisitExplicitMember(e *ast.ExplicitMemberExpr) string {
	base := g.Generate(e.Base)
	switch e.Kind {
	case ast.MemberTuple:
		return base + "." + strconv.Itoa(e.Index)
	case ast.MemberNamed:
		return base + "." + e.Name
	case ast.MemberGeneric:
		text := base + "." + e.Name
		if e.GenericArgs != nil {
			text += g.types().GenerateGenericArgumentClause(e.GenericArgs)
		}
		return text
	case ast.MemberArgument:
		return base + "." + e.Name + argumentNames(e.ArgumentNames)
	default:
		return describe(e)
	}
}

func (g *Generator) VisitImplicitMember(e *ast.ImplicitMemberExpr) string {
	return "." + e.Name
}

func (g *Generator) VisitSelf(e *ast.SelfExpr) string {
	switch e.Kind {
	case ast.SelfPlain:
		return "self"
	case ast.SelfMethod:
		return "self." + e.Name
	case ast.SelfSubscript:
		return "self[" + g.exprList(e.Args) + "]"
	case ast.SelfInitializer:
		return "self.init"
	default:
		return describe(e)
	}
}

func (g *Generator) VisitSuperclass(e *ast.SuperclassExpr) string {
	switch e.Kind {
	case ast.SuperPlain:
		return "super"
	case ast.SuperMethod:
		return "super." + e.Name
	case ast.SuperSubscript:
		return "super[" + g.exprList(e.Args) + "]"
	case ast.SuperInitializer:
		return "super.init"
	default:
		return describe(e)
	}
}

func (g *Generator) VisitInitializer(e *ast.InitializerExpr) string {
	return g.Generate(e.Base) + ".init" + argumentNames(e.ArgumentNames)
}
