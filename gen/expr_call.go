package gen

import (
	"strings"

	"github.com/rubiojr/exprgen/ast"
)

// VisitFunctionCall renders callee(args) followed by an optional trailing
// closure. A call without an argument clause gets no parentheses at all.
func (g *Generator) VisitFunctionCall(e *ast.FunctionCallExpr) string {
	var sb strings.Builder
	sb.WriteString(g.Generate(e.Callee))
	if e.Args != nil {
		args := make([]string, len(e.Args.Arguments))
		for i, a := range e.Args.Arguments {
			args[i] = g.argument(a)
		}
		sb.WriteByte('(')
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteByte(')')
	}
	if e.TrailingClosure != nil {
		sb.WriteByte(' ')
		sb.WriteString(g.VisitClosure(e.TrailingClosure))
	}
	return sb.String()
}

func (g *Generator) argument(a ast.Argument) string {
	var value string
	switch a.Kind {
	case ast.ArgExpr:
		value = g.Generate(a.Expr)
	case ast.ArgInOut:
		value = "&" + g.Generate(a.Expr)
	case ast.ArgOperator:
		value = a.Operator
	default:
		value = describe(a)
	}
	if a.Label != "" {
		return a.Label + ": " + value
	}
	return value
}

func (g *Generator) VisitSubscript(e *ast.SubscriptExpr) string {
	return g.Generate(e.Callee) + "[" + g.exprList(e.Args) + "]"
}

func (g *Generator) VisitTuple(e *ast.TupleExpr) string {
	if len(e.Elements) == 0 {
		return "()"
	}
	elems := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		if el.Label != "" {
			elems[i] = el.Label + ": " + g.Generate(el.Expr)
		} else {
			elems[i] = g.Generate(el.Expr)
		}
	}
	return "(" + strings.Join(elems, ", ") + ")"
}
