package gen

import (
	"strings"

	"github.com/rubiojr/exprgen/ast"
)

// VisitClosure renders { signature in body }.
//
//	{}          no signature, no body
//	{ x }       no signature, exactly one statement
//	{ (a) in }  signature, no body
//
// Anything else puts the indented body on its own lines between the braces.
// A lone statement stays inline even when it spans several lines; its
// nested lines keep their own indentation.
func (g *Generator) VisitClosure(e *ast.ClosureExpr) string {
	var sig, body string
	if e.Signature != nil {
		sig = " " + g.closureSignature(e.Signature) + " in"
		if len(e.Statements) == 0 {
			body = " "
		}
	}
	if len(e.Statements) > 0 {
		block := g.statements().GenerateStatements(e.Statements)
		switch {
		case e.Signature == nil && len(e.Statements) == 1:
			body = " " + block + " "
		case g.Flat:
			body = "\n" + block + "\n"
		default:
			body = "\n" + indentLines(block, g.indent()) + "\n"
		}
	}
	return "{" + sig + body + "}"
}

func (g *Generator) closureSignature(s *ast.ClosureSignature) string {
	var parts []string
	if len(s.Captures) > 0 {
		items := make([]string, len(s.Captures))
		for i, c := range s.Captures {
			items[i] = g.captureItem(c)
		}
		parts = append(parts, "["+strings.Join(items, ", ")+"]")
	}
	if s.Parameters != nil {
		parts = append(parts, g.parameterClause(s.Parameters))
	}
	if s.Throws {
		parts = append(parts, "throws")
	}
	if s.Result != nil {
		parts = append(parts, g.types().GenerateFunctionResult(s.Result))
	}
	return strings.Join(parts, " ")
}

func (g *Generator) captureItem(c ast.CaptureItem) string {
	switch c.Specifier {
	case ast.CaptureNone:
		return g.Generate(c.Expr)
	case ast.CaptureWeak, ast.CaptureUnowned, ast.CaptureUnownedSafe, ast.CaptureUnownedUnsafe:
		return c.Specifier.String() + " " + g.Generate(c.Expr)
	default:
		return describe(c)
	}
}

func (g *Generator) parameterClause(pc ast.ParameterClause) string {
	switch p := pc.(type) {
	case *ast.ParameterList:
		params := make([]string, len(p.Params))
		for i, param := range p.Params {
			params[i] = g.closureParam(param)
		}
		return "(" + strings.Join(params, ", ") + ")"
	case *ast.IdentifierList:
		return strings.Join(p.Names, ", ")
	default:
		return describe(pc)
	}
}

// closureParam renders name[: T][...]. The variadic marker only follows a
// type annotation.
func (g *Generator) closureParam(p ast.ClosureParam) string {
	text := p.Name
	if p.Type != nil {
		text += g.types().GenerateTypeAnnotation(p.Type)
		if p.Variadic {
			text += "..."
		}
	}
	return text
}
