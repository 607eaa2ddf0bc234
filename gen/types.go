package gen

import (
	"strings"

	"github.com/rubiojr/exprgen/ast"
)

// TypeGenerator is the default TypeRenderer.
type TypeGenerator struct{}

var _ TypeRenderer = TypeGenerator{}

// GenerateType renders t. Types defined outside package ast fall back to
// their own description.
func (tg TypeGenerator) GenerateType(t ast.Type) string {
	switch tt := t.(type) {
	case nil:
		return ""
	case *ast.TypeIdentifier:
		names := make([]string, len(tt.Names))
		for i, n := range tt.Names {
			names[i] = n.Name + tg.GenerateGenericArgumentClause(n.GenericArgs)
		}
		return strings.Join(names, ".")
	case *ast.OptionalType:
		return tg.GenerateType(tt.Wrapped) + "?"
	case *ast.ImplicitlyUnwrappedOptionalType:
		return tg.GenerateType(tt.Wrapped) + "!"
	case *ast.ArrayType:
		return "[" + tg.GenerateType(tt.Element) + "]"
	case *ast.DictionaryType:
		return "[" + tg.GenerateType(tt.Key) + ": " + tg.GenerateType(tt.Value) + "]"
	case *ast.TupleType:
		elems := make([]string, len(tt.Elements))
		for i, el := range tt.Elements {
			if el.Label != "" {
				elems[i] = el.Label + ": " + tg.GenerateType(el.Type)
			} else {
				elems[i] = tg.GenerateType(el.Type)
			}
		}
		return "(" + strings.Join(elems, ", ") + ")"
	case *ast.FunctionType:
		params := make([]string, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = tg.GenerateType(p)
		}
		text := "(" + strings.Join(params, ", ") + ")"
		if tt.Throws {
			text += " throws"
		}
		return text + " -> " + tg.GenerateType(tt.Result)
	default:
		return describe(t)
	}
}

// GenerateTypeAnnotation renders ": [attributes] [inout] T".
func (tg TypeGenerator) GenerateTypeAnnotation(a *ast.TypeAnnotation) string {
	if a == nil {
		return ""
	}
	return ": " + attributes(a.Attributes) + inout(a.InOut) + tg.GenerateType(a.Type)
}

// GenerateFunctionResult renders "-> [attributes] T".
func (tg TypeGenerator) GenerateFunctionResult(r *ast.FunctionResult) string {
	if r == nil {
		return ""
	}
	return "-> " + attributes(r.Attributes) + tg.GenerateType(r.Type)
}

// GenerateGenericArgumentClause renders "<A, B>", or "" for a nil clause.
func (tg TypeGenerator) GenerateGenericArgumentClause(c *ast.GenericArgumentClause) string {
	if c == nil {
		return ""
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = tg.GenerateType(a)
	}
	return "<" + strings.Join(args, ", ") + ">"
}

func attributes(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return strings.Join(attrs, " ") + " "
}

func inout(b bool) string {
	if b {
		return "inout "
	}
	return ""
}
