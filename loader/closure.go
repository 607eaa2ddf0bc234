package loader

import (
	"github.com/rubiojr/exprgen/ast"
	"gopkg.in/yaml.v3"
)

var captureSpecifiers = map[string]ast.CaptureSpecifier{
	"":                ast.CaptureNone,
	"weak":            ast.CaptureWeak,
	"unowned":         ast.CaptureUnowned,
	"unowned(safe)":   ast.CaptureUnownedSafe,
	"unowned(unsafe)": ast.CaptureUnownedUnsafe,
}

// closure decodes
//
//	kind: closure
//	signature: {captures: [...], params: [...] | identifiers: [...], throws: true, result: T}
//	body: [statements]
func (d *decoder) closure(n *yaml.Node) (ast.Expr, error) {
	c := &ast.ClosureExpr{}
	if sn := field(n, "signature"); sn != nil {
		sig, err := d.signature(sn)
		if err != nil {
			return nil, err
		}
		c.Signature = sig
	}
	items, _, err := d.seq(n, "body")
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		s, err := d.statement(it)
		if err != nil {
			return nil, err
		}
		c.Statements = append(c.Statements, s)
	}
	return c, nil
}

func (d *decoder) signature(n *yaml.Node) (*ast.ClosureSignature, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "\"signature\" must be a mapping")
	}
	allowed := []string{"captures", "params", "identifiers", "throws", "result", "result_attributes"}
	if err := d.checkKeys(n, allowed); err != nil {
		return nil, err
	}
	sig := &ast.ClosureSignature{}

	captures, _, err := d.seq(n, "captures")
	if err != nil {
		return nil, err
	}
	for _, it := range captures {
		item, err := d.captureItem(it)
		if err != nil {
			return nil, err
		}
		sig.Captures = append(sig.Captures, item)
	}

	if field(n, "params") != nil && field(n, "identifiers") != nil {
		return nil, d.errorf(n, "signature takes either \"params\" or \"identifiers\"")
	}
	if params, present, err := d.seq(n, "params"); err != nil {
		return nil, err
	} else if present {
		pl := &ast.ParameterList{}
		for _, it := range params {
			p, err := d.closureParam(it)
			if err != nil {
				return nil, err
			}
			pl.Params = append(pl.Params, p)
		}
		sig.Parameters = pl
	}
	if field(n, "identifiers") != nil {
		names, err := d.strList(n, "identifiers")
		if err != nil {
			return nil, err
		}
		sig.Parameters = &ast.IdentifierList{Names: names}
	}

	if sig.Throws, err = d.boolField(n, "throws"); err != nil {
		return nil, err
	}

	if field(n, "result") != nil {
		t, err := d.typeField(n, "result")
		if err != nil {
			return nil, err
		}
		attrs, err := d.strList(n, "result_attributes")
		if err != nil {
			return nil, err
		}
		sig.Result = &ast.FunctionResult{Attributes: attrs, Type: t}
	} else if field(n, "result_attributes") != nil {
		return nil, d.errorf(n, "\"result_attributes\" requires \"result\"")
	}
	return sig, nil
}

// captureItem decodes an expression or {specifier: weak, expr: self}.
func (d *decoder) captureItem(n *yaml.Node) (ast.CaptureItem, error) {
	if !isRecord(n) {
		e, err := d.expr(n)
		if err != nil {
			return ast.CaptureItem{}, err
		}
		return ast.CaptureItem{Expr: e}, nil
	}
	if err := d.checkKeys(n, []string{"specifier", "expr"}); err != nil {
		return ast.CaptureItem{}, err
	}
	spec, err := d.str(n, "specifier")
	if err != nil {
		return ast.CaptureItem{}, err
	}
	s, ok := captureSpecifiers[spec]
	if !ok {
		return ast.CaptureItem{}, d.errorf(field(n, "specifier"), "unknown capture specifier %q", spec)
	}
	e, err := d.exprField(n, "expr")
	if err != nil {
		return ast.CaptureItem{}, err
	}
	return ast.CaptureItem{Specifier: s, Expr: e}, nil
}

// closureParam decodes a bare name or
// {name: x, type: Int, variadic: true, inout: true, attributes: [@escaping]}.
func (d *decoder) closureParam(n *yaml.Node) (ast.ClosureParam, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "" {
			return ast.ClosureParam{}, d.errorf(n, "empty parameter name")
		}
		return ast.ClosureParam{Name: n.Value}, nil
	}
	if n.Kind != yaml.MappingNode {
		return ast.ClosureParam{}, d.errorf(n, "parameter must be a name or a mapping")
	}
	if err := d.checkKeys(n, []string{"name", "type", "variadic", "inout", "attributes"}); err != nil {
		return ast.ClosureParam{}, err
	}
	name, err := d.requiredStr(n, "name")
	if err != nil {
		return ast.ClosureParam{}, err
	}
	p := ast.ClosureParam{Name: name}
	if p.Variadic, err = d.boolField(n, "variadic"); err != nil {
		return ast.ClosureParam{}, err
	}
	if field(n, "type") == nil {
		if field(n, "inout") != nil || field(n, "attributes") != nil {
			return ast.ClosureParam{}, d.errorf(n, "\"inout\" and \"attributes\" require \"type\"")
		}
		return p, nil
	}
	t, err := d.typeField(n, "type")
	if err != nil {
		return ast.ClosureParam{}, err
	}
	inout, err := d.boolField(n, "inout")
	if err != nil {
		return ast.ClosureParam{}, err
	}
	attrs, err := d.strList(n, "attributes")
	if err != nil {
		return ast.ClosureParam{}, err
	}
	p.Type = &ast.TypeAnnotation{Attributes: attrs, InOut: inout, Type: t}
	return p, nil
}

// statement decodes {kind: return, value: expr} or any expression, which
// becomes an expression statement.
func (d *decoder) statement(n *yaml.Node) (ast.Statement, error) {
	if kn := field(n, "kind"); kn != nil && normalize(kn.Value) == "return" {
		if err := d.checkKeys(n, []string{"value"}); err != nil {
			return nil, err
		}
		v, err := d.optExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return d.f.Return(v), nil
	}
	e, err := d.expr(n)
	if err != nil {
		return nil, err
	}
	return d.f.ExprStmt(e), nil
}
