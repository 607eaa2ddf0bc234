package loader

import (
	"strings"

	"github.com/rubiojr/exprgen/ast"
	"gopkg.in/yaml.v3"
)

func (d *decoder) typeField(n *yaml.Node, key string) (ast.Type, error) {
	v, err := d.required(n, key)
	if err != nil {
		return nil, err
	}
	return d.typ(v)
}

func (d *decoder) types(items []*yaml.Node) ([]ast.Type, error) {
	var out []ast.Type
	for _, it := range items {
		t, err := d.typ(it)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (d *decoder) genericArgs(n *yaml.Node, key string) (*ast.GenericArgumentClause, error) {
	items, present, err := d.seq(n, key)
	if err != nil || !present {
		return nil, err
	}
	args, err := d.types(items)
	if err != nil {
		return nil, err
	}
	return &ast.GenericArgumentClause{Args: args}, nil
}

// typ decodes a type. A scalar is a dotted type name; mappings name their
// kind: identifier, optional, implicitly_unwrapped, array, dictionary,
// tuple or function.
func (d *decoder) typ(n *yaml.Node) (ast.Type, error) {
	n = resolve(n)
	if err := d.enter(n); err != nil {
		return nil, err
	}
	defer d.leave(n)

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil, d.errorf(n, "empty type name")
		}
		return d.f.TypeIdent(strings.Split(n.Value, ".")...), nil
	case yaml.MappingNode:
	default:
		return nil, d.errorf(n, "type must be a name or a mapping")
	}

	kind, err := d.requiredStr(n, "kind")
	if err != nil {
		return nil, err
	}
	switch normalize(kind) {
	case "identifier":
		if err := d.checkKeys(n, []string{"name", "generic_args", "names"}); err != nil {
			return nil, err
		}
		return d.typeIdentifier(n)
	case "optional", "implicitly_unwrapped":
		if err := d.checkKeys(n, []string{"wrapped"}); err != nil {
			return nil, err
		}
		wrapped, err := d.typeField(n, "wrapped")
		if err != nil {
			return nil, err
		}
		if normalize(kind) == "optional" {
			return &ast.OptionalType{Wrapped: wrapped}, nil
		}
		return &ast.ImplicitlyUnwrappedOptionalType{Wrapped: wrapped}, nil
	case "array":
		if err := d.checkKeys(n, []string{"element"}); err != nil {
			return nil, err
		}
		elem, err := d.typeField(n, "element")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Element: elem}, nil
	case "dictionary":
		if err := d.checkKeys(n, []string{"key", "value"}); err != nil {
			return nil, err
		}
		k, err := d.typeField(n, "key")
		if err != nil {
			return nil, err
		}
		v, err := d.typeField(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.DictionaryType{Key: k, Value: v}, nil
	case "tuple":
		if err := d.checkKeys(n, []string{"elements"}); err != nil {
			return nil, err
		}
		return d.tupleType(n)
	case "function":
		if err := d.checkKeys(n, []string{"params", "throws", "result"}); err != nil {
			return nil, err
		}
		return d.functionType(n)
	default:
		return nil, d.errorf(field(n, "kind"), "unknown type kind %q", kind)
	}
}

// typeIdentifier decodes {name: Array, generic_args: [Int]} or, for
// qualified names, {names: [Outer, {name: Inner, generic_args: [T]}]}.
func (d *decoder) typeIdentifier(n *yaml.Node) (ast.Type, error) {
	items, present, err := d.seq(n, "names")
	if err != nil {
		return nil, err
	}
	if !present {
		tn, err := d.typeName(n)
		if err != nil {
			return nil, err
		}
		return &ast.TypeIdentifier{Names: []ast.TypeName{tn}}, nil
	}
	if field(n, "name") != nil || field(n, "generic_args") != nil {
		return nil, d.errorf(n, "type identifier takes either \"names\" or \"name\"")
	}
	if len(items) == 0 {
		return nil, d.errorf(n, "\"names\" must not be empty")
	}
	t := &ast.TypeIdentifier{}
	for _, it := range items {
		if it.Kind == yaml.ScalarNode {
			t.Names = append(t.Names, ast.TypeName{Name: it.Value})
			continue
		}
		if err := d.checkKeys(it, []string{"name", "generic_args"}); err != nil {
			return nil, err
		}
		tn, err := d.typeName(it)
		if err != nil {
			return nil, err
		}
		t.Names = append(t.Names, tn)
	}
	return t, nil
}

func (d *decoder) typeName(n *yaml.Node) (ast.TypeName, error) {
	name, err := d.requiredStr(n, "name")
	if err != nil {
		return ast.TypeName{}, err
	}
	generics, err := d.genericArgs(n, "generic_args")
	if err != nil {
		return ast.TypeName{}, err
	}
	return ast.TypeName{Name: name, GenericArgs: generics}, nil
}

func (d *decoder) tupleType(n *yaml.Node) (ast.Type, error) {
	items, _, err := d.seq(n, "elements")
	if err != nil {
		return nil, err
	}
	t := &ast.TupleType{}
	for _, it := range items {
		if !isRecord(it) {
			et, err := d.typ(it)
			if err != nil {
				return nil, err
			}
			t.Elements = append(t.Elements, ast.TupleTypeElement{Type: et})
			continue
		}
		if err := d.checkKeys(it, []string{"label", "type"}); err != nil {
			return nil, err
		}
		label, err := d.str(it, "label")
		if err != nil {
			return nil, err
		}
		et, err := d.typeField(it, "type")
		if err != nil {
			return nil, err
		}
		t.Elements = append(t.Elements, ast.TupleTypeElement{Label: label, Type: et})
	}
	return t, nil
}

func (d *decoder) functionType(n *yaml.Node) (ast.Type, error) {
	items, _, err := d.seq(n, "params")
	if err != nil {
		return nil, err
	}
	params, err := d.types(items)
	if err != nil {
		return nil, err
	}
	throws, err := d.boolField(n, "throws")
	if err != nil {
		return nil, err
	}
	result, err := d.typeField(n, "result")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionType{Params: params, Throws: throws, Result: result}, nil
}
