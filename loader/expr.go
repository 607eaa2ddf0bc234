package loader

import (
	"github.com/rubiojr/exprgen/ast"
	"gopkg.in/yaml.v3"
)

type kindDecoder struct {
	keys   []string
	decode func(d *decoder, n *yaml.Node) (ast.Expr, error)
}

var exprKinds map[string]kindDecoder

func init() {
	exprKinds = map[string]kindDecoder{
		"wildcard":            {nil, (*decoder).wildcard},
		"identifier":          {[]string{"name", "index", "generic_args"}, (*decoder).identifier},
		"nil":                 {nil, (*decoder).nilLiteral},
		"bool":                {[]string{"value"}, (*decoder).boolLiteral},
		"int":                 {[]string{"raw"}, rawLiteral(ast.LiteralInteger)},
		"float":               {[]string{"raw"}, rawLiteral(ast.LiteralFloat)},
		"string":              {[]string{"raw"}, rawLiteral(ast.LiteralString)},
		"interpolated_string": {[]string{"raw"}, rawLiteral(ast.LiteralInterpolatedString)},
		"array":               {[]string{"elements"}, (*decoder).array},
		"dictionary":          {[]string{"entries"}, (*decoder).dictionary},
		"assignment":          {[]string{"left", "right"}, (*decoder).assignment},
		"binary":              {[]string{"left", "op", "right"}, (*decoder).binary},
		"prefix":              {[]string{"op", "expr"}, (*decoder).prefix},
		"postfix":             {[]string{"op", "expr"}, (*decoder).postfix},
		"forced_value":        {[]string{"expr"}, (*decoder).forcedValue},
		"optional_chaining":   {[]string{"expr"}, (*decoder).optionalChaining},
		"postfix_self":        {[]string{"expr"}, (*decoder).postfixSelf},
		"paren":               {[]string{"expr"}, (*decoder).paren},
		"in_out":              {[]string{"name"}, (*decoder).inOut},
		"implicit_member":     {[]string{"name"}, (*decoder).implicitMember},
		"explicit_member":     {[]string{"base", "name", "index", "generic_args", "argument_names"}, (*decoder).explicitMember},
		"call":                {[]string{"callee", "args", "trailing_closure"}, (*decoder).call},
		"subscript":           {[]string{"callee", "args"}, (*decoder).subscript},
		"tuple":               {[]string{"elements"}, (*decoder).tuple},
		"ternary":             {[]string{"cond", "then", "else"}, (*decoder).ternary},
		"cast":                {[]string{"op", "expr", "type"}, (*decoder).cast},
		"try":                 {[]string{"op", "expr"}, (*decoder).try},
		"key_path":            {[]string{"expr"}, (*decoder).keyPath},
		"selector":            {[]string{"expr", "getter", "setter", "name", "argument_names"}, (*decoder).selector},
		"initializer":         {[]string{"base", "argument_names"}, (*decoder).initializer},
		"self":                {[]string{"method", "subscript", "init"}, (*decoder).self},
		"super":               {[]string{"method", "subscript", "init"}, (*decoder).super},
		"closure":             {[]string{"signature", "body"}, (*decoder).closure},
	}
}

// expr decodes any expression node.
func (d *decoder) expr(n *yaml.Node) (ast.Expr, error) {
	n = resolve(n)
	if err := d.enter(n); err != nil {
		return nil, err
	}
	defer d.leave(n)
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.maxDepth {
		return nil, d.errorf(n, "expression nesting exceeds depth limit %d", d.maxDepth)
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return d.scalarExpr(n)
	case yaml.SequenceNode:
		elems, err := d.exprs(n.Content)
		if err != nil {
			return nil, err
		}
		return d.f.Array(elems...), nil
	case yaml.MappingNode:
		kn := field(n, "kind")
		if kn == nil {
			return nil, d.errorf(n, "missing \"kind\"")
		}
		kind := normalize(kn.Value)
		kd, ok := exprKinds[kind]
		if !ok {
			return nil, d.errorf(kn, "unknown expression kind %q", kn.Value)
		}
		if err := d.checkKeys(n, kd.keys); err != nil {
			return nil, err
		}
		return kd.decode(d, n)
	default:
		return nil, d.errorf(n, "unexpected YAML node")
	}
}

func (d *decoder) scalarExpr(n *yaml.Node) (ast.Expr, error) {
	switch n.ShortTag() {
	case "!!null":
		return d.f.Nil(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, d.errorf(n, "invalid boolean %q", n.Value)
		}
		return d.f.Bool(b), nil
	case "!!int":
		return d.f.Int(n.Value), nil
	case "!!float":
		return d.f.Float(n.Value), nil
	case "!!str":
		if n.Value == "" {
			return nil, d.errorf(n, "empty identifier")
		}
		return d.f.Ident(n.Value), nil
	default:
		return nil, d.errorf(n, "unsupported scalar tag %s", n.ShortTag())
	}
}

func (d *decoder) wildcard(*yaml.Node) (ast.Expr, error) {
	return d.f.Wildcard(), nil
}

func (d *decoder) identifier(n *yaml.Node) (ast.Expr, error) {
	generics, err := d.genericArgs(n, "generic_args")
	if err != nil {
		return nil, err
	}
	index, implicit, err := d.intField(n, "index")
	if err != nil {
		return nil, err
	}
	if implicit {
		if field(n, "name") != nil {
			return nil, d.errorf(n, "identifier takes either \"name\" or \"index\"")
		}
		return &ast.IdentifierExpr{Implicit: true, Index: index, GenericArgs: generics}, nil
	}
	name, err := d.requiredStr(n, "name")
	if err != nil {
		return nil, err
	}
	return &ast.IdentifierExpr{Name: name, GenericArgs: generics}, nil
}

func (d *decoder) nilLiteral(*yaml.Node) (ast.Expr, error) {
	return d.f.Nil(), nil
}

func (d *decoder) boolLiteral(n *yaml.Node) (ast.Expr, error) {
	if _, err := d.required(n, "value"); err != nil {
		return nil, err
	}
	b, err := d.boolField(n, "value")
	if err != nil {
		return nil, err
	}
	return d.f.Bool(b), nil
}

func rawLiteral(kind ast.LiteralKind) func(*decoder, *yaml.Node) (ast.Expr, error) {
	return func(d *decoder, n *yaml.Node) (ast.Expr, error) {
		raw, err := d.requiredStr(n, "raw")
		if err != nil {
			return nil, err
		}
		return &ast.LiteralExpr{Kind: kind, Raw: raw}, nil
	}
}

func (d *decoder) array(n *yaml.Node) (ast.Expr, error) {
	elems, err := d.exprList(n, "elements")
	if err != nil {
		return nil, err
	}
	return d.f.Array(elems...), nil
}

func (d *decoder) dictionary(n *yaml.Node) (ast.Expr, error) {
	items, _, err := d.seq(n, "entries")
	if err != nil {
		return nil, err
	}
	var entries []ast.DictionaryEntry
	for _, it := range items {
		if !isRecord(it) {
			return nil, d.errorf(it, "dictionary entry must be a mapping with \"key\" and \"value\"")
		}
		if err := d.checkKeys(it, []string{"key", "value"}); err != nil {
			return nil, err
		}
		k, err := d.exprField(it, "key")
		if err != nil {
			return nil, err
		}
		v, err := d.exprField(it, "value")
		if err != nil {
			return nil, err
		}
		entries = append(entries, d.f.Entry(k, v))
	}
	return d.f.Dictionary(entries...), nil
}

func (d *decoder) assignment(n *yaml.Node) (ast.Expr, error) {
	left, right, err := d.pair(n, "left", "right")
	if err != nil {
		return nil, err
	}
	return d.f.Assign(left, right), nil
}

func (d *decoder) binary(n *yaml.Node) (ast.Expr, error) {
	op, err := d.requiredStr(n, "op")
	if err != nil {
		return nil, err
	}
	left, right, err := d.pair(n, "left", "right")
	if err != nil {
		return nil, err
	}
	return d.f.Binary(left, op, right), nil
}

func (d *decoder) pair(n *yaml.Node, a, b string) (ast.Expr, ast.Expr, error) {
	x, err := d.exprField(n, a)
	if err != nil {
		return nil, nil, err
	}
	y, err := d.exprField(n, b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func (d *decoder) opAndExpr(n *yaml.Node) (string, ast.Expr, error) {
	op, err := d.requiredStr(n, "op")
	if err != nil {
		return "", nil, err
	}
	e, err := d.exprField(n, "expr")
	if err != nil {
		return "", nil, err
	}
	return op, e, nil
}

func (d *decoder) prefix(n *yaml.Node) (ast.Expr, error) {
	op, e, err := d.opAndExpr(n)
	if err != nil {
		return nil, err
	}
	return d.f.Prefix(op, e), nil
}

func (d *decoder) postfix(n *yaml.Node) (ast.Expr, error) {
	op, e, err := d.opAndExpr(n)
	if err != nil {
		return nil, err
	}
	return d.f.Postfix(e, op), nil
}

// wrap decodes the "expr" child and wraps it with build.
func (d *decoder) wrap(n *yaml.Node, build func(ast.Expr) ast.Expr) (ast.Expr, error) {
	e, err := d.exprField(n, "expr")
	if err != nil {
		return nil, err
	}
	return build(e), nil
}

func (d *decoder) forcedValue(n *yaml.Node) (ast.Expr, error) {
	return d.wrap(n, func(e ast.Expr) ast.Expr { return d.f.ForcedValue(e) })
}

func (d *decoder) optionalChaining(n *yaml.Node) (ast.Expr, error) {
	return d.wrap(n, func(e ast.Expr) ast.Expr { return d.f.OptionalChain(e) })
}

func (d *decoder) postfixSelf(n *yaml.Node) (ast.Expr, error) {
	return d.wrap(n, func(e ast.Expr) ast.Expr { return d.f.PostfixSelf(e) })
}

func (d *decoder) paren(n *yaml.Node) (ast.Expr, error) {
	return d.wrap(n, func(e ast.Expr) ast.Expr { return d.f.Paren(e) })
}

func (d *decoder) keyPath(n *yaml.Node) (ast.Expr, error) {
	return d.wrap(n, func(e ast.Expr) ast.Expr { return d.f.KeyPath(e) })
}

func (d *decoder) inOut(n *yaml.Node) (ast.Expr, error) {
	name, err := d.requiredStr(n, "name")
	if err != nil {
		return nil, err
	}
	return d.f.InOut(name), nil
}

func (d *decoder) implicitMember(n *yaml.Node) (ast.Expr, error) {
	name, err := d.requiredStr(n, "name")
	if err != nil {
		return nil, err
	}
	return d.f.ImplicitMember(name), nil
}

func (d *decoder) explicitMember(n *yaml.Node) (ast.Expr, error) {
	base, err := d.exprField(n, "base")
	if err != nil {
		return nil, err
	}
	if index, ok, err := d.intField(n, "index"); err != nil {
		return nil, err
	} else if ok {
		if field(n, "name") != nil {
			return nil, d.errorf(n, "tuple member takes \"index\" without \"name\"")
		}
		return d.f.TupleMember(base, index), nil
	}
	name, err := d.requiredStr(n, "name")
	if err != nil {
		return nil, err
	}
	if field(n, "generic_args") != nil {
		if field(n, "argument_names") != nil {
			return nil, d.errorf(n, "member takes either \"generic_args\" or \"argument_names\"")
		}
		generics, err := d.genericArgs(n, "generic_args")
		if err != nil {
			return nil, err
		}
		return &ast.ExplicitMemberExpr{Kind: ast.MemberGeneric, Base: base, Name: name, GenericArgs: generics}, nil
	}
	if field(n, "argument_names") != nil {
		labels, err := d.strList(n, "argument_names")
		if err != nil {
			return nil, err
		}
		return d.f.ArgumentMember(base, name, labels...), nil
	}
	return d.f.Member(base, name), nil
}

func (d *decoder) call(n *yaml.Node) (ast.Expr, error) {
	callee, err := d.exprField(n, "callee")
	if err != nil {
		return nil, err
	}
	call := d.f.CallNoParens(callee)
	items, present, err := d.seq(n, "args")
	if err != nil {
		return nil, err
	}
	if present {
		call.Args = &ast.ArgumentClause{Arguments: []ast.Argument{}}
		for _, it := range items {
			arg, err := d.argument(it)
			if err != nil {
				return nil, err
			}
			call.Args.Arguments = append(call.Args.Arguments, arg)
		}
	}
	if tc := field(n, "trailing_closure"); tc != nil {
		e, err := d.expr(tc)
		if err != nil {
			return nil, err
		}
		closure, ok := e.(*ast.ClosureExpr)
		if !ok {
			return nil, d.errorf(tc, "\"trailing_closure\" must be a closure")
		}
		call.TrailingClosure = closure
	}
	return call, nil
}

// argument decodes a call argument. Expressions stand for themselves; a
// mapping without "kind" is an argument record:
//
//	{label: x, expr: 1} | {label: into, inout: buf} | {operator: "+"}
func (d *decoder) argument(n *yaml.Node) (ast.Argument, error) {
	if !isRecord(n) {
		e, err := d.expr(n)
		if err != nil {
			return ast.Argument{}, err
		}
		return d.f.Arg(e), nil
	}
	if err := d.checkKeys(n, []string{"label", "expr", "inout", "operator"}); err != nil {
		return ast.Argument{}, err
	}
	label, err := d.str(n, "label")
	if err != nil {
		return ast.Argument{}, err
	}
	forms := 0
	for _, k := range []string{"expr", "inout", "operator"} {
		if field(n, k) != nil {
			forms++
		}
	}
	if forms != 1 {
		return ast.Argument{}, d.errorf(n, "argument takes exactly one of \"expr\", \"inout\" or \"operator\"")
	}
	switch {
	case field(n, "operator") != nil:
		op, err := d.requiredStr(n, "operator")
		if err != nil {
			return ast.Argument{}, err
		}
		return d.f.OperatorArg(label, op), nil
	case field(n, "inout") != nil:
		e, err := d.exprField(n, "inout")
		if err != nil {
			return ast.Argument{}, err
		}
		return d.f.InOutArg(label, e), nil
	default:
		e, err := d.exprField(n, "expr")
		if err != nil {
			return ast.Argument{}, err
		}
		return ast.Argument{Kind: ast.ArgExpr, Label: label, Expr: e}, nil
	}
}

func (d *decoder) subscript(n *yaml.Node) (ast.Expr, error) {
	callee, err := d.exprField(n, "callee")
	if err != nil {
		return nil, err
	}
	args, err := d.exprList(n, "args")
	if err != nil {
		return nil, err
	}
	return d.f.Subscript(callee, args...), nil
}

func (d *decoder) tuple(n *yaml.Node) (ast.Expr, error) {
	items, _, err := d.seq(n, "elements")
	if err != nil {
		return nil, err
	}
	var elems []ast.TupleElement
	for _, it := range items {
		if !isRecord(it) {
			e, err := d.expr(it)
			if err != nil {
				return nil, err
			}
			elems = append(elems, d.f.Elem("", e))
			continue
		}
		if err := d.checkKeys(it, []string{"label", "expr"}); err != nil {
			return nil, err
		}
		label, err := d.str(it, "label")
		if err != nil {
			return nil, err
		}
		e, err := d.exprField(it, "expr")
		if err != nil {
			return nil, err
		}
		elems = append(elems, d.f.Elem(label, e))
	}
	return d.f.Tuple(elems...), nil
}

func (d *decoder) ternary(n *yaml.Node) (ast.Expr, error) {
	cond, err := d.exprField(n, "cond")
	if err != nil {
		return nil, err
	}
	then, els, err := d.pair(n, "then", "else")
	if err != nil {
		return nil, err
	}
	return d.f.Ternary(cond, then, els), nil
}

var castOps = map[string]ast.CastKind{
	"is":  ast.CastCheck,
	"as":  ast.CastAs,
	"as?": ast.CastConditional,
	"as!": ast.CastForced,
}

func (d *decoder) cast(n *yaml.Node) (ast.Expr, error) {
	op, err := d.requiredStr(n, "op")
	if err != nil {
		return nil, err
	}
	kind, ok := castOps[op]
	if !ok {
		return nil, d.errorf(field(n, "op"), "unknown cast operator %q", op)
	}
	e, err := d.exprField(n, "expr")
	if err != nil {
		return nil, err
	}
	t, err := d.typeField(n, "type")
	if err != nil {
		return nil, err
	}
	return d.f.Cast(kind, e, t), nil
}

var tryOps = map[string]ast.TryKind{
	"try":  ast.TryPlain,
	"try!": ast.TryForced,
	"try?": ast.TryOptional,
}

func (d *decoder) try(n *yaml.Node) (ast.Expr, error) {
	op, err := d.str(n, "op")
	if err != nil {
		return nil, err
	}
	if op == "" {
		op = "try"
	}
	kind, ok := tryOps[op]
	if !ok {
		return nil, d.errorf(field(n, "op"), "unknown try operator %q", op)
	}
	e, err := d.exprField(n, "expr")
	if err != nil {
		return nil, err
	}
	return d.f.Try(kind, e), nil
}

func (d *decoder) selector(n *yaml.Node) (ast.Expr, error) {
	forms := map[string]ast.SelectorKind{
		"expr":   ast.SelectorPlain,
		"getter": ast.SelectorGetter,
		"setter": ast.SelectorSetter,
		"name":   ast.SelectorSelfMember,
	}
	var found []string
	for k := range forms {
		if field(n, k) != nil {
			found = append(found, k)
		}
	}
	if len(found) != 1 {
		return nil, d.errorf(n, "selector takes exactly one of \"expr\", \"getter\", \"setter\" or \"name\"")
	}
	if found[0] == "name" {
		name, err := d.requiredStr(n, "name")
		if err != nil {
			return nil, err
		}
		labels, err := d.strList(n, "argument_names")
		if err != nil {
			return nil, err
		}
		return d.f.SelectorMember(name, labels...), nil
	}
	if field(n, "argument_names") != nil {
		return nil, d.errorf(n, "\"argument_names\" requires \"name\"")
	}
	e, err := d.exprField(n, found[0])
	if err != nil {
		return nil, err
	}
	return d.f.Selector(forms[found[0]], e), nil
}

func (d *decoder) initializer(n *yaml.Node) (ast.Expr, error) {
	base, err := d.exprField(n, "base")
	if err != nil {
		return nil, err
	}
	labels, err := d.strList(n, "argument_names")
	if err != nil {
		return nil, err
	}
	return d.f.Initializer(base, labels...), nil
}

// reference decodes the shared shape of self and super:
// {} | {method: name} | {subscript: [args]} | {init: true}.
type reference struct {
	method string
	args   []ast.Expr
	form   int // 0 plain, 1 method, 2 subscript, 3 init
}

func (d *decoder) reference(n *yaml.Node) (reference, error) {
	var r reference
	set := 0
	if field(n, "method") != nil {
		name, err := d.requiredStr(n, "method")
		if err != nil {
			return r, err
		}
		r.method, r.form = name, 1
		set++
	}
	if field(n, "subscript") != nil {
		args, err := d.exprList(n, "subscript")
		if err != nil {
			return r, err
		}
		r.args, r.form = args, 2
		set++
	}
	isInit, err := d.boolField(n, "init")
	if err != nil {
		return r, err
	}
	if isInit {
		r.form = 3
		set++
	}
	if set > 1 {
		return r, d.errorf(n, "reference takes at most one of \"method\", \"subscript\" or \"init\"")
	}
	return r, nil
}

func (d *decoder) self(n *yaml.Node) (ast.Expr, error) {
	r, err := d.reference(n)
	if err != nil {
		return nil, err
	}
	kinds := [...]ast.SelfKind{ast.SelfPlain, ast.SelfMethod, ast.SelfSubscript, ast.SelfInitializer}
	return d.f.Self(kinds[r.form], r.method, r.args...), nil
}

func (d *decoder) super(n *yaml.Node) (ast.Expr, error) {
	r, err := d.reference(n)
	if err != nil {
		return nil, err
	}
	kinds := [...]ast.SuperKind{ast.SuperPlain, ast.SuperMethod, ast.SuperSubscript, ast.SuperInitializer}
	return d.f.Super(kinds[r.form], r.method, r.args...), nil
}
