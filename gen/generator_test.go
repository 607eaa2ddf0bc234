package gen

import (
	"sync"
	"testing"

	"github.com/rubiojr/exprgen/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var f = ast.NewFactory()

func id(name string) *ast.IdentifierExpr { return f.Ident(name) }

func TestGenerate_Atoms(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"wildcard", f.Wildcard(), "_"},
		{"identifier", id("foo"), "foo"},
		{"generic identifier", f.Ident("Array", f.TypeIdent("Int")), "Array<Int>"},
		{"implicit parameter", f.ImplicitParam(0), "$0"},
		{"generic implicit parameter", f.ImplicitParam(12, f.TypeIdent("T"), f.TypeIdent("U")), "$12<T, U>"},
		{"nil", f.Nil(), "nil"},
		{"true", f.Bool(true), "true"},
		{"false", f.Bool(false), "false"},
		{"integer lexeme kept", f.Int("0x_FF"), "0x_FF"},
		{"float lexeme kept", f.Float("1_000.5e-3"), "1_000.5e-3"},
		{"string not re-escaped", f.StringLit(`"a\tb\"c"`), `"a\tb\"c"`},
		{"interpolated string", f.InterpolatedString(`"hi \(name)!"`), `"hi \(name)!"`},
		{"empty array", f.Array(), "[]"},
		{"array", f.Array(f.Int("1"), f.Int("2"), id("x")), "[1, 2, x]"},
		{"empty dictionary", f.Dictionary(), "[:]"},
		{"dictionary", f.Dictionary(
			f.Entry(f.StringLit(`"a"`), f.Int("1")),
			f.Entry(f.StringLit(`"b"`), f.Array(f.Int("2"))),
		), `["a": 1, "b": [2]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.expr))
		})
	}
}

func TestGenerate_PostfixWrappers(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"forced value", f.ForcedValue(id("x")), "x!"},
		{"optional chaining", f.OptionalChain(id("x")), "x?"},
		{"chained", f.Member(f.OptionalChain(f.ForcedValue(id("a"))), "b"), "a!?.b"},
		{"prefix", f.Prefix("-", id("x")), "-x"},
		{"prefix custom operator", f.Prefix("√", f.Int("4")), "√4"},
		{"postfix", f.Postfix(id("i"), "++"), "i++"},
		{"postfix self", f.PostfixSelf(id("Int")), "Int.self"},
		{"in-out", f.InOut("value"), "&value"},
		{"paren", f.Paren(id("x")), "(x)"},
		{"nested paren", f.Paren(f.Paren(id("x"))), "((x))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.expr))
		})
	}
}

func TestGenerate_Members(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"tuple index", f.TupleMember(id("pair"), 1), "pair.1"},
		{"named", f.Member(id("view"), "frame"), "view.frame"},
		{"generic", f.GenericMember(id("decoder"), "decode", f.TypeIdent("User")), "decoder.decode<User>"},
		{"argument labels", f.ArgumentMember(id("table"), "insert", "row", "at"), "table.insert(row:at:)"},
		{"argument without labels", f.ArgumentMember(id("table"), "reload"), "table.reload"},
		{"implicit member", f.ImplicitMember("red"), ".red"},
		{"self", f.Self(ast.SelfPlain, ""), "self"},
		{"self method", f.Self(ast.SelfMethod, "name"), "self.name"},
		{"self subscript", f.Self(ast.SelfSubscript, "", f.Int("0"), id("key")), "self[0, key]"},
		{"self init", f.Self(ast.SelfInitializer, ""), "self.init"},
		{"super", f.Super(ast.SuperPlain, ""), "super"},
		{"super method", f.Super(ast.SuperMethod, "viewDidLoad"), "super.viewDidLoad"},
		{"super subscript", f.Super(ast.SuperSubscript, "", f.Int("1")), "super[1]"},
		{"super init", f.Super(ast.SuperInitializer, ""), "super.init"},
		{"initializer", f.Initializer(id("Point")), "Point.init"},
		{"initializer labels", f.Initializer(id("Point"), "x", "y"), "Point.init(x:y:)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.expr))
		})
	}
}

func TestGenerate_Operators(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"assignment", f.Assign(id("x"), f.Int("1")), "x = 1"},
		{"binary", f.Binary(id("a"), "+", id("b")), "a + b"},
		{"long operator", f.Binary(id("a"), "...<", id("b")), "a ...< b"},
		{"single char operator", f.Binary(id("a"), "|", id("b")), "a | b"},
		{"ternary", f.Ternary(id("ok"), f.Int("1"), f.Int("0")), "ok ? 1 : 0"},
		{"nested ternary", f.Ternary(id("a"), f.Ternary(id("b"), id("c"), id("d")), id("e")), "a ? b ? c : d : e"},
		{"is", f.Cast(ast.CastCheck, id("x"), f.TypeIdent("String")), "x is String"},
		{"as", f.Cast(ast.CastAs, id("x"), f.TypeIdent("Any")), "x as Any"},
		{"as?", f.Cast(ast.CastConditional, id("x"), f.TypeIdent("Int")), "x as? Int"},
		{"as!", f.Cast(ast.CastForced, id("x"), &ast.OptionalType{Wrapped: f.TypeIdent("Int")}), "x as! Int?"},
		{"try", f.Try(ast.TryPlain, f.Call(id("load"))), "try load()"},
		{"try!", f.Try(ast.TryForced, f.Call(id("load"))), "try! load()"},
		{"try?", f.Try(ast.TryOptional, f.Call(id("load"))), "try? load()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.expr))
		})
	}
}

func TestGenerate_NoParenthesesInserted(t *testing.T) {
	grouped := f.Binary(f.Paren(f.Binary(id("a"), "+", id("b"))), "*", id("c"))
	assert.Equal(t, "(a + b) * c", Generate(grouped))

	flat := f.Binary(f.Binary(id("a"), "+", id("b")), "*", id("c"))
	assert.Equal(t, "a + b * c", Generate(flat))

	negated := f.Prefix("-", f.Binary(id("a"), "+", id("b")))
	assert.Equal(t, "-a + b", Generate(negated))
}

func TestGenerate_Calls(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"no argument clause", f.CallNoParens(id("foo")), "foo"},
		{"empty argument clause", f.Call(id("foo")), "foo()"},
		{"arguments", f.Call(id("foo"), f.Arg(f.Int("1")), f.NamedArg("x", id("y"))), "foo(1, x: y)"},
		{"in-out argument", f.Call(id("swap"), f.InOutArg("", id("a")), f.InOutArg("", id("b"))), "swap(&a, &b)"},
		{"named in-out argument", f.Call(id("read"), f.InOutArg("into", f.Member(id("self"), "buf"))), "read(into: &self.buf)"},
		{"operator argument", f.Call(id("reduce"), f.Arg(f.Int("0")), f.OperatorArg("", "+")), "reduce(0, +)"},
		{"named operator argument", f.Call(id("sorted"), f.OperatorArg("by", "<")), "sorted(by: <)"},
		{"trailing closure without parens",
			f.WithTrailingClosure(f.CallNoParens(f.Member(id("items"), "map")),
				f.Closure(nil, f.ExprStmt(f.Binary(f.ImplicitParam(0), "*", f.Int("2"))))),
			"items.map { $0 * 2 }"},
		{"trailing closure with parens",
			f.WithTrailingClosure(f.Call(id("after"), f.Arg(f.Float("0.5"))), f.Closure(nil)),
			"after(0.5) {}"},
		{"subscript", f.Subscript(id("matrix"), f.Int("1"), f.Int("2")), "matrix[1, 2]"},
		{"empty tuple", f.Tuple(), "()"},
		{"tuple", f.Tuple(f.Elem("", f.Int("1")), f.Elem("name", f.StringLit(`"x"`))), `(1, name: "x")`},
		{"single element tuple", f.Tuple(f.Elem("", id("a"))), "(a)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.expr))
		})
	}
}

func TestGenerate_KeyPathAndSelector(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"key path", f.KeyPath(f.Member(id("Person"), "name")), "#keyPath(Person.name)"},
		{"selector", f.Selector(ast.SelectorPlain, f.Member(id("self"), "tap")), "#selector(self.tap)"},
		{"getter", f.Selector(ast.SelectorGetter, f.Member(id("self"), "title")), "#selector(getter: self.title)"},
		{"setter", f.Selector(ast.SelectorSetter, f.Member(id("self"), "title")), "#selector(setter: self.title)"},
		{"self member labels", f.SelectorMember("name", "foo", "bar"), "#selector(name(foo:bar:))"},
		{"self member no labels", f.SelectorMember("name"), "#selector(name)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.expr))
		})
	}
}

// macroExpr is an expression kind the generator has no rule for.
type macroExpr struct {
	name string
}

func (m *macroExpr) Accept(v ast.ExprVisitor) string { return v.VisitExtension(m) }
func (m *macroExpr) TextDescription() string         { return "#" + m.name + "()" }

type opaqueExpr struct {
	ID int
}

func (o *opaqueExpr) Accept(v ast.ExprVisitor) string { return v.VisitExtension(o) }

func TestGenerate_ExtensionFallback(t *testing.T) {
	assert.Equal(t, "#file()", Generate(&macroExpr{name: "file"}))
	assert.Equal(t, "print(#line())", Generate(f.Call(id("print"), f.Arg(&macroExpr{name: "line"}))))

	got := Generate(&opaqueExpr{ID: 7})
	assert.Contains(t, got, "opaqueExpr")
	assert.Contains(t, got, "7")
}

func TestGenerate_UnknownKindFallsBackToDump(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"literal", &ast.LiteralExpr{Kind: ast.LiteralKind(99)}, "ast.LiteralExpr"},
		{"explicit member", &ast.ExplicitMemberExpr{Kind: ast.MemberKind(9), Base: id("x")}, "ast.ExplicitMemberExpr"},
		{"self", &ast.SelfExpr{Kind: ast.SelfKind(9)}, "ast.SelfExpr"},
		{"superclass", &ast.SuperclassExpr{Kind: ast.SuperKind(9)}, "ast.SuperclassExpr"},
		{"type cast", &ast.TypeCastExpr{Kind: ast.CastKind(9), Expr: id("x"), Type: f.TypeIdent("Int")}, "ast.TypeCastExpr"},
		{"try", &ast.TryExpr{Kind: ast.TryKind(9), Expr: id("x")}, "ast.TryExpr"},
		{"selector", &ast.SelectorExpr{Kind: ast.SelectorKind(9), Expr: id("x")}, "ast.SelectorExpr"},
		{"call argument", f.Call(id("f"), ast.Argument{Kind: ast.ArgumentKind(9), Label: "to", Expr: id("x")}), "ast.Argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Generate(tt.expr), tt.want)
		})
	}
}

func TestGenerate_NilExpr(t *testing.T) {
	assert.Equal(t, "", Generate(nil))
}

func TestGenerate_Deterministic(t *testing.T) {
	expr := f.Call(f.Member(id("list"), "append"),
		f.Arg(f.Dictionary(f.Entry(f.StringLit(`"k"`), f.Tuple(f.Elem("a", f.Int("1")))))))
	first := Generate(expr)
	require.Equal(t, `list.append(["k": (a: 1)])`, first)

	g := &Generator{}
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = g.Generate(expr)
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, first, r)
	}
}

type upperTypes struct{ TypeGenerator }

func (upperTypes) GenerateType(ast.Type) string { return "T" }

func TestGenerator_CustomTypeRenderer(t *testing.T) {
	g := &Generator{Types: upperTypes{}}
	assert.Equal(t, "x as? T", g.Generate(f.Cast(ast.CastConditional, id("x"), f.TypeIdent("Int"))))
}
