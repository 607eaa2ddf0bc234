package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkVisitsInSourceOrder(t *testing.T) {
	f := NewFactory()
	expr := f.Call(f.Member(f.Ident("a"), "b"),
		f.Arg(f.Ident("c")),
		f.OperatorArg("", "+"),
		f.InOutArg("into", f.Ident("d")))

	var names []string
	Walk(expr, func(e Expr) bool {
		if id, ok := e.(*IdentifierExpr); ok {
			names = append(names, id.Name)
		}
		return false
	})
	assert.Equal(t, []string{"a", "c", "d"}, names)
}

func TestWalkStopsEarly(t *testing.T) {
	f := NewFactory()
	expr := f.Array(f.Ident("a"), f.Ident("b"), f.Ident("c"))

	visited := 0
	found := Walk(expr, func(e Expr) bool {
		visited++
		id, ok := e.(*IdentifierExpr)
		return ok && id.Name == "b"
	})
	assert.True(t, found)
	assert.Equal(t, 3, visited)
}

func TestWalkClosure(t *testing.T) {
	f := NewFactory()
	closure := f.Closure(
		&ClosureSignature{Captures: []CaptureItem{{Specifier: CaptureWeak, Expr: f.Ident("self")}}},
		f.ExprStmt(f.Ident("x")),
		f.Return(f.Ident("y")),
		f.Return(nil),
	)
	assert.Len(t, Children(closure), 3)
	assert.True(t, Walk(closure, func(e Expr) bool {
		id, ok := e.(*IdentifierExpr)
		return ok && id.Name == "y"
	}))
}

func TestWalkNil(t *testing.T) {
	assert.False(t, Walk(nil, func(Expr) bool { return true }))
}

func TestDepth(t *testing.T) {
	f := NewFactory()

	assert.Equal(t, 0, Depth(nil))
	assert.Equal(t, 1, Depth(f.Wildcard()))
	assert.Equal(t, 2, Depth(f.Paren(f.Int("1"))))
	assert.Equal(t, 3, Depth(f.Binary(f.Int("1"), "+", f.Paren(f.Int("2")))))

	trailing := f.WithTrailingClosure(f.CallNoParens(f.Ident("run")),
		f.Closure(nil, f.ExprStmt(f.ForcedValue(f.Ident("x")))))
	assert.Equal(t, 4, Depth(trailing))
}

func TestDepthDeepTree(t *testing.T) {
	f := NewFactory()
	var e Expr = f.Ident("x")
	for range 100000 {
		e = f.Paren(e)
	}
	assert.Equal(t, 100001, Depth(e))
}

func TestChildrenCoversComposites(t *testing.T) {
	f := NewFactory()
	tests := []struct {
		name string
		expr Expr
		want int
	}{
		{"assignment", f.Assign(f.Ident("a"), f.Ident("b")), 2},
		{"ternary", f.Ternary(f.Ident("a"), f.Ident("b"), f.Ident("c")), 3},
		{"subscript", f.Subscript(f.Ident("a"), f.Int("1"), f.Int("2")), 3},
		{"dictionary", f.Dictionary(f.Entry(f.Int("1"), f.Int("2"))), 2},
		{"tuple", f.Tuple(f.Elem("x", f.Int("1"))), 1},
		{"self subscript", f.Self(SelfSubscript, "", f.Int("1")), 1},
		{"super method", f.Super(SuperMethod, "x"), 0},
		{"cast", f.Cast(CastAs, f.Ident("a"), f.TypeIdent("B")), 1},
		{"try", f.Try(TryPlain, f.Ident("a")), 1},
		{"selector member", f.SelectorMember("x"), 0},
		{"initializer", f.Initializer(f.Ident("A")), 1},
		{"key path", f.KeyPath(f.Ident("a")), 1},
		{"in-out", f.InOut("a"), 0},
		{"wildcard", f.Wildcard(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Children(tt.expr), tt.want)
		})
	}
}
