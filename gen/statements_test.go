package gen

import (
	"testing"

	"github.com/rubiojr/exprgen/ast"
	"github.com/stretchr/testify/assert"
)

type deferStmt struct {
	ast.ExtensionStmt
}

func (deferStmt) TextDescription() string { return "defer { close() }" }

func TestStatementGenerator(t *testing.T) {
	sg := &StatementGenerator{}
	got := sg.GenerateStatements([]ast.Statement{
		f.ExprStmt(f.Assign(id("x"), f.Int("1"))),
		f.Return(nil),
		f.Return(f.Binary(id("x"), "+", f.Int("1"))),
		deferStmt{},
	})
	assert.Equal(t, "x = 1\nreturn\nreturn x + 1\ndefer { close() }", got)
	assert.Equal(t, "", sg.GenerateStatements(nil))
}

type tagExprs struct{}

func (tagExprs) Generate(ast.Expr) string { return "<expr>" }

func TestStatementGenerator_UsesExprRenderer(t *testing.T) {
	sg := &StatementGenerator{Exprs: tagExprs{}}
	assert.Equal(t, "<expr>\nreturn <expr>", sg.GenerateStatements([]ast.Statement{
		f.ExprStmt(id("a")),
		f.Return(id("b")),
	}))
}

func TestGenerator_GenerateStatements(t *testing.T) {
	g := &Generator{}
	assert.Equal(t, "a.b\nreturn $0", g.GenerateStatements([]ast.Statement{
		f.ExprStmt(f.Member(id("a"), "b")),
		f.Return(f.ImplicitParam(0)),
	}))
}
