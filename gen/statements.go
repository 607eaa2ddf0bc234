package gen

import (
	"strings"

	"github.com/rubiojr/exprgen/ast"
)

// ExprRenderer renders a single expression.
type ExprRenderer interface {
	Generate(e ast.Expr) string
}

// StatementGenerator is the default StatementRenderer. It renders one
// statement per line and leaves indentation to the enclosing closure.
type StatementGenerator struct {
	Exprs ExprRenderer
}

var _ StatementRenderer = (*StatementGenerator)(nil)

// GenerateStatements renders stmts separated by newlines.
func (sg *StatementGenerator) GenerateStatements(stmts []ast.Statement) string {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = sg.statement(s)
	}
	return strings.Join(lines, "\n")
}

func (sg *StatementGenerator) statement(s ast.Statement) string {
	switch st := s.(type) {
	case *ast.ExprStmt:
		return sg.exprs().Generate(st.Expression)
	case *ast.ReturnStmt:
		if st.Value != nil {
			return "return " + sg.exprs().Generate(st.Value)
		}
		return "return"
	default:
		return describe(s)
	}
}

func (sg *StatementGenerator) exprs() ExprRenderer {
	if sg.Exprs != nil {
		return sg.Exprs
	}
	return &Generator{}
}
