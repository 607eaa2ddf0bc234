package gen

import (
	"strings"

	"github.com/rubiojr/exprgen/ast"
)

// argumentNames renders labels as "(a:b:)", or "" when there are none.
func argumentNames(names []string) string {
	if len(names) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for _, n := range names {
		sb.WriteString(n)
		sb.WriteByte(':')
	}
	sb.WriteByte(')')
	return sb.String()
}

func (g *Generator) exprList(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = g.Generate(e)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) dictionaryEntries(entries []ast.DictionaryEntry) string {
	parts := make([]string, len(entries))
	for i, en := range entries {
		parts[i] = g.Generate(en.Key) + ": " + g.Generate(en.Value)
	}
	return strings.Join(parts, ", ")
}

// indentLines prefixes every non-empty line of s with prefix.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = prefix + ln
		}
	}
	return strings.Join(lines, "\n")
}
