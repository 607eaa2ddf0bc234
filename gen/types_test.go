package gen

import (
	"testing"

	"github.com/rubiojr/exprgen/ast"
	"github.com/stretchr/testify/assert"
)

type bitsType struct {
	ast.ExtensionType
}

func (b bitsType) TextDescription() string { return "Bits<32>" }

func TestTypeGenerator_GenerateType(t *testing.T) {
	tg := TypeGenerator{}
	tests := []struct {
		name string
		typ  ast.Type
		want string
	}{
		{"nil", nil, ""},
		{"simple", f.TypeIdent("Int"), "Int"},
		{"qualified", f.TypeIdent("Swift", "String"), "Swift.String"},
		{"generic", f.GenericType("Dictionary", f.TypeIdent("String"), f.TypeIdent("Int")), "Dictionary<String, Int>"},
		{"generic component", &ast.TypeIdentifier{Names: []ast.TypeName{
			{Name: "Outer", GenericArgs: &ast.GenericArgumentClause{Args: []ast.Type{f.TypeIdent("T")}}},
			{Name: "Inner"},
		}}, "Outer<T>.Inner"},
		{"optional", &ast.OptionalType{Wrapped: f.TypeIdent("Int")}, "Int?"},
		{"implicitly unwrapped", &ast.ImplicitlyUnwrappedOptionalType{Wrapped: f.TypeIdent("View")}, "View!"},
		{"array", &ast.ArrayType{Element: f.TypeIdent("Int")}, "[Int]"},
		{"dictionary", &ast.DictionaryType{Key: f.TypeIdent("String"), Value: &ast.ArrayType{Element: f.TypeIdent("Int")}}, "[String: [Int]]"},
		{"empty tuple", &ast.TupleType{}, "()"},
		{"tuple", &ast.TupleType{Elements: []ast.TupleTypeElement{
			{Label: "x", Type: f.TypeIdent("Double")},
			{Type: f.TypeIdent("Double")},
		}}, "(x: Double, Double)"},
		{"function", &ast.FunctionType{Params: []ast.Type{f.TypeIdent("Int"), f.TypeIdent("Int")}, Result: f.TypeIdent("Bool")}, "(Int, Int) -> Bool"},
		{"throwing function", &ast.FunctionType{Throws: true, Result: f.TypeIdent("Data")}, "() throws -> Data"},
		{"extension", bitsType{}, "Bits<32>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tg.GenerateType(tt.typ))
		})
	}
}

func TestTypeGenerator_Clauses(t *testing.T) {
	tg := TypeGenerator{}

	assert.Equal(t, "", tg.GenerateGenericArgumentClause(nil))
	assert.Equal(t, "<Int>", tg.GenerateGenericArgumentClause(&ast.GenericArgumentClause{Args: []ast.Type{f.TypeIdent("Int")}}))

	assert.Equal(t, "", tg.GenerateTypeAnnotation(nil))
	assert.Equal(t, ": Int", tg.GenerateTypeAnnotation(f.Annotation(f.TypeIdent("Int"))))
	assert.Equal(t, ": @autoclosure @escaping inout () -> Bool", tg.GenerateTypeAnnotation(&ast.TypeAnnotation{
		Attributes: []string{"@autoclosure", "@escaping"},
		InOut:      true,
		Type:       &ast.FunctionType{Result: f.TypeIdent("Bool")},
	}))

	assert.Equal(t, "", tg.GenerateFunctionResult(nil))
	assert.Equal(t, "-> Int", tg.GenerateFunctionResult(f.Result(f.TypeIdent("Int"))))
	assert.Equal(t, "-> @discardable Int", tg.GenerateFunctionResult(&ast.FunctionResult{
		Attributes: []string{"@discardable"},
		Type:       f.TypeIdent("Int"),
	}))
}
