package ast

// ClosureSignature is the part of a closure before "in". Every field is
// optional; a signature with no fields set renders as nothing.
type ClosureSignature struct {
	Captures   []CaptureItem   // [weak self, x]
	Parameters ParameterClause // nil when absent
	Throws     bool
	Result     *FunctionResult // nil when absent
}

// CaptureItem is one entry of a closure capture list.
type CaptureItem struct {
	Specifier CaptureSpecifier
	Expr      Expr
}

// ParameterClause is either a *ParameterList or an *IdentifierList.
type ParameterClause interface {
	parameterClause()
}

// ParameterList represents: (a: Int, b: String...)
type ParameterList struct {
	Params []ClosureParam
}

func (*ParameterList) parameterClause() {}

// ClosureParam is one entry of a ParameterList.
type ClosureParam struct {
	Name     string
	Type     *TypeAnnotation // nil for untyped parameters
	Variadic bool            // only rendered when Type is set
}

// IdentifierList represents the bare form: a, b
type IdentifierList struct {
	Names []string
}

func (*IdentifierList) parameterClause() {}
