package ast

// TypeIdentifier represents a possibly qualified, possibly generic type
// name: Int, Swift.Array<Int>, Outer<T>.Inner.
type TypeIdentifier struct {
	Names []TypeName
}

func (*TypeIdentifier) typ() {}

// TypeName is one dotted component of a TypeIdentifier.
type TypeName struct {
	Name        string
	GenericArgs *GenericArgumentClause
}

// OptionalType represents: T?
type OptionalType struct {
	Wrapped Type
}

func (*OptionalType) typ() {}

// ImplicitlyUnwrappedOptionalType represents: T!
type ImplicitlyUnwrappedOptionalType struct {
	Wrapped Type
}

func (*ImplicitlyUnwrappedOptionalType) typ() {}

// ArrayType represents: [T]
type ArrayType struct {
	Element Type
}

func (*ArrayType) typ() {}

// DictionaryType represents: [K: V]
type DictionaryType struct {
	Key   Type
	Value Type
}

func (*DictionaryType) typ() {}

// TupleType represents: (label: A, B)
type TupleType struct {
	Elements []TupleTypeElement
}

func (*TupleType) typ() {}

// TupleTypeElement is one tuple type member. Label is empty when absent.
type TupleTypeElement struct {
	Label string
	Type  Type
}

// FunctionType represents: (A, B) throws -> R
type FunctionType struct {
	Params []Type
	Throws bool
	Result Type
}

func (*FunctionType) typ() {}

// GenericArgumentClause represents: <A, B>
type GenericArgumentClause struct {
	Args []Type
}

// TypeAnnotation represents the ": T" suffix of a parameter.
type TypeAnnotation struct {
	Attributes []string // e.g. "@escaping"
	InOut      bool
	Type       Type
}

// FunctionResult represents the "-> T" clause of a closure signature.
type FunctionResult struct {
	Attributes []string
	Type       Type
}
