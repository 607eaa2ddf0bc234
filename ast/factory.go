package ast

// Factory centralizes AST node creation for the loader and for callers
// building trees by hand. Constructors take children in source order.
type Factory struct{}

// NewFactory returns a new Factory.
func NewFactory() *Factory { return &Factory{} }

// --- Atoms ---

// Wildcard creates the _ expression.
func (f *Factory) Wildcard() *WildcardExpr { return &WildcardExpr{} }

// Ident creates a named identifier with optional generic arguments.
func (f *Factory) Ident(name string, generics ...Type) *IdentifierExpr {
	return &IdentifierExpr{Name: name, GenericArgs: f.genericClause(generics)}
}

// ImplicitParam creates an implicit closure parameter ($index).
func (f *Factory) ImplicitParam(index int, generics ...Type) *IdentifierExpr {
	return &IdentifierExpr{Implicit: true, Index: index, GenericArgs: f.genericClause(generics)}
}

// Nil creates the nil literal.
func (f *Factory) Nil() *LiteralExpr { return &LiteralExpr{Kind: LiteralNil} }

// Bool creates a boolean literal.
func (f *Factory) Bool(b bool) *LiteralExpr { return &LiteralExpr{Kind: LiteralBool, Bool: b} }

// Int creates an integer literal from its lexeme.
func (f *Factory) Int(raw string) *LiteralExpr { return &LiteralExpr{Kind: LiteralInteger, Raw: raw} }

// Float creates a floating point literal from its lexeme.
func (f *Factory) Float(raw string) *LiteralExpr { return &LiteralExpr{Kind: LiteralFloat, Raw: raw} }

// StringLit creates a static string literal. raw includes the quotes.
func (f *Factory) StringLit(raw string) *LiteralExpr { return &LiteralExpr{Kind: LiteralString, Raw: raw} }

// InterpolatedString creates an interpolated string literal. raw includes the quotes.
func (f *Factory) InterpolatedString(raw string) *LiteralExpr {
	return &LiteralExpr{Kind: LiteralInterpolatedString, Raw: raw}
}

// Array creates an array literal.
func (f *Factory) Array(elems ...Expr) *LiteralExpr {
	return &LiteralExpr{Kind: LiteralArray, Elements: elems}
}

// Dictionary creates a dictionary literal.
func (f *Factory) Dictionary(entries ...DictionaryEntry) *LiteralExpr {
	return &LiteralExpr{Kind: LiteralDictionary, Entries: entries}
}

// Entry creates a dictionary literal entry.
func (f *Factory) Entry(key, value Expr) DictionaryEntry {
	return DictionaryEntry{Key: key, Value: value}
}

// --- Operators ---

// Assign creates left = right.
func (f *Factory) Assign(left, right Expr) *AssignmentExpr {
	return &AssignmentExpr{Left: left, Right: right}
}

// Binary creates left op right.
func (f *Factory) Binary(left Expr, op string, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

// Prefix creates op expr.
func (f *Factory) Prefix(op string, expr Expr) *PrefixOperatorExpr {
	return &PrefixOperatorExpr{Op: op, Expr: expr}
}

// Postfix creates expr op.
func (f *Factory) Postfix(expr Expr, op string) *PostfixOperatorExpr {
	return &PostfixOperatorExpr{Expr: expr, Op: op}
}

// Ternary creates cond ? then : els.
func (f *Factory) Ternary(cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{Cond: cond, Then: then, Else: els}
}

// Cast creates a type-casting expression.
func (f *Factory) Cast(kind CastKind, expr Expr, t Type) *TypeCastExpr {
	return &TypeCastExpr{Kind: kind, Expr: expr, Type: t}
}

// Try creates a try expression.
func (f *Factory) Try(kind TryKind, expr Expr) *TryExpr {
	return &TryExpr{Kind: kind, Expr: expr}
}

// --- Postfix wrappers ---

// ForcedValue creates expr!.
func (f *Factory) ForcedValue(expr Expr) *ForcedValueExpr { return &ForcedValueExpr{Expr: expr} }

// OptionalChain creates expr?.
func (f *Factory) OptionalChain(expr Expr) *OptionalChainingExpr {
	return &OptionalChainingExpr{Expr: expr}
}

// PostfixSelf creates expr.self.
func (f *Factory) PostfixSelf(expr Expr) *PostfixSelfExpr { return &PostfixSelfExpr{Expr: expr} }

// Paren creates (expr).
func (f *Factory) Paren(expr Expr) *ParenExpr { return &ParenExpr{Inner: expr} }

// InOut creates &name.
func (f *Factory) InOut(name string) *InOutExpr { return &InOutExpr{Name: name} }

// --- Members and references ---

// Member creates base.name.
func (f *Factory) Member(base Expr, name string) *ExplicitMemberExpr {
	return &ExplicitMemberExpr{Kind: MemberNamed, Base: base, Name: name}
}

// TupleMember creates base.index.
func (f *Factory) TupleMember(base Expr, index int) *ExplicitMemberExpr {
	return &ExplicitMemberExpr{Kind: MemberTuple, Base: base, Index: index}
}

// GenericMember creates base.name<generics>.
func (f *Factory) GenericMember(base Expr, name string, generics ...Type) *ExplicitMemberExpr {
	return &ExplicitMemberExpr{
		Kind:        MemberGeneric,
		Base:        base,
		Name:        name,
		GenericArgs: &GenericArgumentClause{Args: generics},
	}
}

// ArgumentMember creates base.name(labels...).
func (f *Factory) ArgumentMember(base Expr, name string, labels ...string) *ExplicitMemberExpr {
	return &ExplicitMemberExpr{Kind: MemberArgument, Base: base, Name: name, ArgumentNames: labels}
}

// ImplicitMember creates .name.
func (f *Factory) ImplicitMember(name string) *ImplicitMemberExpr {
	return &ImplicitMemberExpr{Name: name}
}

// Initializer creates base.init(labels...).
func (f *Factory) Initializer(base Expr, labels ...string) *InitializerExpr {
	return &InitializerExpr{Base: base, ArgumentNames: labels}
}

// Self creates a self reference of the given kind.
func (f *Factory) Self(kind SelfKind, name string, args ...Expr) *SelfExpr {
	return &SelfExpr{Kind: kind, Name: name, Args: args}
}

// Super creates a superclass reference of the given kind.
func (f *Factory) Super(kind SuperKind, name string, args ...Expr) *SuperclassExpr {
	return &SuperclassExpr{Kind: kind, Name: name, Args: args}
}

// KeyPath creates #keyPath(expr).
func (f *Factory) KeyPath(expr Expr) *KeyPathStringExpr { return &KeyPathStringExpr{Expr: expr} }

// Selector creates #selector(expr), #selector(getter: expr) or #selector(setter: expr).
func (f *Factory) Selector(kind SelectorKind, expr Expr) *SelectorExpr {
	return &SelectorExpr{Kind: kind, Expr: expr}
}

// SelectorMember creates #selector(name(labels...)).
func (f *Factory) SelectorMember(name string, labels ...string) *SelectorExpr {
	return &SelectorExpr{Kind: SelectorSelfMember, Name: name, ArgumentNames: labels}
}

// --- Calls and collections ---

// Call creates callee(args...). Passing no arguments still yields an empty
// argument clause; use CallNoParens for a call without parentheses.
func (f *Factory) Call(callee Expr, args ...Argument) *FunctionCallExpr {
	return &FunctionCallExpr{Callee: callee, Args: &ArgumentClause{Arguments: args}}
}

// CallNoParens creates a call with no argument clause, usually paired with
// a trailing closure.
func (f *Factory) CallNoParens(callee Expr) *FunctionCallExpr {
	return &FunctionCallExpr{Callee: callee}
}

// WithTrailingClosure returns a shallow copy of call with a trailing closure.
func (f *Factory) WithTrailingClosure(call *FunctionCallExpr, closure *ClosureExpr) *FunctionCallExpr {
	cp := *call
	cp.TrailingClosure = closure
	return &cp
}

// Arg creates an unlabeled expression argument.
func (f *Factory) Arg(expr Expr) Argument { return Argument{Kind: ArgExpr, Expr: expr} }

// NamedArg creates label: expr.
func (f *Factory) NamedArg(label string, expr Expr) Argument {
	return Argument{Kind: ArgExpr, Label: label, Expr: expr}
}

// InOutArg creates &expr, labeled when label is not empty.
func (f *Factory) InOutArg(label string, expr Expr) Argument {
	return Argument{Kind: ArgInOut, Label: label, Expr: expr}
}

// OperatorArg creates a bare operator argument, labeled when label is not empty.
func (f *Factory) OperatorArg(label, op string) Argument {
	return Argument{Kind: ArgOperator, Label: label, Operator: op}
}

// Subscript creates callee[args...].
func (f *Factory) Subscript(callee Expr, args ...Expr) *SubscriptExpr {
	return &SubscriptExpr{Callee: callee, Args: args}
}

// Tuple creates (elems...).
func (f *Factory) Tuple(elems ...TupleElement) *TupleExpr { return &TupleExpr{Elements: elems} }

// Elem creates a tuple element, labeled when label is not empty.
func (f *Factory) Elem(label string, expr Expr) TupleElement {
	return TupleElement{Label: label, Expr: expr}
}

// --- Closures ---

// Closure creates a closure with an optional signature.
func (f *Factory) Closure(sig *ClosureSignature, stmts ...Statement) *ClosureExpr {
	return &ClosureExpr{Signature: sig, Statements: stmts}
}

// ExprStmt wraps an expression as a statement.
func (f *Factory) ExprStmt(e Expr) *ExprStmt { return &ExprStmt{Expression: e} }

// Return creates return [value].
func (f *Factory) Return(value Expr) *ReturnStmt { return &ReturnStmt{Value: value} }

// --- Types ---

// TypeIdent creates a dotted type identifier without generic arguments.
func (f *Factory) TypeIdent(names ...string) *TypeIdentifier {
	t := &TypeIdentifier{Names: make([]TypeName, len(names))}
	for i, n := range names {
		t.Names[i] = TypeName{Name: n}
	}
	return t
}

// GenericType creates name<args...>.
func (f *Factory) GenericType(name string, args ...Type) *TypeIdentifier {
	return &TypeIdentifier{Names: []TypeName{{Name: name, GenericArgs: &GenericArgumentClause{Args: args}}}}
}

// Annotation creates a plain ": T" annotation.
func (f *Factory) Annotation(t Type) *TypeAnnotation { return &TypeAnnotation{Type: t} }

// Result creates a plain "-> T" clause.
func (f *Factory) Result(t Type) *FunctionResult { return &FunctionResult{Type: t} }

func (f *Factory) genericClause(generics []Type) *GenericArgumentClause {
	if len(generics) == 0 {
		return nil
	}
	return &GenericArgumentClause{Args: generics}
}
