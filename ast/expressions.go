package ast

// AssignmentExpr represents: left = right
type AssignmentExpr struct {
	Left  Expr
	Right Expr
}

func (e *AssignmentExpr) Accept(v ExprVisitor) string { return v.VisitAssignment(e) }

// BinaryExpr represents: left op right. Op is the operator token as written.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) string { return v.VisitBinary(e) }

// ClosureExpr represents: { signature in statements }
type ClosureExpr struct {
	Signature  *ClosureSignature // nil when the closure has no signature
	Statements []Statement       // empty for a closure with no body
}

func (e *ClosureExpr) Accept(v ExprVisitor) string { return v.VisitClosure(e) }

// ExplicitMemberExpr represents member access on an explicit base:
// base.0, base.name, base.name<T> or base.name(a:b:).
type ExplicitMemberExpr struct {
	Kind          MemberKind
	Base          Expr
	Index         int                    // MemberTuple
	Name          string                 // all kinds but MemberTuple
	GenericArgs   *GenericArgumentClause // MemberGeneric
	ArgumentNames []string               // MemberArgument
}

func (e *ExplicitMemberExpr) Accept(v ExprVisitor) string { return v.VisitExplicitMember(e) }

// ForcedValueExpr represents: expr!
type ForcedValueExpr struct {
	Expr Expr
}

func (e *ForcedValueExpr) Accept(v ExprVisitor) string { return v.VisitForcedValue(e) }

// FunctionCallExpr represents: callee(args) [trailing closure]
type FunctionCallExpr struct {
	Callee          Expr
	Args            *ArgumentClause // nil when the call has no parenthesized arguments
	TrailingClosure *ClosureExpr    // nil for no trailing closure
}

func (e *FunctionCallExpr) Accept(v ExprVisitor) string { return v.VisitFunctionCall(e) }

// ArgumentClause is the parenthesized argument list of a call. An empty
// clause still renders its parentheses.
type ArgumentClause struct {
	Arguments []Argument
}

// Argument is one call argument. Label is empty for unlabeled arguments.
type Argument struct {
	Kind     ArgumentKind
	Label    string
	Expr     Expr   // ArgExpr, ArgInOut
	Operator string // ArgOperator
}

// IdentifierExpr represents a name or an implicit closure parameter ($0).
type IdentifierExpr struct {
	Name        string
	Implicit    bool // $Index instead of Name
	Index       int
	GenericArgs *GenericArgumentClause // nil when absent
}

func (e *IdentifierExpr) Accept(v ExprVisitor) string { return v.VisitIdentifier(e) }

// ImplicitMemberExpr represents: .name
type ImplicitMemberExpr struct {
	Name string
}

func (e *ImplicitMemberExpr) Accept(v ExprVisitor) string { return v.VisitImplicitMember(e) }

// InOutExpr represents: &name. The operand is a bare identifier.
type InOutExpr struct {
	Name string
}

func (e *InOutExpr) Accept(v ExprVisitor) string { return v.VisitInOut(e) }

// InitializerExpr represents: base.init or base.init(a:b:)
type InitializerExpr struct {
	Base          Expr
	ArgumentNames []string
}

func (e *InitializerExpr) Accept(v ExprVisitor) string { return v.VisitInitializer(e) }

// KeyPathStringExpr represents: #keyPath(expr)
type KeyPathStringExpr struct {
	Expr Expr
}

func (e *KeyPathStringExpr) Accept(v ExprVisitor) string { return v.VisitKeyPathString(e) }

// LiteralExpr represents nil, boolean, numeric, string, array and dictionary
// literals. Numeric and string literals keep the lexeme exactly as parsed.
type LiteralExpr struct {
	Kind     LiteralKind
	Bool     bool              // LiteralBool
	Raw      string            // numeric and string kinds
	Elements []Expr            // LiteralArray
	Entries  []DictionaryEntry // LiteralDictionary
}

func (e *LiteralExpr) Accept(v ExprVisitor) string { return v.VisitLiteral(e) }

// DictionaryEntry is one key: value pair of a dictionary literal.
type DictionaryEntry struct {
	Key   Expr
	Value Expr
}

// OptionalChainingExpr represents: expr?
type OptionalChainingExpr struct {
	Expr Expr
}

func (e *OptionalChainingExpr) Accept(v ExprVisitor) string { return v.VisitOptionalChaining(e) }

// ParenExpr represents a parenthesized expression: (expr)
type ParenExpr struct {
	Inner Expr
}

func (e *ParenExpr) Accept(v ExprVisitor) string { return v.VisitParen(e) }

// PostfixOperatorExpr represents: expr op
type PostfixOperatorExpr struct {
	Expr Expr
	Op   string
}

func (e *PostfixOperatorExpr) Accept(v ExprVisitor) string { return v.VisitPostfixOperator(e) }

// PostfixSelfExpr represents: expr.self
type PostfixSelfExpr struct {
	Expr Expr
}

func (e *PostfixSelfExpr) Accept(v ExprVisitor) string { return v.VisitPostfixSelf(e) }

// PrefixOperatorExpr represents: op expr
type PrefixOperatorExpr struct {
	Op   string
	Expr Expr
}

func (e *PrefixOperatorExpr) Accept(v ExprVisitor) string { return v.VisitPrefixOperator(e) }

// SelectorExpr represents the #selector forms.
type SelectorExpr struct {
	Kind          SelectorKind
	Expr          Expr     // SelectorPlain, SelectorGetter, SelectorSetter
	Name          string   // SelectorSelfMember
	ArgumentNames []string // SelectorSelfMember
}

func (e *SelectorExpr) Accept(v ExprVisitor) string { return v.VisitSelector(e) }

// SelfExpr represents self, self.name, self[args] and self.init.
type SelfExpr struct {
	Kind SelfKind
	Name string // SelfMethod
	Args []Expr // SelfSubscript
}

func (e *SelfExpr) Accept(v ExprVisitor) string { return v.VisitSelf(e) }

// SubscriptExpr represents: callee[args]
type SubscriptExpr struct {
	Callee Expr
	Args   []Expr
}

func (e *SubscriptExpr) Accept(v ExprVisitor) string { return v.VisitSubscript(e) }

// SuperclassExpr represents super, super.name, super[args] and super.init.
type SuperclassExpr struct {
	Kind SuperKind
	Name string // SuperMethod
	Args []Expr // SuperSubscript
}

func (e *SuperclassExpr) Accept(v ExprVisitor) string { return v.VisitSuperclass(e) }

// TernaryExpr represents: cond ? then : else
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *TernaryExpr) Accept(v ExprVisitor) string { return v.VisitTernary(e) }

// TryExpr represents: try expr, try! expr, try? expr
type TryExpr struct {
	Kind TryKind
	Expr Expr
}

func (e *TryExpr) Accept(v ExprVisitor) string { return v.VisitTry(e) }

// TupleExpr represents: (a, label: b)
type TupleExpr struct {
	Elements []TupleElement
}

func (e *TupleExpr) Accept(v ExprVisitor) string { return v.VisitTuple(e) }

// TupleElement is one tuple member. Label is empty for unlabeled members.
type TupleElement struct {
	Label string
	Expr  Expr
}

// TypeCastExpr represents: expr is T, expr as T, expr as? T, expr as! T
type TypeCastExpr struct {
	Kind CastKind
	Expr Expr
	Type Type
}

func (e *TypeCastExpr) Accept(v ExprVisitor) string { return v.VisitTypeCast(e) }

// WildcardExpr represents: _
type WildcardExpr struct{}

func (e *WildcardExpr) Accept(v ExprVisitor) string { return v.VisitWildcard(e) }
