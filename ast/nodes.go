// Package ast defines the expression syntax tree consumed by the generator.
//
// Expressions form a closed set of variants. Each variant dispatches to its
// own ExprVisitor method, so a visitor that forgets a variant does not
// compile. Nodes defined outside this package can still join a tree: they
// implement Accept by calling VisitExtension and describe themselves through
// Describer.
package ast

// Expr is the interface for expression nodes.
type Expr interface {
	Accept(v ExprVisitor) string
}

// Statement is the interface for statement nodes.
type Statement interface {
	stmt()
}

// Type is the interface for type nodes.
type Type interface {
	typ()
}

// Describer is implemented by nodes that can print themselves as source text.
// It is the fallback for nodes a generator does not know about.
type Describer interface {
	TextDescription() string
}

// ExprVisitor has one method per expression variant.
type ExprVisitor interface {
	VisitAssignment(e *AssignmentExpr) string
	VisitBinary(e *BinaryExpr) string
	VisitClosure(e *ClosureExpr) string
	VisitExplicitMember(e *ExplicitMemberExpr) string
	VisitForcedValue(e *ForcedValueExpr) string
	VisitFunctionCall(e *FunctionCallExpr) string
	VisitIdentifier(e *IdentifierExpr) string
	VisitImplicitMember(e *ImplicitMemberExpr) string
	VisitInOut(e *InOutExpr) string
	VisitInitializer(e *InitializerExpr) string
	VisitKeyPathString(e *KeyPathStringExpr) string
	VisitLiteral(e *LiteralExpr) string
	VisitOptionalChaining(e *OptionalChainingExpr) string
	VisitParen(e *ParenExpr) string
	VisitPostfixOperator(e *PostfixOperatorExpr) string
	VisitPostfixSelf(e *PostfixSelfExpr) string
	VisitPrefixOperator(e *PrefixOperatorExpr) string
	VisitSelector(e *SelectorExpr) string
	VisitSelf(e *SelfExpr) string
	VisitSubscript(e *SubscriptExpr) string
	VisitSuperclass(e *SuperclassExpr) string
	VisitTernary(e *TernaryExpr) string
	VisitTry(e *TryExpr) string
	VisitTuple(e *TupleExpr) string
	VisitTypeCast(e *TypeCastExpr) string
	VisitWildcard(e *WildcardExpr) string

	// VisitExtension handles expression nodes defined outside this package.
	VisitExtension(e Expr) string
}

// ExtensionStmt is embedded by statement nodes defined outside this package.
type ExtensionStmt struct{}

func (ExtensionStmt) stmt() {}

// ExtensionType is embedded by type nodes defined outside this package.
type ExtensionType struct{}

func (ExtensionType) typ() {}

// --- Statements ---

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Expression Expr
}

func (*ExprStmt) stmt() {}

// ReturnStmt represents: return [expr]
type ReturnStmt struct {
	Value Expr // nil for bare return
}

func (*ReturnStmt) stmt() {}
