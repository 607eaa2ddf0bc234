package ast

// Walk calls fn on e, then on every nested expression in source order.
// Returns true as soon as fn returns true for any expression.
func Walk(e Expr, fn func(Expr) bool) bool {
	if e == nil {
		return false
	}
	if fn(e) {
		return true
	}
	for _, c := range Children(e) {
		if Walk(c, fn) {
			return true
		}
	}
	return false
}

// Depth returns the nesting depth of e: 1 for a leaf, 0 for nil. Closure
// bodies count as nested. It uses an explicit stack so arbitrarily deep
// trees can be measured before they are rendered recursively.
func Depth(e Expr) int {
	if e == nil {
		return 0
	}
	type frame struct {
		expr  Expr
		depth int
	}
	deepest := 0
	stack := []frame{{e, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > deepest {
			deepest = top.depth
		}
		for _, c := range Children(top.expr) {
			stack = append(stack, frame{c, top.depth + 1})
		}
	}
	return deepest
}

// Children returns the direct sub-expressions of e in source order. Nodes
// defined outside this package have no visible children.
func Children(e Expr) []Expr {
	var out []Expr
	add := func(xs ...Expr) {
		for _, x := range xs {
			if x != nil {
				out = append(out, x)
			}
		}
	}
	switch ex := e.(type) {
	case *AssignmentExpr:
		add(ex.Left, ex.Right)
	case *BinaryExpr:
		add(ex.Left, ex.Right)
	case *ClosureExpr:
		out = closureChildren(ex, out)
	case *ExplicitMemberExpr:
		add(ex.Base)
	case *ForcedValueExpr:
		add(ex.Expr)
	case *FunctionCallExpr:
		add(ex.Callee)
		if ex.Args != nil {
			for _, a := range ex.Args.Arguments {
				add(a.Expr)
			}
		}
		if ex.TrailingClosure != nil {
			add(ex.TrailingClosure)
		}
	case *InitializerExpr:
		add(ex.Base)
	case *KeyPathStringExpr:
		add(ex.Expr)
	case *LiteralExpr:
		add(ex.Elements...)
		for _, en := range ex.Entries {
			add(en.Key, en.Value)
		}
	case *OptionalChainingExpr:
		add(ex.Expr)
	case *ParenExpr:
		add(ex.Inner)
	case *PostfixOperatorExpr:
		add(ex.Expr)
	case *PostfixSelfExpr:
		add(ex.Expr)
	case *PrefixOperatorExpr:
		add(ex.Expr)
	case *SelectorExpr:
		add(ex.Expr)
	case *SelfExpr:
		add(ex.Args...)
	case *SubscriptExpr:
		add(ex.Callee)
		add(ex.Args...)
	case *SuperclassExpr:
		add(ex.Args...)
	case *TernaryExpr:
		add(ex.Cond, ex.Then, ex.Else)
	case *TryExpr:
		add(ex.Expr)
	case *TupleExpr:
		for _, el := range ex.Elements {
			add(el.Expr)
		}
	case *TypeCastExpr:
		add(ex.Expr)
	}
	return out
}

func closureChildren(c *ClosureExpr, out []Expr) []Expr {
	if c.Signature != nil {
		for _, item := range c.Signature.Captures {
			if item.Expr != nil {
				out = append(out, item.Expr)
			}
		}
	}
	for _, s := range c.Statements {
		switch st := s.(type) {
		case *ExprStmt:
			if st.Expression != nil {
				out = append(out, st.Expression)
			}
		case *ReturnStmt:
			if st.Value != nil {
				out = append(out, st.Value)
			}
		}
	}
	return out
}
