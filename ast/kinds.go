package ast

// LiteralKind selects the form of a LiteralExpr.
type LiteralKind int

const (
	LiteralNil LiteralKind = iota
	LiteralBool
	LiteralInteger
	LiteralFloat
	LiteralString
	LiteralInterpolatedString
	LiteralArray
	LiteralDictionary
)

var literalKindNames = [...]string{
	LiteralNil:                "nil",
	LiteralBool:               "bool",
	LiteralInteger:            "int",
	LiteralFloat:              "float",
	LiteralString:             "string",
	LiteralInterpolatedString: "interpolated_string",
	LiteralArray:              "array",
	LiteralDictionary:         "dictionary",
}

func (k LiteralKind) String() string { return kindName(literalKindNames[:], int(k)) }

// MemberKind selects the form of an ExplicitMemberExpr.
type MemberKind int

const (
	MemberNamed    MemberKind = iota // base.name
	MemberTuple                      // base.0
	MemberGeneric                    // base.name<T>
	MemberArgument                   // base.name(a:b:)
)

var memberKindNames = [...]string{
	MemberNamed:    "named",
	MemberTuple:    "tuple",
	MemberGeneric:  "generic",
	MemberArgument: "argument",
}

func (k MemberKind) String() string { return kindName(memberKindNames[:], int(k)) }

// ArgumentKind selects the form of a call Argument. Combined with an
// optional label it yields the six argument shapes.
type ArgumentKind int

const (
	ArgExpr     ArgumentKind = iota // expr
	ArgInOut                        // &expr
	ArgOperator                     // +
)

var argumentKindNames = [...]string{
	ArgExpr:     "expr",
	ArgInOut:    "inout",
	ArgOperator: "operator",
}

func (k ArgumentKind) String() string { return kindName(argumentKindNames[:], int(k)) }

// SelectorKind selects the form of a SelectorExpr.
type SelectorKind int

const (
	SelectorPlain      SelectorKind = iota // #selector(expr)
	SelectorGetter                         // #selector(getter: expr)
	SelectorSetter                         // #selector(setter: expr)
	SelectorSelfMember                     // #selector(name(a:b:))
)

var selectorKindNames = [...]string{
	SelectorPlain:      "selector",
	SelectorGetter:     "getter",
	SelectorSetter:     "setter",
	SelectorSelfMember: "self_member",
}

func (k SelectorKind) String() string { return kindName(selectorKindNames[:], int(k)) }

// SelfKind selects the form of a SelfExpr.
type SelfKind int

const (
	SelfPlain SelfKind = iota
	SelfMethod
	SelfSubscript
	SelfInitializer
)

var selfKindNames = [...]string{
	SelfPlain:       "self",
	SelfMethod:      "method",
	SelfSubscript:   "subscript",
	SelfInitializer: "initializer",
}

func (k SelfKind) String() string { return kindName(selfKindNames[:], int(k)) }

// SuperKind selects the form of a SuperclassExpr.
type SuperKind int

const (
	SuperPlain SuperKind = iota
	SuperMethod
	SuperSubscript
	SuperInitializer
)

var superKindNames = [...]string{
	SuperPlain:       "super",
	SuperMethod:      "method",
	SuperSubscript:   "subscript",
	SuperInitializer: "initializer",
}

func (k SuperKind) String() string { return kindName(superKindNames[:], int(k)) }

// CastKind selects the operator of a TypeCastExpr.
type CastKind int

const (
	CastCheck       CastKind = iota // is
	CastAs                          // as
	CastConditional                 // as?
	CastForced                      // as!
)

var castOperators = [...]string{
	CastCheck:       "is",
	CastAs:          "as",
	CastConditional: "as?",
	CastForced:      "as!",
}

// String returns the cast operator token.
func (k CastKind) String() string { return kindName(castOperators[:], int(k)) }

// TryKind selects the keyword of a TryExpr.
type TryKind int

const (
	TryPlain    TryKind = iota // try
	TryForced                  // try!
	TryOptional                // try?
)

var tryKeywords = [...]string{
	TryPlain:    "try",
	TryForced:   "try!",
	TryOptional: "try?",
}

// String returns the try keyword.
func (k TryKind) String() string { return kindName(tryKeywords[:], int(k)) }

// CaptureSpecifier is the ownership specifier of a closure capture item.
type CaptureSpecifier int

const (
	CaptureNone CaptureSpecifier = iota
	CaptureWeak
	CaptureUnowned
	CaptureUnownedSafe
	CaptureUnownedUnsafe
)

var captureSpecifierNames = [...]string{
	CaptureNone:          "",
	CaptureWeak:          "weak",
	CaptureUnowned:       "unowned",
	CaptureUnownedSafe:   "unowned(safe)",
	CaptureUnownedUnsafe: "unowned(unsafe)",
}

// String returns the specifier keyword, empty for CaptureNone.
func (s CaptureSpecifier) String() string { return kindName(captureSpecifierNames[:], int(s)) }

func kindName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "?"
	}
	return names[i]
}
