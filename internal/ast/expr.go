package ast

type Expr interface {
	Node
	isExpr()
}

func (*FunctionCall) isExpr() {}

func (*Identifier) isExpr() {}

func (*Literal) isExpr() {}

type Statement interface {
	Node
	isStatement()
}

func (*Block) isStatement()               {}
func (*VariableDeclaration) isStatement() {}
func (*Assignment) isStatement()          {}
func (*ExpressionStatement) isStatement() {}
func (*If) isStatement()                  {}
func (*ForLoop) isStatement()             {}
func (*Switch) isStatement()              {}
func (*FunctionDefinition) isStatement()  {}
func (*Break) isStatement()               {}
func (*Continue) isStatement()            {}
func (*Leave) isStatement()               {}

// LiteralKind distinguishes the lexical classes of literals.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BooleanLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case StringLiteral:
		return "string"
	case BooleanLiteral:
		return "boolean"
	default:
		return "unknown"
	}
}

// FunctionCall represents a call to a builtin or a user-defined function
// Example: "add(a, mload(0x40))"
type FunctionCall struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr
}

// Identifier represents a variable reference
// Example: "a", "memPtr"
type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string
}

// Literal keeps the literal exactly as it was written in the source
// Example: "0x40", "42", "\"abc\"", "true"
type Literal struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}
