package ast

import "fmt"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// SourceRange represents a range in the source code
type SourceRange struct {
	Start Position
	End   Position
}

// RangeOf returns the source range covered by a node.
func RangeOf(n Node) SourceRange {
	return SourceRange{Start: n.NodePos(), End: n.NodeEndPos()}
}

// Ident represents a declared name: a variable, a parameter, a return variable or a function name
// Example: "a", "result", "transfer"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Block represents a braced sequence of statements and opens a new scope
// Example: "{ let a := 1 sstore(0, a) }"
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

// VariableDeclaration represents a let statement with an optional initializer
// Example: "let a, b := f()", "let x"
type VariableDeclaration struct {
	Pos    Position
	EndPos Position
	Names  []Ident
	Value  Expr // nil when the variables are zero-initialized
}

// Assignment represents an assignment to one or more existing variables
// Example: "a := add(a, 1)", "x, y := g()"
type Assignment struct {
	Pos     Position
	EndPos  Position
	Targets []Ident
	Value   Expr
}

// ExpressionStatement represents a function call whose result is discarded
// Example: "mstore(0, 1)"
type ExpressionStatement struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// If represents a conditional without an else branch
// Example: "if iszero(a) { revert(0, 0) }"
type If struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      *Block
}

// ForLoop represents a loop with init, condition, post and body parts
// Example: "for { let i := 0 } lt(i, 10) { i := add(i, 1) } { }"
type ForLoop struct {
	Pos       Position
	EndPos    Position
	Pre       *Block
	Condition Expr
	Post      *Block
	Body      *Block
}

// Switch represents a switch over literal cases with an optional default
// Example: "switch x case 0 { } default { }"
type Switch struct {
	Pos    Position
	EndPos Position
	Expr   Expr
	Cases  []*Case
}

// Case represents one switch arm. A nil Value marks the default case
// Example: "case 0 { }", "default { }"
type Case struct {
	Pos    Position
	EndPos Position
	Value  *Literal
	Body   *Block
}

// IsDefault reports whether the case is the default arm.
func (c *Case) IsDefault() bool {
	return c.Value == nil
}

// FunctionDefinition represents a function declaration
// Example: "function f(a, b) -> r { r := add(a, b) }"
type FunctionDefinition struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Params  []Ident
	Returns []Ident
	Body    *Block
}

// Break represents "break" inside a for-loop body
type Break struct {
	Pos    Position
	EndPos Position
}

// Continue represents "continue" inside a for-loop body
type Continue struct {
	Pos    Position
	EndPos Position
}

// Leave represents "leave" inside a function body
type Leave struct {
	Pos    Position
	EndPos Position
}
