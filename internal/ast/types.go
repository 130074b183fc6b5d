package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Names
	IDENT

	// Statements
	BLOCK
	VARIABLE_DECLARATION
	ASSIGNMENT
	EXPRESSION_STATEMENT
	IF
	FOR_LOOP
	SWITCH
	CASE
	FUNCTION_DEFINITION
	BREAK
	CONTINUE
	LEAVE

	// Expressions
	FUNCTION_CALL
	IDENTIFIER
	LITERAL
)

var nodeTypeNames = [...]string{
	ILLEGAL:              "Illegal",
	IDENT:                "Ident",
	BLOCK:                "Block",
	VARIABLE_DECLARATION: "VariableDeclaration",
	ASSIGNMENT:           "Assignment",
	EXPRESSION_STATEMENT: "ExpressionStatement",
	IF:                   "If",
	FOR_LOOP:             "ForLoop",
	SWITCH:               "Switch",
	CASE:                 "Case",
	FUNCTION_DEFINITION:  "FunctionDefinition",
	BREAK:                "Break",
	CONTINUE:             "Continue",
	LEAVE:                "Leave",
	FUNCTION_CALL:        "FunctionCall",
	IDENTIFIER:           "Identifier",
	LITERAL:              "Literal",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return nodeTypeNames[ILLEGAL]
	}
	return nodeTypeNames[t]
}
