package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	HEX_NUMBER
	STRING

	// Keywords
	LET
	IF
	FOR
	SWITCH
	CASE
	DEFAULT
	FUNCTION
	BREAK
	CONTINUE
	LEAVE
	TRUE
	FALSE

	// Punctuation
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_PAREN
	RIGHT_PAREN
	COMMA
	COLON_EQUAL
	ARROW
)

var tokenNames = [...]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	HEX_NUMBER:  "HEX_NUMBER",
	STRING:      "STRING",
	LET:         "LET",
	IF:          "IF",
	FOR:         "FOR",
	SWITCH:      "SWITCH",
	CASE:        "CASE",
	DEFAULT:     "DEFAULT",
	FUNCTION:    "FUNCTION",
	BREAK:       "BREAK",
	CONTINUE:    "CONTINUE",
	LEAVE:       "LEAVE",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	LEFT_BRACE:  "LEFT_BRACE",
	RIGHT_BRACE: "RIGHT_BRACE",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	COMMA:       "COMMA",
	COLON_EQUAL: "COLON_EQUAL",
	ARROW:       "ARROW",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "TokenType(?)"
}

// IsKeyword reports whether the token type is a reserved word.
func (t TokenType) IsKeyword() bool {
	return t >= LET && t <= FALSE
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in bytes
	Offset int // 0-based absolute index in input
}
