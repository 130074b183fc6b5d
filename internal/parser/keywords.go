package parser

var KEYWORDS = map[string]TokenType{
	"let":      LET,
	"if":       IF,
	"for":      FOR,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"function": FUNCTION,
	"break":    BREAK,
	"continue": CONTINUE,
	"leave":    LEAVE,
	"true":     TRUE,
	"false":    FALSE,
}

// IsReserved reports whether name can never be used as an identifier.
func IsReserved(name string) bool {
	_, ok := KEYWORDS[name]
	return ok
}
