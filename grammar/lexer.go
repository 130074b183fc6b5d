package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var YulLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},
		{Name: "BlockComment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`, Action: nil},

		// Literals
		{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`, Action: nil},
		{Name: "Hex", Pattern: `0x[0-9a-fA-F]+`, Action: nil},
		{Name: "Number", Pattern: `[0-9]+`, Action: nil},

		// Identifiers swallow keywords whole so "if.x" stays one name.
		// keywordMapper retypes the exact keyword lexemes afterwards.
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$.]*`, Action: nil},
		{Name: "Keyword", Pattern: `let|if|for|switch|case|default|function|break|continue|leave|true|false`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `:=|->|[{}(),]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})

var keywords = map[string]bool{
	"let": true, "if": true, "for": true, "switch": true, "case": true, "default": true,
	"function": true, "break": true, "continue": true, "leave": true, "true": true, "false": true,
}

var keywordType = YulLexer.Symbols()["Keyword"]

// keywordMapper turns an Ident that is exactly a keyword into a Keyword token,
// so @Ident never accepts a reserved word.
func keywordMapper(tok lexer.Token) (lexer.Token, error) {
	if keywords[tok.Value] {
		tok.Type = keywordType
	}
	return tok, nil
}
