package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a Yul source: either a single braced block or, at top level,
// a bare statement list. Both shapes are a statement sequence here.
type Program struct {
	Pos        lexer.Position
	Statements []*Statement `@@*`
}

type Statement struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Block    *Block              `  @@`
	Function *FunctionDefinition `| @@`
	Let      *VariableDeclaration `| @@`
	If       *If                 `| @@`
	Switch   *Switch             `| @@`
	For      *ForLoop            `| @@`
	Break    bool                `| @"break"`
	Continue bool                `| @"continue"`
	Leave    bool                `| @"leave"`
	Call     *FunctionCall       `| @@`
	Assign   *Assignment         `| @@`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type FunctionDefinition struct {
	Pos     lexer.Position
	Name    string   `"function" @Ident "("`
	Params  []string `( @Ident ( "," @Ident )* )? ")"`
	Returns []string `( "->" @Ident ( "," @Ident )* )?`
	Body    *Block   `@@`
}

type VariableDeclaration struct {
	Pos   lexer.Position
	Names []string    `"let" @Ident ( "," @Ident )*`
	Value *Expression `( ":=" @@ )?`
}

type Assignment struct {
	Pos     lexer.Position
	Targets []string    `@Ident ( "," @Ident )* ":="`
	Value   *Expression `@@`
}

type If struct {
	Pos       lexer.Position
	Condition *Expression `"if" @@`
	Body      *Block      `@@`
}

type Switch struct {
	Pos     lexer.Position
	Expr    *Expression `"switch" @@`
	Cases   []*Case     `@@*`
	Default *Block      `( "default" @@ )?`
}

type Case struct {
	Pos   lexer.Position
	Value *Literal `"case" @@`
	Body  *Block   `@@`
}

type ForLoop struct {
	Pos       lexer.Position
	Pre       *Block      `"for" @@`
	Condition *Expression `@@`
	Post      *Block      `@@`
	Body      *Block      `@@`
}

type Expression struct {
	Pos        lexer.Position
	Call       *FunctionCall `  @@`
	Literal    *Literal      `| @@`
	Identifier string        `| @Ident`
}

type FunctionCall struct {
	Pos  lexer.Position
	Name string        `@Ident "("`
	Args []*Expression `( @@ ( "," @@ )* )? ")"`
}

type Literal struct {
	Pos    lexer.Position
	Number string `  @(Hex | Number)`
	String string `| @String`
	Bool   string `| @("true" | "false")`
}
