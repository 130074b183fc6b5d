package lsp

import (
	"sort"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"yulfmt/internal/dialect"
	"yulfmt/internal/parser"
)

// SemanticTokenTypes is the legend of token types, indexed by SemanticToken.TokenType.
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"number",
	"string",
}

// SemanticTokenModifiers is the legend of modifier bits.
var SemanticTokenModifiers = []string{
	"declaration",
	"defaultLibrary",
}

const (
	tokenKeyword = iota
	tokenFunction
	tokenVariable
	tokenNumber
	tokenString
)

const (
	modDeclaration = 1 << iota
	modDefaultLibrary
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the scanner's tokens. It works on text that
// does not parse, so highlighting survives while the user is typing.
func collectSemanticTokens(text string, lines lineIndex, d *dialect.Dialect) []SemanticToken {
	toks := parser.NewScanner(text, "").ScanTokens()

	var out []SemanticToken
	declaring := false
	for i, tok := range toks {
		var next parser.TokenType = parser.EOF
		if i+1 < len(toks) {
			next = toks[i+1].Type
		}
		prev := parser.ILLEGAL
		if i > 0 {
			prev = toks[i-1].Type
		}

		kind, mods := -1, 0
		switch {
		case tok.Type.IsKeyword():
			kind = tokenKeyword
		case tok.Type == parser.NUMBER || tok.Type == parser.HEX_NUMBER:
			kind = tokenNumber
		case tok.Type == parser.STRING:
			kind = tokenString
		case tok.Type == parser.IDENTIFIER:
			switch {
			case prev == parser.FUNCTION:
				kind, mods = tokenFunction, modDeclaration
			case next == parser.LEFT_PAREN:
				kind = tokenFunction
				if d.IsBuiltin(tok.Lexeme) {
					mods = modDefaultLibrary
				}
			case declaring:
				kind, mods = tokenVariable, modDeclaration
			default:
				kind = tokenVariable
			}
		}

		// Declared names are lists: let a, b := ... / function f(a, b) -> r, s { }
		switch tok.Type {
		case parser.LET, parser.ARROW:
			declaring = true
		case parser.LEFT_PAREN:
			declaring = i >= 2 && toks[i-2].Type == parser.FUNCTION
		case parser.RIGHT_PAREN, parser.LEFT_BRACE:
			declaring = false
		case parser.IDENTIFIER:
			if declaring && next != parser.COMMA {
				declaring = false
			}
		}

		if kind < 0 {
			continue
		}
		start := lines.position(tok.Position.Line, tok.Position.Column)
		out = append(out, SemanticToken{
			Line:           start.Line,
			StartChar:      start.Character,
			Length:         mustUInteger(utf16Len(tok.Lexeme)),
			TokenType:      kind,
			TokenModifiers: mods,
		})
	}
	return out
}

// tokenAt finds the identifier or keyword covering an LSP position.
func tokenAt(text string, lines lineIndex, p protocol.Position) (parser.Token, bool) {
	line, column := lines.byteColumn(p)
	for _, tok := range parser.NewScanner(text, "").ScanTokens() {
		if tok.Position.Line > line {
			break
		}
		if tok.Type != parser.IDENTIFIER && !tok.Type.IsKeyword() {
			continue
		}
		if tok.Position.Line == line && tok.Position.Column <= column && column <= tok.End.Column {
			return tok, true
		}
	}
	return parser.Token{}, false
}

func hoverText(b dialect.Builtin) string {
	var sb strings.Builder
	sb.WriteString("```yul\n")
	sb.WriteString(b.Signature())
	sb.WriteString("\n```\n\n")
	sb.WriteString("Effects: " + b.Effects.String() + "\n\n")
	sb.WriteString("Available since " + b.Since.String() + ".")
	return sb.String()
}

func completionItems(d *dialect.Dialect) []protocol.CompletionItem {
	keywords := make([]string, 0, len(parser.KEYWORDS))
	for kw := range parser.KEYWORDS {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	keywordKind := protocol.CompletionItemKindKeyword
	functionKind := protocol.CompletionItemKindFunction

	items := make([]protocol.CompletionItem, 0, len(keywords)+len(d.Names()))
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &keywordKind,
		})
	}
	for _, b := range d.Builtins() {
		items = append(items, protocol.CompletionItem{
			Label:         b.Name,
			Kind:          &functionKind,
			Detail:        ptrString(b.Signature()),
			Documentation: b.Effects.String(),
		})
	}
	return items
}
