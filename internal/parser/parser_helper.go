package parser

import (
	"fmt"

	"yulfmt/internal/ast"
	"yulfmt/internal/errors"
)

func (p *Parser) advance() Token {
	p.previous = p.current
	if p.current.Type != EOF {
		p.current = p.scanner.Next()
	}
	return p.previous
}

func (p *Parser) check(tt TokenType) bool {
	return p.current.Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the expected token, or reports at the current one and
// returns an ILLEGAL token positioned there.
func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return Token{Type: ILLEGAL, Position: p.current.Position, End: p.current.Position}
}

// errorAtCurrent reports a syntax error at the current token and aborts the parse.
// ILLEGAL tokens were already reported by the scanner.
func (p *Parser) errorAtCurrent(message string) {
	if p.aborted {
		return
	}
	p.aborted = true
	if p.current.Type == ILLEGAL {
		return
	}
	p.reporter.Report(errors.Syntax(
		fmt.Sprintf("%s, found %s", message, describe(p.current)),
		p.tokenRange(p.current)))
}

// errorAt reports a syntax error without aborting; the grammar is still intact.
func (p *Parser) errorAt(rng ast.SourceRange, message string) {
	p.reporter.Report(errors.Syntax(message, rng))
}

func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", tok.Lexeme)
	default:
		return fmt.Sprintf("'%s'", tok.Lexeme)
	}
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.End.Offset,
		Line:     tok.End.Line,
		Column:   tok.End.Column,
	}
}

func (p *Parser) tokenRange(tok Token) ast.SourceRange {
	end := p.makeEndPos(tok)
	if tok.Type == EOF {
		end.Column++
	}
	return ast.SourceRange{Start: p.makePos(tok), End: end}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{}, false
	}
	return p.makeIdent(tok), true
}

// parseIdentifierList parses a non-empty comma-separated list of identifiers
func (p *Parser) parseIdentifierList(message string) []ast.Ident {
	var idents []ast.Ident

	for !p.aborted {
		ident, ok := p.consumeIdent(message)
		if !ok {
			break
		}
		idents = append(idents, ident)

		if !p.match(COMMA) {
			break
		}
		message = "expected identifier after ','"
	}

	return idents
}

// checkDeclarable rejects names that shadow a builtin of the active dialect.
func (p *Parser) checkDeclarable(id ast.Ident, what string) {
	if p.dialect.IsBuiltin(id.Value) {
		p.errorAt(ast.RangeOf(&id),
			fmt.Sprintf("cannot declare %s '%s': the name is reserved for a builtin", what, id.Value))
	}
}
