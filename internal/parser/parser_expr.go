package parser

import (
	"yulfmt/internal/ast"
	"yulfmt/internal/errors"
)

// parseExpression parses an expression whose value feeds wantReturns targets.
// Only calls can produce anything other than exactly one value.
func (p *Parser) parseExpression(wantReturns int) ast.Expr {
	switch p.current.Type {
	case IDENTIFIER:
		name := p.advance()
		if p.check(LEFT_PAREN) {
			return p.finishCall(name, wantReturns)
		}
		return &ast.Identifier{
			Pos:    p.makePos(name),
			EndPos: p.makeEndPos(name),
			Name:   name.Lexeme,
		}
	case NUMBER, HEX_NUMBER, STRING, TRUE, FALSE:
		return p.parseLiteral("expected literal")
	default:
		p.errorAtCurrent("expected expression")
		return nil
	}
}

func (p *Parser) parseLiteral(message string) *ast.Literal {
	var kind ast.LiteralKind
	switch p.current.Type {
	case NUMBER, HEX_NUMBER:
		kind = ast.NumberLiteral
	case STRING:
		kind = ast.StringLiteral
	case TRUE, FALSE:
		kind = ast.BooleanLiteral
	default:
		p.errorAtCurrent(message)
		return nil
	}

	tok := p.advance()
	return &ast.Literal{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Value:  tok.Lexeme,
	}
}

func (p *Parser) finishCall(name Token, wantReturns int) *ast.FunctionCall {
	p.advance() // (
	call := &ast.FunctionCall{
		Pos:  p.makePos(name),
		Name: p.makeIdent(name),
	}

	if !p.check(RIGHT_PAREN) {
		for !p.aborted {
			arg := p.parseExpression(1)
			if arg == nil {
				break
			}
			call.Args = append(call.Args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}

	end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
	call.EndPos = p.makeEndPos(end)
	if p.aborted {
		return call
	}

	if b, ok := p.dialect.Builtin(call.Name.Value); ok {
		p.checkArity(call, signature{params: b.Params, returns: b.Returns}, wantReturns)
	} else {
		p.deferCall(call, wantReturns)
	}
	return call
}

func (p *Parser) checkArity(call *ast.FunctionCall, sig signature, wantReturns int) {
	rng := ast.RangeOf(call)
	if len(call.Args) != sig.params {
		p.reporter.Report(errors.WrongArgumentCount(call.Name.Value, sig.params, len(call.Args), rng))
	}
	if sig.returns != wantReturns {
		p.reporter.Report(errors.WrongReturnCount(call.Name.Value, wantReturns, sig.returns, rng))
	}
}
