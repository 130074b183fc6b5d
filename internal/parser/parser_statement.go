package parser

import (
	"fmt"

	"yulfmt/internal/ast"
	"yulfmt/internal/errors"
)

// parseStatement returns nil only when nothing could be parsed.
func (p *Parser) parseStatement() ast.Statement {
	switch p.current.Type {
	case LEFT_BRACE:
		return p.parseBlock(p.ctx)
	case FUNCTION:
		return p.parseFunctionDefinition()
	case LET:
		return p.parseVariableDeclaration()
	case IF:
		return p.parseIf()
	case SWITCH:
		return p.parseSwitch()
	case FOR:
		return p.parseForLoop()
	case BREAK, CONTINUE:
		return p.parseLoopControl()
	case LEAVE:
		return p.parseLeave()
	case IDENTIFIER:
		return p.parseAssignmentOrCall()
	default:
		p.errorAtCurrent("expected statement")
		return nil
	}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	start := p.advance()
	decl := &ast.VariableDeclaration{Pos: p.makePos(start)}

	decl.Names = p.parseIdentifierList("expected variable name after 'let'")
	if p.aborted {
		decl.EndPos = p.makeEndPos(p.previous)
		return decl
	}
	for _, name := range decl.Names {
		p.checkDeclarable(name, "variable")
	}

	if p.match(COLON_EQUAL) {
		decl.Value = p.parseExpression(len(decl.Names))
		p.checkMultiTarget(decl.Names, decl.Value)
	}

	decl.EndPos = p.makeEndPos(p.previous)
	return decl
}

func (p *Parser) parseAssignmentOrCall() ast.Statement {
	name := p.advance()

	if p.check(LEFT_PAREN) {
		call := p.finishCall(name, 0)
		return &ast.ExpressionStatement{
			Pos:    call.Pos,
			EndPos: call.EndPos,
			Expr:   call,
		}
	}

	assign := &ast.Assignment{
		Pos:     p.makePos(name),
		Targets: []ast.Ident{p.makeIdent(name)},
	}
	for p.match(COMMA) {
		target, ok := p.consumeIdent("expected identifier after ','")
		if !ok {
			assign.EndPos = p.makeEndPos(p.previous)
			return assign
		}
		assign.Targets = append(assign.Targets, target)
	}

	if len(assign.Targets) == 1 {
		p.consume(COLON_EQUAL, "expected '(' or ':=' after identifier")
	} else {
		p.consume(COLON_EQUAL, "expected ':=' after assignment targets")
	}
	if p.aborted {
		assign.EndPos = p.makeEndPos(p.previous)
		return assign
	}

	assign.Value = p.parseExpression(len(assign.Targets))
	p.checkMultiTarget(assign.Targets, assign.Value)
	assign.EndPos = p.makeEndPos(p.previous)
	return assign
}

// checkMultiTarget requires a call on the right of a declaration or assignment with several names.
func (p *Parser) checkMultiTarget(targets []ast.Ident, value ast.Expr) {
	if p.aborted || len(targets) < 2 || value == nil {
		return
	}
	if _, ok := value.(*ast.FunctionCall); !ok {
		p.errorAt(ast.RangeOf(value),
			fmt.Sprintf("%d variables can only be assigned from a function call", len(targets)))
	}
}

func (p *Parser) parseIf() *ast.If {
	start := p.advance()
	stmt := &ast.If{Pos: p.makePos(start)}

	stmt.Condition = p.parseExpression(1)
	if p.aborted {
		stmt.EndPos = p.makeEndPos(p.previous)
		return stmt
	}

	stmt.Body = p.parseBlock(p.ctx)
	stmt.EndPos = stmt.Body.EndPos
	return stmt
}

func (p *Parser) parseSwitch() *ast.Switch {
	start := p.advance()
	stmt := &ast.Switch{Pos: p.makePos(start)}

	stmt.Expr = p.parseExpression(1)
	if p.aborted {
		stmt.EndPos = p.makeEndPos(p.previous)
		return stmt
	}

	sawDefault := false
	for !p.aborted && (p.check(CASE) || p.check(DEFAULT)) {
		if p.check(CASE) {
			if sawDefault {
				p.errorAtCurrent("'case' cannot follow 'default' in a switch")
				break
			}
			stmt.Cases = append(stmt.Cases, p.parseCase())
			continue
		}

		kw := p.current
		c := p.parseDefault()
		if sawDefault {
			p.reporter.Report(errors.New(errors.DuplicateDefault,
				"switch statement has more than one default case",
				ast.SourceRange{Start: p.makePos(kw), End: p.makeEndPos(kw)}).
				WithHelp("remove one of the default cases").
				Build())
		}
		sawDefault = true
		stmt.Cases = append(stmt.Cases, c)
	}

	if len(stmt.Cases) == 0 {
		p.errorAtCurrent("expected 'case' or 'default' after switch expression")
	}

	stmt.EndPos = p.makeEndPos(p.previous)
	if !p.aborted && len(stmt.Cases) == 1 && stmt.Cases[0].IsDefault() {
		p.reporter.Report(errors.DefaultOnlySwitch(ast.RangeOf(stmt)))
	}
	return stmt
}

func (p *Parser) parseCase() *ast.Case {
	start := p.advance()
	c := &ast.Case{Pos: p.makePos(start)}

	c.Value = p.parseLiteral("expected literal after 'case'")
	if p.aborted {
		c.EndPos = p.makeEndPos(p.previous)
		return c
	}

	c.Body = p.parseBlock(p.ctx)
	c.EndPos = c.Body.EndPos
	return c
}

func (p *Parser) parseDefault() *ast.Case {
	start := p.advance()
	c := &ast.Case{Pos: p.makePos(start)}
	c.Body = p.parseBlock(p.ctx)
	c.EndPos = c.Body.EndPos
	return c
}

func (p *Parser) parseForLoop() *ast.ForLoop {
	start := p.advance()
	loop := &ast.ForLoop{Pos: p.makePos(start)}
	outer := p.ctx

	loop.Pre = p.parseBlock(blockContext{inFunction: outer.inFunction, inForInit: true})
	if !p.aborted {
		loop.Condition = p.parseExpression(1)
	}
	if !p.aborted {
		loop.Post = p.parseBlock(blockContext{inFunction: outer.inFunction})
	}
	if !p.aborted {
		loop.Body = p.parseBlock(blockContext{inFunction: outer.inFunction, inFor: true})
	}

	loop.EndPos = p.makeEndPos(p.previous)
	return loop
}

func (p *Parser) parseLoopControl() ast.Statement {
	tok := p.advance()
	pos, end := p.makePos(tok), p.makeEndPos(tok)

	if !p.ctx.inFor {
		p.errorAt(ast.SourceRange{Start: pos, End: end},
			fmt.Sprintf("'%s' is only allowed inside a for-loop body", tok.Lexeme))
	}

	if tok.Type == BREAK {
		return &ast.Break{Pos: pos, EndPos: end}
	}
	return &ast.Continue{Pos: pos, EndPos: end}
}

func (p *Parser) parseLeave() *ast.Leave {
	tok := p.advance()
	pos, end := p.makePos(tok), p.makeEndPos(tok)

	if !p.ctx.inFunction {
		p.errorAt(ast.SourceRange{Start: pos, End: end}, "'leave' is only allowed inside a function body")
	}
	return &ast.Leave{Pos: pos, EndPos: end}
}
