package parser

import (
	"fmt"

	"yulfmt/internal/ast"
)

func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	start := p.advance()
	fn := &ast.FunctionDefinition{Pos: p.makePos(start)}

	if p.ctx.inForInit {
		p.errorAt(ast.SourceRange{Start: fn.Pos, End: p.makeEndPos(start)},
			"functions cannot be defined inside a for-loop init block")
	}

	name, ok := p.consumeIdent("expected function name after 'function'")
	if !ok {
		fn.EndPos = p.makeEndPos(p.previous)
		return fn
	}
	fn.Name = name
	p.checkDeclarable(name, "function")

	fn.Params = p.parseFunctionParameters()
	if !p.aborted && p.match(ARROW) {
		fn.Returns = p.parseIdentifierList("expected return variable after '->'")
	}
	if p.aborted {
		fn.EndPos = p.makeEndPos(p.previous)
		return fn
	}

	for _, id := range fn.Params {
		p.checkDeclarable(id, "parameter")
	}
	for _, id := range fn.Returns {
		p.checkDeclarable(id, "return variable")
	}
	p.declareFunction(fn)

	fn.Body = p.parseBlock(blockContext{inFunction: true})
	fn.EndPos = fn.Body.EndPos
	return fn
}

// parseFunctionParameters parses the parameter list in parentheses
func (p *Parser) parseFunctionParameters() []ast.Ident {
	p.consume(LEFT_PAREN, "expected '(' after function name")
	if p.aborted {
		return nil
	}

	var params []ast.Ident
	if !p.check(RIGHT_PAREN) {
		params = p.parseIdentifierList("expected parameter name")
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

// declareFunction registers fn in the innermost scope. Redefinition in the
// same block is reported at the second definition.
func (p *Parser) declareFunction(fn *ast.FunctionDefinition) {
	s := p.scopes[len(p.scopes)-1]
	if _, exists := s.functions[fn.Name.Value]; exists {
		p.errorAt(ast.RangeOf(&fn.Name),
			fmt.Sprintf("function '%s' is already declared in this block", fn.Name.Value))
		return
	}
	s.functions[fn.Name.Value] = signature{params: len(fn.Params), returns: len(fn.Returns)}
	p.declared = append(p.declared, fn.Name.Value)
}
