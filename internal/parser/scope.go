package parser

import (
	"yulfmt/internal/ast"
	"yulfmt/internal/errors"
)

type signature struct {
	params  int
	returns int
}

type pendingCall struct {
	call        *ast.FunctionCall
	wantReturns int
}

// scope holds the functions declared directly in one block and the calls
// that could not be resolved yet. Functions are visible in their whole
// block, so calls are resolved when the block closes.
type scope struct {
	functions map[string]signature
	pending   []pendingCall
}

func (p *Parser) pushScope() {
	p.scopes = append(p.scopes, &scope{functions: make(map[string]signature)})
}

func (p *Parser) popScope() {
	s := p.scopes[len(p.scopes)-1]
	p.scopes = p.scopes[:len(p.scopes)-1]
	if p.aborted {
		return
	}

	for _, pc := range s.pending {
		if sig, ok := s.functions[pc.call.Name.Value]; ok {
			p.checkArity(pc.call, sig, pc.wantReturns)
			continue
		}
		if len(p.scopes) > 0 {
			parent := p.scopes[len(p.scopes)-1]
			parent.pending = append(parent.pending, pc)
			continue
		}
		p.reportUndeclared(pc.call)
	}
}

func (p *Parser) deferCall(call *ast.FunctionCall, wantReturns int) {
	s := p.scopes[len(p.scopes)-1]
	s.pending = append(s.pending, pendingCall{call: call, wantReturns: wantReturns})
}

func (p *Parser) reportUndeclared(call *ast.FunctionCall) {
	candidates := append(p.dialect.Names(), p.declared...)
	p.reporter.Report(errors.UndefinedFunction(call.Name.Value, ast.RangeOf(call), candidates))
}
