package parser

import (
	"yulfmt/internal/ast"
	"yulfmt/internal/dialect"
	"yulfmt/internal/errors"
)

// blockContext tracks which control-flow statements are legal in the block being parsed.
type blockContext struct {
	inFor      bool
	inFunction bool
	inForInit  bool
}

type Parser struct {
	scanner  *Scanner
	dialect  *dialect.Dialect
	reporter *errors.Reporter
	filename string

	current  Token
	previous Token

	ctx      blockContext
	scopes   []*scope
	declared []string

	// aborted is set by the first syntax error; every parse loop stops on it.
	aborted bool
}

func NewParser(scanner *Scanner, d *dialect.Dialect, reporter *errors.Reporter) *Parser {
	scanner.reporter = reporter
	p := &Parser{
		scanner:  scanner,
		dialect:  d,
		reporter: reporter,
		filename: scanner.filename,
	}
	p.current = scanner.Next()
	return p
}

// Aborted reports whether parsing stopped at a syntax error.
func (p *Parser) Aborted() bool {
	return p.aborted
}

// ParseProgram parses the whole input. In top-level mode a source that does not
// start with '{' is read as the statements of an implicit outermost block.
func (p *Parser) ParseProgram(topLevel bool) *ast.Block {
	if topLevel && !p.check(LEFT_BRACE) {
		return p.parseImplicitBlock()
	}

	block := p.parseBlock(blockContext{})
	if !p.aborted && !p.check(EOF) {
		p.errorAtCurrent("expected end of input after block")
	}
	return block
}

func (p *Parser) parseImplicitBlock() *ast.Block {
	first := p.current
	block := &ast.Block{Pos: p.makePos(first)}

	p.pushScope()
	for !p.check(EOF) && !p.aborted {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.popScope()

	block.EndPos = p.makeEndPos(p.previous)
	if len(block.Statements) == 0 {
		block.EndPos = block.Pos
	}
	return block
}

func (p *Parser) parseBlock(c blockContext) *ast.Block {
	start := p.consume(LEFT_BRACE, "expected '{'")
	if p.aborted {
		return &ast.Block{Pos: p.makePos(start), EndPos: p.makeEndPos(start)}
	}

	saved := p.ctx
	p.ctx = c
	p.pushScope()

	var stmts []ast.Statement
	for !p.check(RIGHT_BRACE) && !p.check(EOF) && !p.aborted {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}'")
	p.popScope()
	p.ctx = saved

	return &ast.Block{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Statements: stmts,
	}
}

