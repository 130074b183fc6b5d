package parser

import (
	"yulfmt/internal/ast"
	"yulfmt/internal/dialect"
	"yulfmt/internal/errors"
)

// Parse reads one program from scanner. Diagnostics go to reporter; the
// returned block is best-effort when any of them is an error.
func Parse(scanner *Scanner, d *dialect.Dialect, reporter *errors.Reporter, topLevel bool) *ast.Block {
	return NewParser(scanner, d, reporter).ParseProgram(topLevel)
}

func ParseSource(filename, source string, d *dialect.Dialect, reporter *errors.Reporter, topLevel bool) *ast.Block {
	return Parse(NewScanner(source, filename), d, reporter, topLevel)
}
