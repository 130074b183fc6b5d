// Package format ties scanning, parsing and printing into one formatting run.
package format

import (
	"yulfmt/internal/ast"
	"yulfmt/internal/dialect"
	"yulfmt/internal/errors"
	"yulfmt/internal/parser"
)

// Options controls a formatting run.
type Options struct {
	TopLevel       bool // accept a bare statement list as the outermost block
	Indent         int  // spaces per nesting level
	MaxDiagnostics int
	Verify         bool // re-check the printed text before returning it
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TopLevel:       true,
		Indent:         ast.DefaultIndent,
		MaxDiagnostics: errors.DefaultMaxDiagnostics,
	}
}

// Result is the outcome of one run. Text is empty unless OK.
type Result struct {
	Text        string
	OK          bool
	Diagnostics []errors.Diagnostic
	Dropped     int // diagnostics past MaxDiagnostics
	AST         *ast.Block
}

// Format parses source under d and prints it canonically. Printing is
// all-or-nothing: any error diagnostic leaves Text empty.
func Format(source, sourceName string, d *dialect.Dialect, opts Options) Result {
	reporter := errors.NewReporter(opts.MaxDiagnostics)
	block := parser.ParseSource(sourceName, source, d, reporter, opts.TopLevel)

	if reporter.HasErrors() {
		return Result{Diagnostics: reporter.All(), Dropped: reporter.Dropped(), AST: block}
	}

	text := ast.PrintWith(block, ast.PrintOptions{Indent: opts.Indent})
	if opts.Verify {
		verify(text, sourceName, d, opts, block, reporter)
		if reporter.HasErrors() {
			return Result{Diagnostics: reporter.All(), Dropped: reporter.Dropped(), AST: block}
		}
	}

	return Result{
		Text:        text,
		OK:          true,
		Diagnostics: reporter.All(),
		Dropped:     reporter.Dropped(),
		AST:         block,
	}
}

// FormatVersion resolves the EVM version before formatting. An unknown
// version is reported without looking at the source.
func FormatVersion(source, sourceName, version string, opts Options) Result {
	d, err := dialect.Resolve(version)
	if err != nil {
		return Result{Diagnostics: []errors.Diagnostic{
			errors.UnknownEVMVersion(version, dialect.Versions()),
		}}
	}
	return Format(source, sourceName, d, opts)
}
