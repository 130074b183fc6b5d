package format

import (
	"fmt"

	"yulfmt/grammar"
	"yulfmt/internal/ast"
	"yulfmt/internal/dialect"
	"yulfmt/internal/errors"
	"yulfmt/internal/parser"
)

// verify re-reads the printed text three ways: with our own parser, against
// the reference grammar, and by printing it a second time.
func verify(text, sourceName string, d *dialect.Dialect, opts Options, original *ast.Block, reporter *errors.Reporter) {
	fail := func(format string, args ...any) {
		reporter.Report(errors.New(errors.VerifyError, fmt.Sprintf(format, args...), ast.RangeOf(original)).
			WithNote("this is a formatter bug; the input was left unchanged").
			Build())
	}

	check := errors.NewReporter(opts.MaxDiagnostics)
	reparsed := parser.ParseSource(sourceName, text, d, check, true)
	if check.HasErrors() {
		first := check.All()[0]
		fail("formatted output does not parse: %s at %d:%d", first.Message, first.Range.Start.Line, first.Range.Start.Column)
		return
	}
	if !ast.Equal(original, reparsed) {
		fail("formatted output parses to a different program")
		return
	}

	if _, err := grammar.Parse(sourceName, text); err != nil {
		if line, col, ok := grammar.ErrorPosition(err); ok {
			fail("formatted output rejected by the reference grammar at %d:%d: %v", line, col, err)
		} else {
			fail("formatted output rejected by the reference grammar: %v", err)
		}
		return
	}

	if again := ast.PrintWith(reparsed, ast.PrintOptions{Indent: opts.Indent}); again != text {
		fail("formatting is not idempotent")
	}
}
