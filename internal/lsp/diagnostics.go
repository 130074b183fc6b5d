package lsp

import (
	"strings"
	"unicode/utf16"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"yulfmt/internal/errors"
)

const diagnosticSource = "yulfmt"

// convertDiagnostics transforms formatter diagnostics into LSP diagnostics.
// Ranges are converted from 1-based byte columns to 0-based UTF-16 offsets.
func convertDiagnostics(lines lineIndex, diags []errors.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, convertDiagnostic(lines, d))
	}
	return out
}

func convertDiagnostic(lines lineIndex, d errors.Diagnostic) protocol.Diagnostic {
	var rng protocol.Range
	if d.Range.Start.Line > 0 {
		rng.Start = lines.position(d.Range.Start.Line, d.Range.Start.Column)
		if d.Range.End.Line > 0 {
			rng.End = lines.position(d.Range.End.Line, d.Range.End.Column)
		}
		if !after(rng.End, rng.Start) {
			rng.End = rng.Start
			rng.End.Character++
		}
	}

	severity := protocol.DiagnosticSeverityError
	if d.Level == errors.Warning {
		severity = protocol.DiagnosticSeverityWarning
	}

	message := d.Message
	for _, s := range d.Suggestions {
		message += "\n" + s.Message
	}
	if d.HelpText != "" {
		message += "\nhelp: " + d.HelpText
	}

	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: d.Code},
		Source:   ptrString(diagnosticSource),
		Message:  message,
	}
}

func after(a, b protocol.Position) bool {
	return a.Line > b.Line || (a.Line == b.Line && a.Character > b.Character)
}

// lineIndex maps scanner positions to LSP positions.
type lineIndex []string

func newLineIndex(text string) lineIndex {
	return strings.Split(text, "\n")
}

// position converts a 1-based line and 1-based byte column to an LSP position.
// Out of range values are clamped to the document.
func (l lineIndex) position(line, column int) protocol.Position {
	if line < 1 {
		return protocol.Position{}
	}
	if line > len(l) {
		return l.end()
	}
	text := l[line-1]
	off := min(max(column-1, 0), len(text))
	return protocol.Position{
		Line:      mustUInteger(line - 1),
		Character: mustUInteger(utf16Len(text[:off])),
	}
}

// byteColumn converts an LSP position back to a 1-based line and byte column.
func (l lineIndex) byteColumn(p protocol.Position) (line, column int) {
	line = int(p.Line) + 1
	if line > len(l) {
		return line, 1
	}
	units := 0
	for i, r := range l[line-1] {
		if units >= int(p.Character) {
			return line, i + 1
		}
		units += utf16RuneLen(r)
	}
	return line, len(l[line-1]) + 1
}

// end is the position just past the last character of the document.
func (l lineIndex) end() protocol.Position {
	last := len(l) - 1
	return protocol.Position{
		Line:      mustUInteger(last),
		Character: mustUInteger(utf16Len(l[last])),
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

func utf16RuneLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func toUInteger(n int) (protocol.UInteger, bool) {
	v, err := safecast.Conv[protocol.UInteger](n)
	return v, err == nil
}

func mustUInteger(n int) protocol.UInteger {
	v, _ := toUInteger(n)
	return v
}

func ptrString(s string) *string {
	return &s
}
