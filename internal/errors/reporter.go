package errors

import (
	"yulfmt/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// DefaultMaxDiagnostics bounds a Reporter created with a non-positive limit.
const DefaultMaxDiagnostics = 256

// Diagnostic is one issue found during a formatting run
type Diagnostic struct {
	Level       ErrorLevel
	Kind        Kind
	Code        string          // Error code like E0101
	Message     string          // Primary message
	Range       ast.SourceRange // Location in source
	Suggestions []Suggestion    // Suggested fixes
	Notes       []string        // Additional context notes
	HelpText    string          // Help text for the diagnostic
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

// IsError reports whether the diagnostic blocks printing.
func (d Diagnostic) IsError() bool {
	return d.Level == Error
}

// Length returns the width of the highlighted region on its first line.
func (d Diagnostic) Length() int {
	if d.Range.End.Line != d.Range.Start.Line {
		return 1
	}
	return max(1, d.Range.End.Column-d.Range.Start.Column)
}

// Reporter accumulates diagnostics for a single formatting run.
// It is not safe for concurrent use; each run owns its own Reporter.
type Reporter struct {
	items     []Diagnostic
	max       int
	hasErrors bool
	dropped   int
}

// NewReporter creates an empty reporter that keeps at most max diagnostics.
func NewReporter(max int) *Reporter {
	if max <= 0 {
		max = DefaultMaxDiagnostics
	}
	return &Reporter{max: max}
}

// Report appends a diagnostic. It returns false when the limit was reached;
// a dropped error still counts for HasErrors.
func (r *Reporter) Report(d Diagnostic) bool {
	if d.IsError() {
		r.hasErrors = true
	}
	if len(r.items) >= r.max {
		r.dropped++
		return false
	}
	r.items = append(r.items, d)
	return true
}

// HasErrors returns true if any reported diagnostic has error level
func (r *Reporter) HasErrors() bool {
	return r.hasErrors
}

// HasWarnings returns true if any kept diagnostic has warning level
func (r *Reporter) HasWarnings() bool {
	for _, d := range r.items {
		if d.Level == Warning {
			return true
		}
	}
	return false
}

// All returns the diagnostics in insertion order.
func (r *Reporter) All() []Diagnostic {
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of kept diagnostics.
func (r *Reporter) Len() int {
	return len(r.items)
}

// Dropped returns how many diagnostics exceeded the limit.
func (r *Reporter) Dropped() int {
	return r.dropped
}

// Count returns the number of kept diagnostics of the given kind.
func (r *Reporter) Count(kind Kind) int {
	n := 0
	for _, d := range r.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
