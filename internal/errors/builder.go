package errors

import (
	"fmt"
	"sort"
	"strings"

	"yulfmt/internal/ast"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	d Diagnostic
}

// New creates a builder for an error-level diagnostic
func New(kind Kind, message string, rng ast.SourceRange) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: Diagnostic{
			Level:   Error,
			Kind:    kind,
			Code:    kind.Code(),
			Message: message,
			Range:   rng,
		},
	}
}

// AsWarning lowers the diagnostic to warning level under the given code
func (b *DiagnosticBuilder) AsWarning(code string) *DiagnosticBuilder {
	b.d.Level = Warning
	b.d.Code = code
	return b
}

// WithCode overrides the kind's default code
func (b *DiagnosticBuilder) WithCode(code string) *DiagnosticBuilder {
	b.d.Code = code
	return b
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp sets the help text
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.d.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.d
}

// Common constructors

// UnknownEVMVersion reports a version string outside the catalog.
func UnknownEVMVersion(name string, known []string) Diagnostic {
	b := New(UnknownVersion, fmt.Sprintf("unknown EVM version '%s'", name), ast.SourceRange{})
	if similar := SimilarNames(name, known); len(similar) > 0 {
		b.WithSuggestion(didYouMean(similar))
	}
	return b.WithNote("supported versions: " + strings.Join(known, ", ")).Build()
}

// UndefinedFunction reports a call that resolves to neither a builtin nor a declared function.
func UndefinedFunction(name string, rng ast.SourceRange, candidates []string) Diagnostic {
	b := New(UndeclaredIdentifier, fmt.Sprintf("function '%s' not found", name), rng)
	if similar := SimilarNames(name, candidates); len(similar) > 0 {
		b.WithSuggestion(didYouMean(similar))
	} else {
		b.WithHelp("declare the function in this block or an enclosing one")
	}
	return b.Build()
}

// WrongArgumentCount reports a call with the wrong number of arguments.
func WrongArgumentCount(name string, expected, found int, rng ast.SourceRange) Diagnostic {
	return New(ArityMismatch,
		fmt.Sprintf("function '%s' expects %s, but %d were provided", name, plural(expected, "argument"), found), rng).
		Build()
}

// WrongReturnCount reports a call whose result count does not fit its context.
func WrongReturnCount(name string, expected, found int, rng ast.SourceRange) Diagnostic {
	b := New(ArityMismatch,
		fmt.Sprintf("function '%s' returns %s, but %d %s expected", name, plural(found, "value"), expected, wasWere(expected)), rng)
	if expected == 0 && found > 0 {
		b.WithHelp("use pop() to discard a single return value")
	}
	return b.Build()
}

// Syntax reports a grammar violation.
func Syntax(message string, rng ast.SourceRange) Diagnostic {
	return New(SyntaxError, message, rng).Build()
}

// DefaultOnlySwitch warns about a switch whose only case is default.
func DefaultOnlySwitch(rng ast.SourceRange) Diagnostic {
	return New(SyntaxError, "switch statement has only a default case", rng).
		AsWarning(WarningDefaultOnlySwitch).
		WithHelp("replace the switch with the body of the default case").
		Build()
}

func wasWere(n int) string {
	if n == 1 {
		return "was"
	}
	return "were"
}

func didYouMean(similar []string) string {
	if len(similar) == 1 {
		return fmt.Sprintf("did you mean '%s'?", similar[0])
	}
	return fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '"))
}

// SimilarNames returns candidates within edit distance 2 of target, closest first.
func SimilarNames(target string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}
	var matches []scored
	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if dist := levenshteinDistance(target, candidate); dist <= 2 && len(candidate) > 2 {
			matches = append(matches, scored{candidate, dist})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	const limit = 3
	var out []string
	for i := 0; i < len(matches) && i < limit; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}
