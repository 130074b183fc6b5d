package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Formatter renders diagnostics against the source they were reported for
type Formatter struct {
	filename string
	lines    []string
}

// NewFormatter creates a formatter for one source file
func NewFormatter(filename, source string) *Formatter {
	return &Formatter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatAll renders every diagnostic followed by a summary line.
func (f *Formatter) FormatAll(diags []Diagnostic) string {
	return f.FormatTruncated(diags, 0)
}

// FormatTruncated is FormatAll for a list cut short by the diagnostic limit.
// The summary also names how many were dropped.
func (f *Formatter) FormatTruncated(diags []Diagnostic, dropped int) string {
	var result strings.Builder
	errs, warns := 0, 0
	for _, d := range diags {
		result.WriteString(f.Format(d))
		if d.IsError() {
			errs++
		} else {
			warns++
		}
	}
	if errs > 0 || warns > 0 {
		result.WriteString(summary(errs, warns))
	}
	if dropped > 0 {
		result.WriteString(NotShown(dropped))
	}
	return result.String()
}

// Format renders a diagnostic with a source excerpt and caret marker
func (f *Formatter) Format(d Diagnostic) string {
	var result strings.Builder

	levelColor := levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(d.Level)), d.Message))
	}

	pos := d.Range.Start
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line+1))
	indent := strings.Repeat(" ", lineNumberWidth)

	filename := pos.Filename
	if filename == "" {
		filename = f.filename
	}
	if pos.Line == 0 {
		// Diagnostics without a location, such as an unknown EVM version.
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), filename))
		f.writeTrailer(&result, d, indent)
		result.WriteString("\n")
		return result.String()
	}

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), filename, pos.Line, pos.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if pos.Line > 1 && pos.Line-1 <= len(f.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, pos.Line-1)),
			dim("│"),
			f.lines[pos.Line-2]))
	}

	if pos.Line <= len(f.lines) {
		lineContent := f.lines[pos.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, pos.Line)),
			dim("│"),
			lineContent))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), createMarker(lineContent, pos.Column, d.Length(), d.Level)))
	}

	f.writeTrailer(&result, d, indent)
	result.WriteString("\n")
	return result.String()
}

func (f *Formatter) writeTrailer(result *strings.Builder, d Diagnostic, indent string) {
	dim := color.New(color.Faint).SprintFunc()

	if len(d.Suggestions) > 0 {
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		for i, suggestion := range d.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}
			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(suggestion.Replacement)))
			}
		}
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), d.HelpText))
	}
}

func levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker aligns the carets under a byte column. Tabs in the prefix are
// kept so the marker lines up with however the terminal expands them.
func createMarker(line string, column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	start := min(max(0, column-1), len(line))
	var pad strings.Builder
	for _, r := range line[:start] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	end := min(start+length, len(line))
	width := runewidth.StringWidth(line[start:end])
	if width < 1 {
		width = 1
	}

	return pad.String() + levelColor(level)(strings.Repeat("^", width))
}

func summary(errs, warns int) string {
	parts := make([]string, 0, 2)
	if errs > 0 {
		parts = append(parts, plural(errs, "error"))
	}
	if warns > 0 {
		parts = append(parts, plural(warns, "warning"))
	}
	return fmt.Sprintf("%s generated\n", strings.Join(parts, " and "))
}

// NotShown is the summary line for diagnostics past the limit.
func NotShown(dropped int) string {
	return fmt.Sprintf("%d more %s not shown\n", dropped, pluralWord(dropped, "diagnostic"))
}

func pluralWord(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
