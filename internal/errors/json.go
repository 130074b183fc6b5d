package errors

import (
	"encoding/json"
	"io"
)

// JSONDiagnostic is the machine-readable form of a Diagnostic.
type JSONDiagnostic struct {
	Severity  string `json:"severity"`
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Message   string `json:"message"`
}

// ToJSON converts diagnostics for encoding.
// file is used for diagnostics whose position carries no filename.
func ToJSON(file string, diags []Diagnostic) []JSONDiagnostic {
	payload := make([]JSONDiagnostic, 0, len(diags))
	for _, d := range diags {
		name := d.Range.Start.Filename
		if name == "" {
			name = file
		}
		payload = append(payload, JSONDiagnostic{
			Severity:  string(d.Level),
			Kind:      d.Kind.String(),
			Code:      d.Code,
			File:      name,
			Line:      d.Range.Start.Line,
			Column:    d.Range.Start.Column,
			EndLine:   d.Range.End.Line,
			EndColumn: d.Range.End.Column,
			Message:   d.Message,
		})
	}
	return payload
}

// RenderJSON writes diagnostics as an indented JSON array.
func RenderJSON(w io.Writer, file string, diags []Diagnostic) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ToJSON(file, diags))
}
