package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"yulfmt/internal/errors"
	"yulfmt/internal/parser"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.yul",
	Short: "Print the tokens of a Yul source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	scanner := parser.NewScanner(string(source), path)
	tokens := scanner.ScanTokens()

	if lexErrors := scanner.Errors(); len(lexErrors) > 0 {
		fmt.Fprint(os.Stderr, errors.NewFormatter(path, string(source)).FormatAll(lexErrors))
	}

	switch format {
	case "pretty":
		err = formatTokensPretty(cmd.OutOrStdout(), tokens)
	case "json":
		err = formatTokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if n := len(scanner.Errors()); n > 0 {
		return fmt.Errorf("tokenize: %d lexical errors", n)
	}
	return nil
}

func formatTokensPretty(w io.Writer, tokens []parser.Token) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%d:%d\t%s\t%s\n", tok.Position.Line, tok.Position.Column, tok.Type, tok.Lexeme)
	}
	return tw.Flush()
}

func formatTokensJSON(w io.Writer, tokens []parser.Token) error {
	type jsonToken struct {
		Kind   string `json:"kind"`
		Text   string `json:"text"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	payload := make([]jsonToken, 0, len(tokens))
	for _, tok := range tokens {
		payload = append(payload, jsonToken{
			Kind:   tok.Type.String(),
			Text:   tok.Lexeme,
			Line:   tok.Position.Line,
			Column: tok.Position.Column,
			Offset: tok.Position.Offset,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
