// Package repl is an interactive formatter: type Yul, get it back canonical.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"yulfmt/internal/dialect"
	yerrors "yulfmt/internal/errors"
	"yulfmt/internal/format"
	"yulfmt/internal/parser"
)

const (
	historyFile = ".yulfmt_history"
	promptMain  = "yul> "
	promptCont  = "...  "
	sourceName  = "<repl>"
)

const helpText = `commands:
  :dialect           show the active EVM version
  :dialect <version> switch to another EVM version
  :help              show this help
  :quit              exit
`

// Session holds the state that survives between inputs.
type Session struct {
	dialect *dialect.Dialect
	opts    format.Options
	out     io.Writer
	errOut  io.Writer
}

// NewSession creates a session formatting under d. Output goes to out,
// diagnostics to errOut.
func NewSession(d *dialect.Dialect, opts format.Options, out, errOut io.Writer) *Session {
	opts.TopLevel = true
	return &Session{dialect: d, opts: opts, out: out, errOut: errOut}
}

// Dialect returns the active dialect.
func (s *Session) Dialect() *dialect.Dialect {
	return s.dialect
}

// Eval handles one complete input. It returns false when the session should end.
func (s *Session) Eval(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.command(strings.Fields(trimmed))
	}

	res := format.Format(input, sourceName, s.dialect, s.opts)
	if len(res.Diagnostics) > 0 {
		fmt.Fprint(s.errOut, yerrors.NewFormatter(sourceName, input).FormatTruncated(res.Diagnostics, res.Dropped))
	}
	if res.OK {
		fmt.Fprint(s.out, res.Text)
	}
	return true
}

func (s *Session) command(fields []string) bool {
	switch fields[0] {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":dialect":
		if len(fields) == 1 {
			fmt.Fprintln(s.out, s.dialect.Name())
			return true
		}
		d, err := dialect.Resolve(fields[1])
		if err != nil {
			diag := yerrors.UnknownEVMVersion(fields[1], dialect.Versions())
			fmt.Fprint(s.errOut, yerrors.NewFormatter(sourceName, "").Format(diag))
			return true
		}
		s.dialect = d
		fmt.Fprintf(s.out, "using %s\n", color.CyanString(d.Name()))
	default:
		fmt.Fprintf(s.errOut, "unknown command %s. Type :help for a list.\n", fields[0])
	}
	return true
}

// Depth returns how many braces are left open in src. Braces inside
// strings and comments do not count.
func Depth(src string) int {
	depth := 0
	for _, tok := range parser.NewScanner(src, sourceName).ScanTokens() {
		switch tok.Type {
		case parser.LEFT_BRACE:
			depth++
		case parser.RIGHT_BRACE:
			depth--
		}
	}
	return depth
}

// complete offers keywords, builtins and commands matching the last word of line.
func (s *Session) complete(line string) []string {
	start := strings.LastIndexAny(line, " \t(,") + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}

	var candidates []string
	if strings.HasPrefix(word, ":") && start == 0 {
		candidates = []string{":dialect", ":help", ":quit"}
	} else {
		for kw := range parser.KEYWORDS {
			candidates = append(candidates, kw)
		}
		candidates = append(candidates, s.dialect.Names()...)
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			out = append(out, prefix+c)
		}
	}
	sort.Strings(out)
	return out
}

// Start runs the interactive loop until EOF or :quit.
func Start(s *Session) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintf(s.out, "yulfmt REPL (%s)\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", s.dialect.Name())
	for {
		code, ok := read(ln)
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if !s.Eval(code) {
			return nil
		}
	}
}

// read collects lines until every opened brace is closed. Ctrl+C drops the
// pending input and returns an empty string.
func read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if Depth(b.String()) <= 0 {
			return b.String(), true
		}
	}
}
