package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"yulfmt/internal/config"
	"yulfmt/internal/dialect"
	"yulfmt/internal/driver"
	"yulfmt/internal/errors"
	"yulfmt/internal/format"
)

var log = commonlog.GetLogger("yulfmt.cli")

const stdinName = "<stdin>"

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path|-]...",
	Short: "Format Yul source files",
	Long: `Format prints the canonical form of each input. Directories are searched
for .yul files. With no paths, or with "-", the source is read from stdin.`,
	RunE: runFmt,
}

func init() {
	addFormatFlags(fmtCmd)
	fmtCmd.Flags().Bool("check", false, "list files whose formatting differs and fail if any")
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing them")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted in parallel (default from config, then GOMAXPROCS)")
	fmtCmd.Flags().Bool("no-cache", false, "do not read or write the formatting cache")
}

// addFormatFlags registers the flags shared by every command that formats.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().String("evm-version", "", "EVM version whose builtins are accepted (default from config, then "+dialect.Default+")")
	cmd.Flags().Int("indent", 0, "spaces per indentation level (default from config, then 4)")
	cmd.Flags().Bool("verify", false, "re-parse the output and fail if it does not match the input")
}

// driverOptions merges config and flags. The EVM version is resolved here so
// an unknown name is rejected before any input is read.
func driverOptions(cmd *cobra.Command, cfg config.Config) (driver.Options, error) {
	flags := cmd.Flags()

	opts := driver.Options{
		Version: cfg.EVMVersion,
		Jobs:    cfg.Jobs,
		Format: format.Options{
			TopLevel:       true,
			Indent:         cfg.Indent,
			MaxDiagnostics: cfg.MaxDiagnostics,
			Verify:         cfg.Verify,
		},
	}

	if flags.Changed("evm-version") {
		opts.Version, _ = flags.GetString("evm-version")
	}
	if flags.Changed("indent") {
		opts.Format.Indent, _ = flags.GetInt("indent")
		if opts.Format.Indent < 1 || opts.Format.Indent > 16 {
			return opts, fmt.Errorf("--indent must be between 1 and 16, got %d", opts.Format.Indent)
		}
	}
	if flags.Changed("verify") {
		opts.Format.Verify, _ = flags.GetBool("verify")
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		opts.Jobs, _ = flags.GetInt("jobs")
	}

	if _, err := dialect.Resolve(opts.Version); err != nil {
		diag := errors.UnknownEVMVersion(opts.Version, dialect.Versions())
		fmt.Fprint(os.Stderr, errors.NewFormatter("", "").Format(diag))
		return opts, err
	}
	return opts, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}

	check, _ := cmd.Flags().GetBool("check")
	write, _ := cmd.Flags().GetBool("write")
	outputFormat, _ := cmd.Flags().GetString("format")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet := isQuiet(cmd)

	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	if check && write {
		return fmt.Errorf("fmt: --check cannot be used with --write")
	}
	opts.Check = check
	opts.Write = write

	if cfg.CacheEnabled() && !noCache {
		cache, err := driver.OpenCache(cfg.Cache.Dir)
		if err != nil {
			log.Warningf("cache disabled: %s", err)
		} else {
			opts.Cache = cache
		}
	}

	var results []driver.Result
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if write {
			return fmt.Errorf("fmt: cannot use --write with stdin")
		}
		res, err := driver.FormatReader(stdinName, os.Stdin, opts)
		if err != nil {
			return err
		}
		results = []driver.Result{res}
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
		if err != nil {
			return fmt.Errorf("fmt: %w", err)
		}
	}

	if outputFormat == "json" {
		if err := renderFmtJSON(os.Stdout, results, check); err != nil {
			return err
		}
	} else {
		renderFmtText(results, opts, quiet)
	}

	changed, failed := driver.Summarize(results)
	if failed > 0 {
		return fmt.Errorf("fmt: %d of %d inputs could not be formatted", failed, len(results))
	}
	if check && changed > 0 {
		return fmt.Errorf("fmt: %d inputs need formatting", changed)
	}
	return nil
}

func renderFmtText(results []driver.Result, opts driver.Options, quiet bool) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		printDiagnostics(res, quiet)
		if res.Formatted == nil {
			continue
		}

		switch {
		case opts.Check:
			if res.Changed && !quiet {
				fmt.Fprintln(os.Stdout, res.Path)
			}
		case opts.Write:
			if res.Changed && !quiet {
				fmt.Fprintf(os.Stderr, "%s %s\n", color.GreenString("reformatted"), res.Path)
			}
		default:
			_, _ = os.Stdout.Write(res.Formatted)
		}
	}
}

// printDiagnostics renders a result's diagnostics to stderr. Quiet hides warnings.
func printDiagnostics(res driver.Result, quiet bool) {
	diags := res.Diagnostics
	if quiet {
		diags = diags[:0:0]
		for _, d := range res.Diagnostics {
			if d.IsError() {
				diags = append(diags, d)
			}
		}
	}
	if len(diags) == 0 {
		return
	}
	fmt.Fprint(os.Stderr, errors.NewFormatter(res.Path, string(res.Source)).FormatTruncated(diags, res.Dropped))
}

func renderFmtJSON(w io.Writer, results []driver.Result, check bool) error {
	type jsonResult struct {
		Path        string                  `json:"path"`
		Changed     bool                    `json:"changed"`
		Cached      bool                    `json:"cached,omitempty"`
		Error       string                  `json:"error,omitempty"`
		CheckRun    bool                    `json:"check"`
		Diagnostics []errors.JSONDiagnostic `json:"diagnostics"`
		Dropped     int                     `json:"dropped,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:        res.Path,
			Changed:     res.Changed,
			Cached:      res.Cached,
			CheckRun:    check,
			Diagnostics: errors.ToJSON(res.Path, res.Diagnostics),
			Dropped:     res.Dropped,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
