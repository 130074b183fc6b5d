// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"yulfmt/internal/config"
	"yulfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "yulfmt",
	Short: "Canonical formatter for Yul",
	Long: `yulfmt parses Yul sources against an EVM dialect and prints them in
canonical form. Files with errors are reported and left untouched.`,
	PersistentPreRunE: setup,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(dialectsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to a "+config.FileName+" file (default: search upwards)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (default from config)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "log more (repeat for debug output)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color %q (must be auto, on or off)", colorFlag)
	}

	verbose, err := cmd.Root().PersistentFlags().GetCount("verbose")
	if err != nil {
		return err
	}
	commonlog.Configure(verbose, nil)
	return nil
}

// loadConfig reads --config or the nearest config file, then applies the
// persistent flags that override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return config.Config{}, wdErr
		}
		cfg, err = config.Load(wd)
	}
	if err != nil {
		return config.Config{}, err
	}

	if f := cmd.Root().PersistentFlags().Lookup("max-diagnostics"); f.Changed {
		n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		if err != nil {
			return config.Config{}, err
		}
		cfg.MaxDiagnostics = n
	}
	return cfg, nil
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
