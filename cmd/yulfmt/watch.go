package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"yulfmt/internal/driver"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] path...",
	Short: "Reformat Yul files whenever they are saved",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	addFormatFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}
	opts.Write = true
	quiet := isQuiet(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		fmt.Fprintf(os.Stderr, "watching %d paths with %s, Ctrl+C to stop\n", len(args), opts.Version)
	}
	return driver.Watch(ctx, args, opts, func(res driver.Result) {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "watch: %s: %v\n", res.Path, res.Err)
			return
		}
		printDiagnostics(res, quiet)
		if res.Changed && res.Formatted != nil && !quiet {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.GreenString("reformatted"), res.Path)
		}
	})
}
