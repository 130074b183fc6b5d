package main

import (
	"os"

	"github.com/spf13/cobra"

	"yulfmt/internal/dialect"
	"yulfmt/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Format Yul interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts, err := driverOptions(cmd, cfg)
		if err != nil {
			return err
		}
		session := repl.NewSession(dialect.MustResolve(opts.Version), opts.Format, os.Stdout, os.Stderr)
		return repl.Start(session)
	},
}

func init() {
	addFormatFlags(replCmd)
}
