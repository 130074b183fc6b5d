package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"yulfmt/internal/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects [version]",
	Short: "List EVM versions, or the builtins of one version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			listVersions(cmd.OutOrStdout())
			return nil
		}
		d, err := dialect.Resolve(args[0])
		if err != nil {
			return err
		}
		return listBuiltins(cmd.OutOrStdout(), d)
	},
}

func listVersions(w io.Writer) {
	for _, name := range dialect.Versions() {
		d := dialect.MustResolve(name)
		marker := "  "
		if name == dialect.Default {
			marker = color.GreenString("* ")
		}
		fmt.Fprintf(w, "%s%-18s %d builtins\n", marker, name, len(d.Names()))
	}
}

func listBuiltins(w io.Writer, d *dialect.Dialect) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, b := range d.Builtins() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Signature(), b.Effects, b.Since)
	}
	return tw.Flush()
}
