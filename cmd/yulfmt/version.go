package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"yulfmt/internal/version"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show yulfmt build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch versionFormat {
		case "pretty":
			fmt.Fprintf(cmd.OutOrStdout(), "yulfmt %s\n", version.String())
			return nil
		case "json":
			payload := struct {
				Tool      string `json:"tool"`
				Version   string `json:"version"`
				GitCommit string `json:"git_commit,omitempty"`
				BuildDate string `json:"build_date,omitempty"`
			}{"yulfmt", version.Version, version.GitCommit, version.BuildDate}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(payload)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}
