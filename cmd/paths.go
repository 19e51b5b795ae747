package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/pkg/paths"
)

// NewPathsCmd creates the `paths` command.
func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the directories lectern reads and writes",
		Long: `Prints where lectern looks for configuration and keeps its data,
state, cache and logs. The locations follow the XDG Base Directory
Specification; set LECTERN_HOME to root all of them under one portable
directory.

Examples:
  # List the directories
  lectern paths

  # Machine-readable output
  lectern paths --json

  # Create any that are missing
  lectern paths --create`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if create, _ := cmd.Flags().GetBool("create"); create {
				if err := paths.EnsureDirs(); err != nil {
					return err
				}
			}

			dirs := []struct {
				Key string
				Dir string
			}{
				{"config_dir", paths.ConfigDir()},
				{"data_dir", paths.DataDir()},
				{"state_dir", paths.StateDir()},
				{"cache_dir", paths.CacheDir()},
				{"logs_dir", paths.LogsDir()},
			}

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				out := make(map[string]string, len(dirs))
				for _, d := range dirs {
					out[d.Key] = d.Dir
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, d := range dirs {
				fmt.Printf("%-11s %s\n", d.Key, d.Dir)
			}
			return nil
		},
	}

	cmd.Flags().Bool("create", false, "Create the directories before printing them")

	return cmd
}
