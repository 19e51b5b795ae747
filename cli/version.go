package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/version"
)

// versionBlock renders the indented build detail lines shared by
// --version and the version subcommand.
func versionBlock(info version.Info) string {
	return fmt.Sprintf("  Commit:    %s\n  Built:     %s\n  Go:        %s\n  Platform:  %s\n",
		info.Commit, info.BuildDate, info.GoVersion, info.Platform)
}

// SetVersionTemplate wires the --version output for a root command.
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n" + versionBlock(info))
}

// NewVersionCommand creates the standard version subcommand. With
// --json it emits the full build info for tooling.
func NewVersionCommand(componentName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + componentName,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("%s %s\n%s", componentName, info.Version, versionBlock(info))
			return nil
		},
	}
}
