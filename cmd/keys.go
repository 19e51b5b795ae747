package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/cli"
	"github.com/lecterntools/lectern/tui/components/table"
	"github.com/lecterntools/lectern/tui/keymap"
	"github.com/lecterntools/lectern/tui/theme"
)

// NewKeysCmd creates the `keys` command.
func NewKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the active presenter keybindings",
		Long: `Prints the keybindings the presenter would use from the current
directory's configuration: the base preset plus any overrides from
tui.keybindings. The last column is the configuration key that
overrides each action.

Examples:
  # Show the bindings as a table
  lectern keys

  # Emit the bindings for tooling
  lectern keys --json`,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		cfg, err := cli.LoadConfig(cmd, cwd)
		if err != nil {
			return err
		}

		preset := "arrows"
		if cfg.TUI != nil && cfg.TUI.Preset != "" {
			preset = cfg.TUI.Preset
		}
		info := keymap.Export(preset, keymap.NewFromConfig(cfg.TUI))

		if opts.JSONOutput {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal keymap to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printKeys(info)
		return nil
	}

	return cmd
}

// printKeys writes the keymap as one table per section.
func printKeys(info keymap.Info) {
	t := theme.DefaultTheme
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue)

	fmt.Println(t.Muted.Render("preset: " + info.Preset))

	for _, section := range info.Sections {
		rows := make([][]string, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			if !b.Enabled || b.Description == "" {
				continue
			}
			rows = append(rows, []string{
				keyStyle.Render(strings.Join(b.Keys, ", ")),
				b.Description,
				t.Muted.Render(b.ConfigKey),
			})
		}
		if len(rows) == 0 {
			continue
		}

		tbl := table.NewStyled()
		for _, row := range rows {
			tbl = tbl.Row(row...)
		}

		fmt.Println()
		fmt.Println(t.Accent.Render(section.Name))
		fmt.Println(tbl.String())
	}
}
