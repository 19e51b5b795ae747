package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lecterntools/lectern/cli"
	"github.com/lecterntools/lectern/config"
	"github.com/lecterntools/lectern/tui/theme"
)

// NewConfigCmd creates the `config` command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective lectern configuration",
		Long: `Prints the configuration lectern would use from the current
directory: the global config overlaid with the project lectern.yml
found by walking up from here.

Examples:
  # Show the merged configuration as YAML
  lectern config

  # Check the project config against the schema
  lectern config --validate

  # Emit the schema for editor integration
  lectern config schema`,
	}

	cmd.Flags().Bool("validate", false, "Validate the configuration and report violations")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		cfg, err := cli.LoadConfig(cmd, cwd)
		if err != nil {
			return err
		}

		if validate, _ := cmd.Flags().GetBool("validate"); validate {
			return validateConfig(cfg)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if path, err := config.FindConfigFile(cwd); err == nil {
			fmt.Printf("# Source: %s\n", path)
		} else {
			fmt.Println("# Source: built-in defaults")
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	cmd.AddCommand(cli.NewSchemaCommand(config.EmbeddedSchema()))

	return cmd
}

// validateConfig runs both validation layers: the JSON Schema for
// shape, then Validate for the constraints the schema cannot express.
func validateConfig(cfg *config.Config) error {
	validator, err := config.NewSchemaValidator()
	if err != nil {
		return err
	}
	if err := validator.Validate(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println(theme.RenderStatus("success", "Configuration is valid"))
	return nil
}
