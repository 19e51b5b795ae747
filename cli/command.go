// Package cli carries the pieces every lectern command shares: the
// standard flag set, styled help, the error handler and the version
// template.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/config"
	"github.com/lecterntools/lectern/logging"
)

// CommandOptions holds the flag values shared by all lectern commands.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command with the standard lectern flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")
	cmd.PersistentFlags().Bool("json", false, "JSON output")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to lectern.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns a logger configured from command flags.
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	opts := GetOptions(cmd)

	logger := logging.NewLogger("cli").Logger
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if opts.JSONOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// GetOptions extracts the shared flag values from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	var opts CommandOptions
	opts.ConfigFile, _ = cmd.Flags().GetString("config")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")
	opts.JSONOutput, _ = cmd.Flags().GetBool("json")
	return opts
}

// LoadConfig resolves the effective configuration for a command: the
// --config file when given, otherwise the hierarchical lookup starting
// at startDir. startDir is usually the presented document's directory,
// so a deck picks up the lectern.yml of its own project regardless of
// where the command ran.
func LoadConfig(cmd *cobra.Command, startDir string) (*config.Config, error) {
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		return config.Load(configFile)
	}

	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		startDir = cwd
	}
	return config.LoadFrom(startDir)
}
