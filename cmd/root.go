// Package cmd wires the lectern command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/cli"
	"github.com/lecterntools/lectern/pkg/profiling"
	"github.com/lecterntools/lectern/version"
)

// NewRootCmd assembles the lectern command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"lectern",
		"Present Markdown and HTML documents in the terminal",
	)
	rootCmd.Long = `lectern turns a Markdown or HTML document into a slide deck and
presents it in the terminal. Slides break at headings and horizontal
rules; the current slide persists across runs so a presentation can
resume where it left off.`

	// Errors go through the cli error handler in main, not cobra's
	// default printer.
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	profiler := profiling.NewCobraProfiler()
	profiler.AddFlags(rootCmd)
	rootCmd.PersistentPreRunE = profiler.PreRun
	rootCmd.PersistentPostRun = profiler.PostRun

	rootCmd.AddCommand(NewPresentCmd())
	rootCmd.AddCommand(NewSlidesCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewKeysCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("lectern"))

	cli.ApplyStyledHelpRecursive(rootCmd)

	return rootCmd
}
