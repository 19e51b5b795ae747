package main

import (
	"os"

	"github.com/lecterntools/lectern/cli"
	"github.com/lecterntools/lectern/cmd"
	"github.com/lecterntools/lectern/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if errors.GetCode(err) == "" {
			// Uncoded errors are usage mistakes (unknown command,
			// bad flag); point at the help instead of a hint.
			cli.PrintError(rootCmd, err)
		} else {
			verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
			cli.NewErrorHandler(verbose).Handle(err)
		}
		os.Exit(1)
	}
}
