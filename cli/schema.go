package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSchemaCommand creates a command that prints an embedded JSON
// Schema document. Editors and validation tooling consume it: point a
// YAML language server at the output for completion and inline checks.
func NewSchemaCommand(schemaJSON []byte) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for lectern configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(string(bytes.TrimSpace(schemaJSON)))
			return nil
		},
	}
}
