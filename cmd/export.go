package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/pkg/profiling"
	"github.com/lecterntools/lectern/tui/theme"
	"github.com/lecterntools/lectern/util/pathutil"
	"github.com/lecterntools/lectern/util/sanitize"
)

// NewExportCmd creates the `export` command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a document as a standalone HTML slide deck",
		Long: `Segments the document and writes the deck as a single HTML file,
one section per slide. Each slide is addressable as #slide-<number>.

Examples:
  # Export next to the source, named after the deck title
  lectern export talk.md

  # Export to an explicit path
  lectern export talk.md -o public/talk.html`,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (defaults to the deck title)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		docPath, err := pathutil.Expand(args[0])
		if err != nil {
			return err
		}

		doc, err := document.Load(docPath)
		if err != nil {
			return err
		}
		d := deck.Build(doc)

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			name := sanitize.ForFilename(d.Title)
			if name == "" {
				name = "deck"
			}
			outPath = name + ".html"
		}

		exportSpan := profiling.Start("deck.export")
		err = deck.ExportHTML(d, outPath)
		exportSpan.Stop()
		if err != nil {
			return err
		}

		fmt.Println(theme.RenderStatus("success",
			fmt.Sprintf("Exported %d slides to %s", d.Len(), outPath)))
		return nil
	}

	return cmd
}
