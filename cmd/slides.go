package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/deck"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/pkg/profiling"
	"github.com/lecterntools/lectern/tui/theme"
	"github.com/lecterntools/lectern/util/pathutil"
)

// NewSlidesCmd creates the `slides` command.
func NewSlidesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides <file>",
		Short: "Print the slide outline for a document",
		Long: `Segments the document into slides without presenting it and prints
one line per slide. Useful for checking where the slide boundaries
fall before a talk.

Examples:
  # Show the outline
  lectern slides talk.md

  # Emit the full deck structure for tooling
  lectern slides --json talk.md`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		docPath, err := pathutil.Expand(args[0])
		if err != nil {
			return err
		}

		doc, err := document.Load(docPath)
		if err != nil {
			return err
		}

		buildSpan := profiling.Start("deck.build")
		d := deck.Build(doc)
		buildSpan.Stop()

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal deck to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printOutline(d)
		return nil
	}

	return cmd
}

// printOutline writes the human-readable deck outline to stdout.
func printOutline(d *deck.Deck) {
	t := theme.DefaultTheme

	fmt.Println(theme.RenderTitle(d.Title))
	fmt.Println(t.Muted.Render(fmt.Sprintf("%d slides", d.Len())))
	fmt.Println()

	for _, s := range d.Slides {
		title := s.Title()
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  %s %s %s\n",
			t.Counter.Render(fmt.Sprintf("%3d.", s.Index+1)),
			t.Normal.Render(title),
			t.Muted.Render(describeNodes(s.Nodes)))
	}
}

// describeNodes summarizes a slide's content, e.g. "4 blocks, 1 code".
func describeNodes(nodes []document.Node) string {
	code := 0
	for _, n := range nodes {
		if n.Code {
			code++
		}
	}

	blocks := "blocks"
	if len(nodes) == 1 {
		blocks = "block"
	}
	if code > 0 {
		return fmt.Sprintf("(%d %s, %d code)", len(nodes), blocks, code)
	}
	return fmt.Sprintf("(%d %s)", len(nodes), blocks)
}
