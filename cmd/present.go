package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lecterntools/lectern/cli"
	"github.com/lecterntools/lectern/config"
	"github.com/lecterntools/lectern/document"
	"github.com/lecterntools/lectern/follow"
	"github.com/lecterntools/lectern/nav"
	"github.com/lecterntools/lectern/pkg/profiling"
	"github.com/lecterntools/lectern/position"
	"github.com/lecterntools/lectern/tui"
	"github.com/lecterntools/lectern/tui/keymap"
	"github.com/lecterntools/lectern/tui/presenter"
	"github.com/lecterntools/lectern/tui/theme"
	"github.com/lecterntools/lectern/util/pathutil"
)

// NewPresentCmd creates the `present` command.
func NewPresentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present <file>",
		Short: "Present a Markdown or HTML document in the terminal",
		Long: `Opens the document in the presenter. Docs mode scrolls the whole
document; slides mode walks it one slide at a time and remembers the
slide across runs.

Examples:
  # Present a talk, resuming at the slide you left off
  lectern present talk.md

  # Start directly in slides mode with the gruvbox palette
  lectern present --slides --theme gruvbox talk.md

  # Mirror the presentation to followers on port 8417
  lectern present --listen :8417 talk.md`,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().String("theme", "", "Color theme (kanagawa, gruvbox, terminal)")
	cmd.Flags().Bool("slides", false, "Start in slides mode")
	cmd.Flags().String("listen", "", "Serve a follow page for this presentation (e.g. :8417)")
	cmd.Flags().Bool("no-watch", false, "Do not reload when the document changes on disk")
	cmd.Flags().Bool("no-position", false, "Do not persist the current slide across runs")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := cli.GetLogger(cmd)

		docPath, err := pathutil.Expand(args[0])
		if err != nil {
			return err
		}

		loadSpan := profiling.Start("document.load")
		doc, err := document.Load(docPath)
		loadSpan.Stop()
		if err != nil {
			return err
		}

		docDir := filepath.Dir(docPath)
		cfg, err := cli.LoadConfig(cmd, docDir)
		if err != nil {
			return err
		}

		opts := presenter.Options{
			Doc:   doc,
			Keys:  keymap.NewFromConfig(cfg.TUI),
			Theme: resolveTheme(cmd, cfg),
		}

		if slides, _ := cmd.Flags().GetBool("slides"); slides {
			opts.Mode = presenter.ModeSlides
		}

		if noPos, _ := cmd.Flags().GetBool("no-position"); !noPos {
			opts.Position = position.Bind(position.NewStore(docDir), docPath)
		}

		if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch && cfg.Watch.IsEnabled() {
			opts.Watch = true
			opts.WatchDebounce = cfg.Watch.Debounce()
			opts.WatchIgnore = cfg.Watch.IgnorePatterns()
		}

		m, err := presenter.New(opts)
		if err != nil {
			return err
		}

		// Follow server: --listen wins over follow.addr from the config.
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" && cfg.Follow != nil {
			addr = cfg.Follow.Addr
		}
		if addr != "" {
			srv := follow.NewServer(addr)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				if err := srv.Start(ctx); err != nil {
					logger.WithError(err).Error("Follow server stopped")
				}
			}()
			m.Nav().Notify = func(v nav.View) {
				srv.Publish(follow.FromView(v, m.Nav().Slide(), doc.Title()))
			}
			logger.WithField("addr", srv.Addr()).Info("Follow server listening")
		}

		tui.Setup()
		return m.Run()
	}

	cli.SetStyledHelpWithExtras(cmd, presentHelpExtras)

	return cmd
}

// presentHelpExtras appends an in-presentation key section to the help
// output.
func presentHelpExtras(t *theme.Theme) {
	section := lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue)

	bindings := keymap.DefaultArrows().ShortHelp()
	maxLen := 0
	for _, b := range bindings {
		if l := len(b.Help().Key); l > maxLen {
			maxLen = l
		}
	}

	fmt.Println("\n " + section.Render("KEYS"))
	for _, b := range bindings {
		h := b.Help()
		fmt.Printf(" %s%s  %s\n", keyStyle.Render(h.Key),
			strings.Repeat(" ", maxLen-len(h.Key)), h.Desc)
	}
	fmt.Println(" " + t.Muted.Render("Run 'lectern keys' for the full list."))
}

// resolveTheme applies the palette precedence: --theme flag, then
// LECTERN_THEME, then the config file, then the default palette.
func resolveTheme(cmd *cobra.Command, cfg *config.Config) *theme.Theme {
	name, _ := cmd.Flags().GetString("theme")
	if name == "" {
		name = os.Getenv("LECTERN_THEME")
	}
	if name == "" && cfg != nil {
		name = cfg.Theme
	}
	if name == "" {
		return theme.DefaultTheme
	}
	return theme.NewThemeWithName(name)
}
