package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/lecterntools/lectern/tui/theme"
)

// HelpExtrasFunc renders an additional help section after the built-in
// ones. It receives the theme for consistent styling.
type HelpExtrasFunc func(t *theme.Theme)

var (
	helpExtras   = make(map[*cobra.Command]HelpExtrasFunc)
	helpExtrasMu sync.RWMutex
)

// Help text wraps between these bounds no matter how wide the terminal
// is; paragraphs read badly past 60 columns.
const (
	helpMaxWidth = 60
	helpMinWidth = 40
)

// SetStyledHelp applies lectern's styled help to a command.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(renderHelp)
}

// ApplyStyledHelpRecursive applies styled help to a whole command tree
// and silences cobra's default usage dump on errors. Call after all
// subcommands have been added.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	cmd.SetHelpFunc(renderHelp)
	cmd.SetUsageFunc(func(*cobra.Command) error { return nil })
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

// SetStyledHelpWithExtras registers styled help plus a custom trailing
// section. The present command uses this to append its key bindings.
func SetStyledHelpWithExtras(cmd *cobra.Command, extras HelpExtrasFunc) {
	helpExtrasMu.Lock()
	helpExtras[cmd] = extras
	helpExtrasMu.Unlock()
	cmd.SetHelpFunc(renderHelp)
}

// PrintError prints a styled error message to stderr with a pointer at
// the command's help.
func PrintError(cmd *cobra.Command, err error) {
	t := theme.DefaultTheme
	label := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Red).Render("Error:")
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", label, err)
	hint := fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())
	fmt.Fprintln(cmd.ErrOrStderr(), t.Muted.Render(hint))
}

// helpWriter renders one command's help, one section at a time.
type helpWriter struct {
	out   io.Writer
	theme *theme.Theme
	width int

	section lipgloss.Style // section labels (USAGE, COMMANDS, ...)
	command lipgloss.Style // command and subcommand names
	flag    lipgloss.Style // flag names
}

func renderHelp(cmd *cobra.Command, _ []string) {
	t := theme.DefaultTheme
	h := &helpWriter{
		out:     cmd.OutOrStdout(),
		theme:   t,
		width:   helpWidth() - 2,
		section: lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange),
		command: lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue),
		flag:    lipgloss.NewStyle().Foreground(t.Colors.Violet),
	}

	description, examples := splitExamples(cmd.Long)
	if cmd.Example != "" {
		examples = cmd.Example
	}

	h.title(cmd)
	h.description(cmd, description)
	h.usage(cmd)
	h.commands(cmd)
	h.flags(cmd)
	h.examples(cmd, examples)
	h.extras(cmd)

	if cmd.HasSubCommands() {
		fmt.Fprintf(h.out, "\n Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

// helpWidth returns the wrap width: the terminal width clamped to the
// help bounds, or the maximum when stdout is not a terminal.
func helpWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < helpMinWidth || w > helpMaxWidth {
		return helpMaxWidth
	}
	return w
}

// splitExamples cuts an "Examples:" block off a Long description so it
// can render as its own section.
func splitExamples(long string) (description, examples string) {
	for _, marker := range []string{"\nExamples:\n", "\nExample:\n", "\nEXAMPLES:\n", "\nEXAMPLE:\n"} {
		if idx := strings.Index(long, marker); idx != -1 {
			return strings.TrimSpace(long[:idx]), strings.TrimSpace(long[idx+len(marker):])
		}
	}
	return long, ""
}

// wrap greedily fills lines up to width, keeping existing breaks.
func wrap(text string, width int) []string {
	if width <= 0 {
		width = helpMaxWidth
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if len(para) <= width {
			lines = append(lines, para)
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) > width:
				lines = append(lines, line)
				line = word
			default:
				line += " " + word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (h *helpWriter) title(cmd *cobra.Command) {
	style := lipgloss.NewStyle().Bold(true).Foreground(h.theme.Colors.Orange)
	fmt.Fprintln(h.out, " "+style.Render(strings.ToUpper(cmd.CommandPath())))
}

func (h *helpWriter) description(cmd *cobra.Command, description string) {
	if description == "" {
		description = cmd.Short
	}
	if cmd.Short != "" {
		italic := lipgloss.NewStyle().Italic(true)
		for _, line := range wrap(cmd.Short, h.width) {
			fmt.Fprintln(h.out, " "+italic.Render(line))
		}
	}
	if description != "" && description != cmd.Short {
		fmt.Fprintln(h.out)
		for _, line := range wrap(description, h.width) {
			fmt.Fprintln(h.out, " "+line)
		}
	}
}

func (h *helpWriter) usage(cmd *cobra.Command) {
	if !cmd.Runnable() && !cmd.HasSubCommands() {
		return
	}
	fmt.Fprintln(h.out, "\n "+h.section.Render("USAGE"))
	if cmd.Runnable() {
		fmt.Fprintf(h.out, " %s\n", cmd.UseLine())
	}
	if cmd.HasSubCommands() {
		fmt.Fprintf(h.out, " %s [command]\n", cmd.CommandPath())
	}
}

func (h *helpWriter) commands(cmd *cobra.Command) {
	var subs []*cobra.Command
	width := 0
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		subs = append(subs, sub)
		if len(sub.Name()) > width {
			width = len(sub.Name())
		}
	}
	if len(subs) == 0 {
		return
	}

	fmt.Fprintln(h.out, "\n "+h.section.Render("COMMANDS"))
	for _, sub := range subs {
		pad := strings.Repeat(" ", width-len(sub.Name()))
		fmt.Fprintf(h.out, " %s%s  %s\n", h.command.Render(sub.Name()), pad, sub.Short)
	}
}

func (h *helpWriter) flags(cmd *cobra.Command) {
	var visible []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visible = append(visible, f)
		}
	})
	if len(visible) == 0 {
		return
	}

	// Parent commands get a compact one-liner; the full table belongs
	// on the leaves.
	if cmd.HasAvailableSubCommands() {
		names := make([]string, 0, len(visible))
		for _, f := range visible {
			if f.Shorthand != "" {
				names = append(names, fmt.Sprintf("-%s/--%s", f.Shorthand, f.Name))
			} else {
				names = append(names, "--"+f.Name)
			}
		}
		fmt.Fprintln(h.out, "\n "+h.theme.Muted.Render("Flags: "+strings.Join(names, ", ")))
		return
	}

	width := 0
	for _, f := range visible {
		if n := len(flagLabel(f)); n > width {
			width = n
		}
	}

	fmt.Fprintln(h.out, "\n "+h.section.Render("FLAGS"))
	for _, f := range visible {
		label := flagLabel(f)
		pad := strings.Repeat(" ", width-len(label))
		usage := f.Usage
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
			usage += h.theme.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
		}
		fmt.Fprintf(h.out, " %s%s  %s\n", h.flag.Render(label), pad, usage)
	}
}

// flagLabel formats a flag name column entry, aligning flags without a
// shorthand under the long names.
func flagLabel(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}

func (h *helpWriter) examples(cmd *cobra.Command, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(h.out, "\n "+h.section.Render("EXAMPLES"))

	root := strings.Fields(cmd.CommandPath())[0]
	subStyle := lipgloss.NewStyle().Foreground(h.theme.Colors.Cyan)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			fmt.Fprintln(h.out)
		case strings.HasPrefix(line, "#"):
			fmt.Fprintln(h.out, " "+h.theme.Muted.Render(line))
		default:
			fmt.Fprintln(h.out, "   "+h.exampleLine(line, root, subStyle))
		}
	}
}

// exampleLine colors the pieces of a command example: the binary name,
// the subcommand, and any flags.
func (h *helpWriter) exampleLine(line, root string, subStyle lipgloss.Style) string {
	words := strings.Fields(line)
	for i, w := range words {
		switch {
		case i == 0 && w == root:
			words[i] = h.command.Render(w)
		case i == 1 && !strings.HasPrefix(w, "-"):
			words[i] = subStyle.Render(w)
		case strings.HasPrefix(w, "-"):
			words[i] = h.flag.Render(w)
		}
	}
	return strings.Join(words, " ")
}

func (h *helpWriter) extras(cmd *cobra.Command) {
	helpExtrasMu.RLock()
	extras := helpExtras[cmd]
	helpExtrasMu.RUnlock()
	if extras != nil {
		extras(h.theme)
	}
}
