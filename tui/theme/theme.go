// Package theme holds the color palettes and pre-built lipgloss styles
// shared by the presenter, the help overlay, and CLI output.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lecterntools/lectern/config"
)

const defaultThemeName = "kanagawa"

// Colors is the palette a theme's styles are built from.
// lipgloss.TerminalColor allows a mix of adaptive and static colors.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	LightText lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	DarkText  lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	CodeBg    lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for lectern.
type Theme struct {
	Colors Colors

	Title lipgloss.Style

	// Status lines
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text weight
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Slide content
	SlideTitle   lipgloss.Style // rank-1 headings
	SlideHeading lipgloss.Style // rank-2 and deeper headings
	SlideBody    lipgloss.Style
	CodeBlock    lipgloss.Style

	// Presenter chrome
	HeaderBar    lipgloss.Style
	FooterBar    lipgloss.Style
	Counter      lipgloss.Style
	DotActive    lipgloss.Style
	DotInactive  lipgloss.Style
	NavEnabled   lipgloss.Style
	NavDisabled  lipgloss.Style
	ModeActive   lipgloss.Style
	ModeInactive lipgloss.Style

	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": kanagawaColors,
	"gruvbox":  gruvboxColors,
	"terminal": terminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// DefaultTheme is the theme selected by environment and configuration.
var DefaultTheme = newTheme(resolveThemeColors(getThemeName()))

// NewThemeWithName constructs a theme from a specific palette name.
// Unknown names get the default palette.
func NewThemeWithName(name string) *Theme {
	return newTheme(resolveThemeColors(name))
}

// RenderTitle renders a title with the default styling.
func RenderTitle(title string) string {
	return DefaultTheme.Title.Render(title)
}

// RenderStatus renders text with the appropriate status style and icon.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(IconSuccess + " " + text)
	case "error":
		return DefaultTheme.Error.Render(IconError + " " + text)
	case "warning":
		return DefaultTheme.Warning.Render(IconWarning + " " + text)
	case "info":
		return DefaultTheme.Info.Render(IconInfo + " " + text)
	default:
		return text
	}
}

func newTheme(c Colors) *Theme {
	return &Theme{
		Colors: c,

		Title: lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),

		Success: lipgloss.NewStyle().Foreground(c.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(c.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(c.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),

		SlideTitle:   lipgloss.NewStyle().Bold(true).Foreground(c.Orange),
		SlideHeading: lipgloss.NewStyle().Bold(true).Foreground(c.Violet),
		SlideBody:    lipgloss.NewStyle().Foreground(c.LightText),
		CodeBlock:    lipgloss.NewStyle().Background(c.CodeBg).Foreground(c.LightText).Padding(0, 1).MarginLeft(2),

		HeaderBar: barStyle(c).BorderBottom(true),
		FooterBar: barStyle(c).BorderTop(true),

		Counter:     lipgloss.NewStyle().Foreground(c.LightText).Bold(true),
		DotActive:   lipgloss.NewStyle().Foreground(c.Orange),
		DotInactive: lipgloss.NewStyle().Foreground(c.MutedText),
		NavEnabled:  lipgloss.NewStyle().Foreground(c.Cyan),
		NavDisabled: lipgloss.NewStyle().Foreground(c.MutedText).Faint(true),

		ModeActive:   lipgloss.NewStyle().Foreground(c.DarkText).Background(c.Violet).Bold(true).Padding(0, 1),
		ModeInactive: lipgloss.NewStyle().Foreground(c.MutedText).Padding(0, 1),

		Highlight: lipgloss.NewStyle().Foreground(c.Orange).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(c.Violet).Bold(true),
	}
}

// barStyle is the shared base for the header and footer bars; each adds
// its own border edge.
func barStyle(c Colors) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(c.MutedText).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(c.Border)
}

// resolveThemeColors maps a theme name to its palette. Unknown names
// fall back to the default palette so a typo never stops a
// presentation.
func resolveThemeColors(name string) Colors {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if build, ok := themeRegistry[key]; ok {
		return build()
	}
	return themeRegistry[defaultThemeName]()
}

var themeNameCleaner = strings.NewReplacer(" ", "-", "_", "-")

func normalizeThemeName(name string) string {
	return themeNameCleaner.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// getThemeName reads the theme from LECTERN_THEME, then from the
// theme: key of lectern.yml.
func getThemeName() string {
	if name := normalizeThemeName(os.Getenv("LECTERN_THEME")); name != "" {
		return name
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil {
		return defaultThemeName
	}
	if name := normalizeThemeName(cfg.Theme); name != "" {
		return name
	}

	return defaultThemeName
}

// kanagawaColors pairs the Dragon palette for dark terminals with a
// Wave-inspired palette for light ones.
func kanagawaColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: "#4E7C5A", Dark: "#98BB6C"},
		Yellow:    lipgloss.AdaptiveColor{Light: "#A68A64", Dark: "#FF9E3B"},
		Red:       lipgloss.AdaptiveColor{Light: "#C34043", Dark: "#FF5D62"},
		Orange:    lipgloss.AdaptiveColor{Light: "#CC6B4E", Dark: "#FFA066"},
		Cyan:      lipgloss.AdaptiveColor{Light: "#5B8BBE", Dark: "#7E9CD8"},
		Blue:      lipgloss.AdaptiveColor{Light: "#4F7CAC", Dark: "#7FB4CA"},
		Violet:    lipgloss.AdaptiveColor{Light: "#674D7A", Dark: "#957FB8"},
		LightText: lipgloss.AdaptiveColor{Light: "#2B2F42", Dark: "#DCD7BA"},
		MutedText: lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#727169"},
		DarkText:  lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#1D1C19"},
		Border:    lipgloss.AdaptiveColor{Light: "#B5BDC5", Dark: "#363646"},
		CodeBg:    lipgloss.AdaptiveColor{Light: "#F7F7FB", Dark: "#1F1F28"},
	}
}

func gruvboxColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: "#98971A", Dark: "#B8BB26"},
		Yellow:    lipgloss.AdaptiveColor{Light: "#D79921", Dark: "#FABD2F"},
		Red:       lipgloss.AdaptiveColor{Light: "#CC241D", Dark: "#FB4934"},
		Orange:    lipgloss.AdaptiveColor{Light: "#D65D0E", Dark: "#FE8019"},
		Cyan:      lipgloss.AdaptiveColor{Light: "#458588", Dark: "#83A598"},
		Blue:      lipgloss.AdaptiveColor{Light: "#076678", Dark: "#458588"},
		Violet:    lipgloss.AdaptiveColor{Light: "#8F3F71", Dark: "#B16286"},
		LightText: lipgloss.AdaptiveColor{Light: "#3C3836", Dark: "#EBDBB2"},
		MutedText: lipgloss.AdaptiveColor{Light: "#928374", Dark: "#BDAE93"},
		DarkText:  lipgloss.AdaptiveColor{Light: "#F9F5D7", Dark: "#1D2021"},
		Border:    lipgloss.AdaptiveColor{Light: "#D5C4A1", Dark: "#504945"},
		CodeBg:    lipgloss.AdaptiveColor{Light: "#FBF1C7", Dark: "#282828"},
	}
}

// terminalColors sticks to ANSI colors so the presentation inherits the
// user's terminal scheme.
func terminalColors() Colors {
	return Colors{
		Green:     lipgloss.Color("2"),
		Yellow:    lipgloss.Color("3"),
		Red:       lipgloss.Color("1"),
		Orange:    lipgloss.Color("208"),
		Cyan:      lipgloss.Color("6"),
		Blue:      lipgloss.Color("4"),
		Violet:    lipgloss.Color("5"),
		LightText: lipgloss.Color("7"),
		MutedText: lipgloss.Color("8"),
		DarkText:  lipgloss.Color("0"),
		Border:    lipgloss.Color("8"),
		CodeBg:    lipgloss.Color("0"),
	}
}
