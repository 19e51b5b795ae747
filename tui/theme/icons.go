package theme

import (
	"os"

	"github.com/lecterntools/lectern/config"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconSuccess = "󰄬" // md-check (U+F012C)
	nerdIconError   = "" // cod-error (U+EA87)
	nerdIconWarning = "" // fa-warning (U+F071)
	nerdIconInfo    = "󰋼" // md-information (U+F02FC)
	nerdIconReload  = "" // fa-refresh (U+F021)
	nerdIconPrev    = "󰁍" // md-arrow_left (U+F004D)
	nerdIconNext    = "󰁔" // md-arrow_right (U+F0054)
	nerdIconBullet  = "" // oct-dot_fill (U+F444)
	nerdIconDoc     = "󰎚" // md-note (U+F039A)
	nerdIconSlides  = "󰚸" // md-note_multiple (U+F06B8)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconSuccess = "✓"
	asciiIconError   = "✗"
	asciiIconWarning = "⚠"
	asciiIconInfo    = "ℹ"
	asciiIconReload  = "◐"
	asciiIconPrev    = "←"
	asciiIconNext    = "→"
	asciiIconBullet  = "•"
	asciiIconDoc     = "▢"
	asciiIconSlides  = "▣"
)

// Public Icon Variables
var (
	IconSuccess string
	IconError   string
	IconWarning string
	IconInfo    string
	IconReload  string
	IconPrev    string
	IconNext    string
	IconBullet  string
	IconDoc     string
	IconSlides  string
)

// init function determines which icon set to use
func init() {
	useASCII := false

	// 1. Check environment variable first
	if os.Getenv("LECTERN_ICONS") == "ascii" {
		useASCII = true
	} else {
		// 2. Check config file
		cfg, err := config.LoadDefault()
		if err == nil && cfg.TUI != nil && cfg.TUI.Icons == "ascii" {
			useASCII = true
		}
	}

	if useASCII {
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconReload = asciiIconReload
		IconPrev = asciiIconPrev
		IconNext = asciiIconNext
		IconBullet = asciiIconBullet
		IconDoc = asciiIconDoc
		IconSlides = asciiIconSlides
	} else {
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
		IconReload = nerdIconReload
		IconPrev = nerdIconPrev
		IconNext = nerdIconNext
		IconBullet = nerdIconBullet
		IconDoc = nerdIconDoc
		IconSlides = nerdIconSlides
	}
}
