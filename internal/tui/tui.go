// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme represents the visual theme for dialogs.
type Theme string

const (
	// ThemeDefault uses the default huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// Config holds common configuration for dialogs.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables plain-text prompts for screen readers and pipes.
	Accessible bool
	// Output is where dialogs are drawn. Nil selects stdout, or stderr in
	// accessible mode.
	Output io.Writer
	// Input is where answers are read from. Nil selects stdin.
	Input io.Reader
}

//nolint:gochecknoglobals // Test seam for terminal detection.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DefaultConfig returns the default dialog configuration. Accessible is set
// only when the ACCESSIBLE environment variable asks for it; a non-terminal
// stdin switches forms to plain text when they run.
func DefaultConfig() Config {
	return Config{
		Theme:      ThemeDefault,
		Accessible: os.Getenv("ACCESSIBLE") != "",
	}
}

// IsOutputTerminal reports whether stdout is connected to a terminal.
func IsOutputTerminal() bool {
	return isTerminal(os.Stdout)
}

func isInputTerminal() bool {
	return isTerminal(os.Stdin)
}

// shouldUseAccessible reports whether prompts must be plain text, either by
// request or because stdin is not a terminal.
func shouldUseAccessible(cfg Config) bool {
	return cfg.Accessible || !isInputTerminal()
}

// getOutputWriter returns cfg.Output, defaulting to stderr in accessible mode
// so prompts are not captured by command substitution, and stdout otherwise.
func getOutputWriter(cfg Config) io.Writer {
	if cfg.Output != nil {
		return cfg.Output
	}
	if shouldUseAccessible(cfg) {
		return os.Stderr
	}
	return os.Stdout
}

func getInputReader(cfg Config) io.Reader {
	if cfg.Input != nil {
		return cfg.Input
	}
	return os.Stdin
}

// getHuhTheme converts a Theme to a huh.Theme.
func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
