// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// BannerDelay is the pause between banner characters.
const BannerDelay = time.Millisecond

//nolint:gochecknoglobals // Static art and a test seam.
var (
	bannerLines = []string{
		"░  ░░░░  ░░        ░░        ░░░      ░░░       ░░░       ░░░░      ░░░░░░░░░  ░░░░  ░░░░░░░░░      ░░░  ░░░░  ░░   ░░░  ░░░      ░░",
		"▒  ▒  ▒  ▒▒▒▒▒  ▒▒▒▒▒▒▒▒▒▒  ▒▒▒  ▒▒▒▒  ▒▒  ▒▒▒▒  ▒▒  ▒▒▒▒  ▒▒  ▒▒▒▒▒▒▒▒▒▒▒▒▒▒  ▒  ▒  ▒▒▒▒▒▒▒▒  ▒▒▒▒▒▒▒▒  ▒▒▒▒  ▒▒    ▒▒  ▒▒  ▒▒▒▒▒▒▒",
		"▓        ▓▓▓▓▓  ▓▓▓▓▓▓▓▓  ▓▓▓▓▓  ▓▓▓▓  ▓▓       ▓▓▓  ▓▓▓▓  ▓▓▓      ▓▓▓▓▓▓▓▓▓        ▓▓▓▓▓▓▓▓  ▓▓▓   ▓▓  ▓▓▓▓  ▓▓  ▓  ▓  ▓▓▓      ▓▓",
		"█   ██   █████  ██████  ███████        ██  ███  ███  ████  ████████  ████████   ██   ████████  ████  ██  ████  ██  ██    ████████  █",
		"█  ████  ██        ██        ██  ████  ██  ████  ██       ████      █████████  ████  █████████      ████      ███  ███   ███      ██",
		"© Joseph Toscano (2024)",
	}

	sleep = time.Sleep
)

// PrintBanner writes the launcher banner to w one character at a time,
// pausing delay between characters. A zero delay writes each line at once.
// Color is dropped when w is not a terminal.
func PrintBanner(w io.Writer, delay time.Duration) error {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("2"))

	for _, line := range bannerLines {
		if delay <= 0 {
			if _, err := fmt.Fprintln(w, style.Render(line)); err != nil {
				return err
			}
			continue
		}
		for _, r := range line {
			if _, err := io.WriteString(w, style.Render(string(r))); err != nil {
				return err
			}
			sleep(delay)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
