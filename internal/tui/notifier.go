// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
)

const dialogTitle = "Error"

type (
	// prompter shows a single dialog and waits for the user.
	prompter interface {
		note(title, message string) error
		confirm(question string) (bool, error)
	}

	// huhPrompter draws dialogs as huh forms.
	huhPrompter struct {
		cfg Config
	}

	// DialogNotifier implements launcher.Notifier with terminal dialogs. When
	// a dialog cannot be shown it falls back to printing the message, and a
	// question is answered with no.
	DialogNotifier struct {
		prompt   prompter
		fallback io.Writer
	}
)

//nolint:gochecknoglobals // Test seam for the platform dialog backend.
var nativeNotifier = platformNotifier

// NewNotifier returns the Notifier for the current environment: native
// message boxes on Windows when there is no console to draw in and plain
// text was not requested, huh dialogs otherwise.
func NewNotifier(cfg Config) launcher.Notifier {
	if !isInputTerminal() && !cfg.Accessible {
		if n, ok := nativeNotifier(); ok {
			return n
		}
	}
	return NewDialogNotifier(cfg)
}

// NewDialogNotifier returns a huh-backed DialogNotifier.
func NewDialogNotifier(cfg Config) *DialogNotifier {
	return &DialogNotifier{
		prompt:   huhPrompter{cfg: cfg},
		fallback: getOutputWriter(cfg),
	}
}

// ReportError implements launcher.Notifier.
func (n *DialogNotifier) ReportError(message string) {
	if err := n.prompt.note(dialogTitle, message); err != nil {
		_, _ = fmt.Fprintf(n.fallback, "%s: %s\n", dialogTitle, message)
	}
}

// Confirm implements launcher.Notifier.
func (n *DialogNotifier) Confirm(message string) bool {
	ok, err := n.prompt.confirm(message)
	if err != nil {
		_, _ = fmt.Fprintf(n.fallback, "%s: %s\n", dialogTitle, message)
		return false
	}
	return ok
}

func (p huhPrompter) form(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(getHuhTheme(p.cfg.Theme)).
		WithAccessible(shouldUseAccessible(p.cfg)).
		WithOutput(getOutputWriter(p.cfg)).
		WithInput(getInputReader(p.cfg))
}

func (p huhPrompter) note(title, message string) error {
	return p.form(huh.NewNote().
		Title(title).
		Description(message).
		Next(true)).Run()
}

// confirm shows the question as the field title, which accessible mode
// prints in front of its [y/N] choices.
func (p huhPrompter) confirm(question string) (bool, error) {
	var answer bool
	err := p.form(huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)).Run()
	return answer, err
}
