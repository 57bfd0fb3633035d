// SPDX-License-Identifier: MPL-2.0

//go:build windows

package tui

import (
	"golang.org/x/sys/windows"

	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
)

const (
	mbYesNo     = 0x00000004
	mbIconError = 0x00000010
	idYes       = 6
)

// MessageBoxNotifier implements launcher.Notifier with Win32 message boxes,
// for launches that have no console attached.
type MessageBoxNotifier struct{}

func platformNotifier() (launcher.Notifier, bool) {
	return MessageBoxNotifier{}, true
}

// ReportError implements launcher.Notifier.
func (MessageBoxNotifier) ReportError(message string) {
	_, _ = messageBox(message, mbIconError)
}

// Confirm implements launcher.Notifier.
func (MessageBoxNotifier) Confirm(message string) bool {
	ret, err := messageBox(message, mbYesNo|mbIconError)
	return err == nil && ret == idYes
}

func messageBox(message string, flags uint32) (int32, error) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return 0, err
	}
	caption, err := windows.UTF16PtrFromString(dialogTitle)
	if err != nil {
		return 0, err
	}
	return windows.MessageBox(0, text, caption, flags)
}
