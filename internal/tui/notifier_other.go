// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package tui

import "github.com/wizardswithguns/wwg-launcher/internal/launcher"

func platformNotifier() (launcher.Notifier, bool) {
	return nil, false
}
