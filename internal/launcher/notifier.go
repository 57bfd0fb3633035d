// SPDX-License-Identifier: MPL-2.0

package launcher

// OfflinePrompt is the question asked when the version check cannot reach the server.
const OfflinePrompt = "WizardsWithGuns.com is not responding. Your internet connection may be " +
	"experiencing issues. Would you like to launch the game anyway?"

// Notifier surfaces failures and yes/no questions to the user. Implementations
// block until the user has dismissed the dialog.
type Notifier interface {
	// ReportError shows message as an error the user must acknowledge.
	ReportError(message string)
	// Confirm asks message as a yes/no question and returns true for yes.
	Confirm(message string) bool
}
