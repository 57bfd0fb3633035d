// SPDX-License-Identifier: MPL-2.0

package launcher

import "strings"

// ParseVersion scans body line by line for the first line containing marker
// and returns the text after that line's first ':' with surrounding
// whitespace trimmed. It reports false when no such line exists, when the
// line has no ':', or when the token is empty.
func ParseVersion(body, marker string) (string, bool) {
	for line := range strings.SplitSeq(body, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		_, token, found := strings.Cut(line, ":")
		if !found {
			return "", false
		}
		token = strings.TrimSpace(token)
		return token, token != ""
	}
	return "", false
}
