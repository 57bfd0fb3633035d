// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import "syscall"

// detachedSysProcAttr starts the child in a new session so it outlives the
// launcher's terminal.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
