// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launcher

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedSysProcAttr starts the child without the launcher's console and in
// its own process group, so closing the launcher window leaves it running.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
