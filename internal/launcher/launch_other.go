// SPDX-License-Identifier: MPL-2.0

//go:build !unix && !windows

package launcher

import "syscall"

func detachedSysProcAttr() *syscall.SysProcAttr {
	return nil
}
