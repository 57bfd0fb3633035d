// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
)

type (
	// ProcessLauncher starts an executable without waiting for it.
	ProcessLauncher interface {
		LaunchDetached(path, cwd string) error
	}

	// ExecLauncher starts the process with os/exec, detaches it from the
	// launcher's session or console, and releases the handle.
	ExecLauncher struct{}
)

// LaunchDetached implements ProcessLauncher. No arguments are passed and the
// standard streams are left unconnected.
func (ExecLauncher) LaunchDetached(path, cwd string) error {
	cmd := exec.Command(path)
	cmd.Dir = cwd
	cmd.SysProcAttr = detachedSysProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", path, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("releasing process handle: %w", err)
	}
	return nil
}

// Launch starts the installed executable when it exists. A missing executable
// is not an error: Launch logs it and returns nil without starting anything.
func (o *Orchestrator) Launch() error {
	_, err := o.launch()
	return err
}

// launch reports whether a start was attempted alongside any failure.
func (o *Orchestrator) launch() (bool, error) {
	exe := o.cfg.ExecutablePath()

	info, err := os.Stat(exe)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Debug("executable not found, nothing to launch", "path", exe)
			return false, nil
		}
		return false, &FilesystemError{Op: "inspect executable", Path: exe, Err: err}
	}
	if info.IsDir() {
		o.logger.Debug("executable path is a directory, nothing to launch", "path", exe)
		return false, nil
	}

	o.report("Launching the game...")
	if err := o.procs.LaunchDetached(exe, o.cfg.InstallDir); err != nil {
		return true, &FilesystemError{Op: OpLaunch, Path: exe, Err: err}
	}
	o.logger.Info("launched", "path", exe)

	return true, nil
}
