// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
)

// progressWriter prints the orchestrator's progress lines. On a terminal a
// spinner runs below any line ending in "..." until the next line arrives.
type progressWriter struct {
	w       io.Writer
	spin    *spinner.Spinner // nil when not animating
	pending []byte
}

func newProgressWriter(w io.Writer, animate bool) *progressWriter {
	p := &progressWriter{w: w}
	if animate {
		p.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
		p.spin.Color("green") //nolint:errcheck
	}
	return p
}

// Write buffers partial lines and prints each complete one.
func (p *progressWriter) Write(b []byte) (int, error) {
	p.pending = append(p.pending, b...)
	for {
		idx := bytes.IndexByte(p.pending, '\n')
		if idx < 0 {
			return len(b), nil
		}
		line := string(p.pending[:idx])
		p.pending = p.pending[idx+1:]
		if err := p.writeLine(line); err != nil {
			return len(b), err
		}
	}
}

func (p *progressWriter) writeLine(line string) error {
	p.stop()
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}
	if p.spin != nil && strings.HasSuffix(line, "...") {
		p.spin.Start()
	}
	return nil
}

// Close stops the spinner and flushes any unterminated line.
func (p *progressWriter) Close() error {
	p.stop()
	if len(p.pending) == 0 {
		return nil
	}
	line := string(p.pending)
	p.pending = nil
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func (p *progressWriter) stop() {
	if p.spin != nil {
		p.spin.Stop()
	}
}

// quietNotifier stops the progress spinner before a dialog takes the terminal.
type quietNotifier struct {
	launcher.Notifier
	progress *progressWriter
}

// ReportError implements launcher.Notifier.
func (n quietNotifier) ReportError(message string) {
	n.progress.stop()
	n.Notifier.ReportError(message)
}

// Confirm implements launcher.Notifier.
func (n quietNotifier) Confirm(message string) bool {
	n.progress.stop()
	return n.Notifier.Confirm(message)
}
