// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/wizardswithguns/wwg-launcher/internal/launcher"
)

type fakeChecker struct {
	latest    string
	latestErr error
	installed string
	hasMarker bool
}

func (c fakeChecker) FetchLatestVersion(context.Context) (string, error) {
	return c.latest, c.latestErr
}

func (c fakeChecker) ReadInstalledVersion() (string, bool) {
	return c.installed, c.hasMarker
}

func TestRunStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		checker fakeChecker
		rows    [][2]string
		want    []string
	}{
		{
			name:    "up to date",
			checker: fakeChecker{latest: "1.2.0", installed: "1.2.0", hasMarker: true},
			rows:    [][2]string{{"Installed version", "1.2.0"}, {"Latest version", "1.2.0"}},
			want:    []string{"Up to date."},
		},
		{
			name:    "update available",
			checker: fakeChecker{latest: "1.3.0", installed: "1.2.0", hasMarker: true},
			want:    []string{"An update is available: 1.2.0 → 1.3.0", "Run 'wwg' to install it."},
		},
		{
			name:    "downgrade counts as an update",
			checker: fakeChecker{latest: "1.1.0", installed: "1.2.0", hasMarker: true},
			want:    []string{"An update is available: 1.2.0 → 1.1.0"},
		},
		{
			name:    "not installed",
			checker: fakeChecker{latest: "1.2.0"},
			rows:    [][2]string{{"Installed version", notInstalled}},
			want:    []string{"Not installed. Run 'wwg' to install 1.2.0."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			p := statusParams{stdout: &stdout, checker: tt.checker, installDir: "/games/wizards-with-guns"}
			if err := runStatus(context.Background(), p); err != nil {
				t.Fatalf("runStatus() error = %v", err)
			}

			out := stdout.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("stdout missing %q:\n%s", want, out)
				}
			}
			rows := append(tt.rows, [2]string{"Install directory", "/games/wizards-with-guns"}, [2]string{"Config file", "(defaults)"})
			for _, row := range rows {
				if !hasRow(out, row[0], row[1]) {
					t.Errorf("stdout has no row %q = %q:\n%s", row[0], row[1], out)
				}
			}
		})
	}
}

func TestRunStatus_ServerUnreachable(t *testing.T) {
	t.Parallel()

	netErr := &launcher.NetworkError{Op: launcher.OpFetch, URL: "https://example.com/version", StatusCode: http.StatusBadGateway}
	var stdout bytes.Buffer
	p := statusParams{
		stdout:     &stdout,
		checker:    fakeChecker{latestErr: netErr, installed: "1.2.0", hasMarker: true},
		configPath: "/etc/wwg/config.cue",
	}

	err := runStatus(context.Background(), p)
	if !errors.Is(err, launcher.ErrNetwork) {
		t.Fatalf("runStatus() error = %v, want ErrNetwork", err)
	}

	out := stdout.String()
	if !hasRow(out, "Installed version", "1.2.0") {
		t.Errorf("installed version not shown before the failure:\n%s", out)
	}
	if !hasRow(out, "Config file", "/etc/wwg/config.cue") {
		t.Errorf("config path not shown:\n%s", out)
	}
	if strings.Contains(out, "Latest version") {
		t.Errorf("latest version shown despite the failure:\n%s", out)
	}
}

func TestStatusCommand_NeverInstalls(t *testing.T) {
	srv := newTestServer(t, "2.0.0")
	installDir := t.TempDir()
	notifier := &fakeNotifier{}
	procs := &fakeLauncher{}
	stubSeams(t, notifier, procs)

	stdout, _, err := executeRoot(t, "status", "--config", writeTestConfig(t, srv.URL, installDir))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, "Not installed. Run 'wwg' to install 2.0.0.") {
		t.Errorf("unexpected status output:\n%s", stdout)
	}
	if len(procs.paths) != 0 || len(notifier.confirms) != 0 || len(notifier.errors) != 0 {
		t.Errorf("status touched the launcher or notifier: launched=%v notifier=%+v", procs.paths, notifier)
	}
}

// hasRow reports whether one line of a rendered table holds both label and value.
func hasRow(out, label, value string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, label) && strings.Contains(line, value) {
			return true
		}
	}
	return false
}
