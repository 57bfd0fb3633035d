// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{ServerUnreachableId, false, "not responding"},
		{VersionNotFoundId, false, "No version information"},
		{DownloadFailedId, false, "Download failed"},
		{InstallFailedId, false, "Installation failed"},
		{LaunchFailedId, false, "could not be started"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{DataDirNotFoundId, false, "application data directory"},
		{Id(9999), true, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}
			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", issue.Id(), tt.id)
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues_Ordered(t *testing.T) {
	issues := Values()

	if len(issues) != 7 {
		t.Fatalf("Values() returned %d issues, want 7", len(issues))
	}
	for i, is := range issues {
		if is.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, is.Id(), i+1)
		}
	}
}

func TestIssue_ExtLinksClone(t *testing.T) {
	issue := Get(ServerUnreachableId)

	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("ExtLinks() is empty")
	}
	original := links[0]
	links[0] = "modified"

	if got := issue.ExtLinks()[0]; got != original {
		t.Errorf("ExtLinks() should return a clone, got %q", got)
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	rendered, err := Get(ServerUnreachableId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if gotStyle != "notty" {
		t.Errorf("style = %q, want %q", gotStyle, "notty")
	}
	if !strings.Contains(rendered, "## See also") || !strings.Contains(rendered, "https://www.wizardswithguns.com") {
		t.Errorf("Render() output missing links:\n%s", rendered)
	}
}

func TestIssue_RenderWithGlamour(t *testing.T) {
	rendered, err := Get(InstallFailedId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "Installation failed") {
		t.Errorf("Render() output = %q", rendered)
	}
}
