// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

var allIds = []Id{
	NotFromApexId,
	ExePathUnavailableId,
	ManifestUnreadableId,
	ManifestMalformedId,
	ApexIdentityMismatchId,
	ConfigLoadFailedId,
}

// stubRender replaces glamour with the identity function for the test.
func stubRender(t *testing.T) {
	t.Helper()
	originalRender := render
	t.Cleanup(func() { render = originalRender })
	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}
}

func TestId_Constants(t *testing.T) {
	t.Parallel()

	seen := make(map[Id]bool)
	for _, id := range allIds {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if NotFromApexId != 1 {
		t.Errorf("NotFromApexId = %d, want 1", NotFromApexId)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{NotFromApexId, false, "Not running from an APEX"},
		{ExePathUnavailableId, false, "/proc/self/exe"},
		{ManifestUnreadableId, false, "manifest unreadable"},
		{ManifestMalformedId, false, "manifest malformed"},
		{ApexIdentityMismatchId, false, "identity mismatch"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{Id(9999), true, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			t.Parallel()

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
				t.Errorf("issue.Id() = %d, want %d", issue.Id(), tt.id)
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues_SortedAndComplete(t *testing.T) {
	t.Parallel()

	issues := Values()
	if len(issues) != len(allIds) {
		t.Fatalf("Values() returned %d issues, want %d", len(issues), len(allIds))
	}
	for i, issue := range issues {
		if issue.Id() != allIds[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, issue.Id(), allIds[i])
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestIssue_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   Id
		want string
	}{
		{NotFromApexId, "Not running from an APEX"},
		{ExePathUnavailableId, "Executable path unavailable"},
		{ManifestUnreadableId, "APEX manifest unreadable"},
		{ManifestMalformedId, "APEX manifest malformed"},
		{ApexIdentityMismatchId, "APEX identity mismatch"},
		{ConfigLoadFailedId, "Failed to load configuration"},
	}

	for _, tt := range tests {
		if got := Get(tt.id).Title(); got != tt.want {
			t.Errorf("Get(%d).Title() = %q, want %q", tt.id, got, tt.want)
		}
	}

	if got := (&Issue{mdMsg: "no heading here"}).Title(); got != "" {
		t.Errorf("Title() without a heading = %q, want empty", got)
	}
}

func TestIssue_DocLinksAreCloned(t *testing.T) {
	t.Parallel()

	issue := Get(NotFromApexId)
	links := issue.DocLinks()
	if len(links) == 0 {
		t.Fatal("NotFromApex issue should carry a doc link")
	}
	original := links[0]
	links[0] = "modified"
	if issue.DocLinks()[0] != original {
		t.Error("DocLinks() should return a clone")
	}
	if issue.ExtLinks() != nil {
		t.Errorf("ExtLinks() = %v, want nil", issue.ExtLinks())
	}
}

func TestIssue_Render(t *testing.T) {
	stubRender(t)

	rendered, err := Get(ManifestMalformedId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "apexinfo manifest") {
		t.Error("Render() output should contain the suggested command")
	}
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	stubRender(t)

	rendered, err := Get(ConfigLoadFailedId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestIssue_Render_Glamour(t *testing.T) {
	t.Parallel()

	rendered, err := Get(ExePathUnavailableId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "Executable path unavailable") {
		t.Errorf("rendered output lost the heading: %q", rendered)
	}
}
