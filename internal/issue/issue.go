// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	NotFromApexId Id = iota + 1
	ExePathUnavailableId
	ManifestUnreadableId
	ManifestMalformedId
	ApexIdentityMismatchId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation for this class of failure
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Title returns the text of the message's first heading.
func (i *Issue) Title() string {
	for line := range strings.Lines(string(i.mdMsg)) {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return title
		}
	}
	return ""
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue for the terminal. stylePath is a glamour style
// name ("dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const apexDocs HttpLink = "https://source.android.com/docs/core/ota/apex"

var (
	render = glamour.Render

	notFromApexIssue = &Issue{
		id: NotFromApexId,
		mdMsg: `
# Not running from an APEX

The executable path is not under the APEX mount root, so there is no APEX
identity to report. This is expected for binaries in /system, /vendor or
/product.

## Things you can try:
- Check where the binary lives:
~~~
$ apexinfo resolve /proc/self/exe
~~~
- If APEXes are mounted somewhere other than /apex, set the root:
~~~
$ APEXSUPPORT_APEX_ROOT=/data/apex apexinfo self
~~~`,
		docLinks: []HttpLink{apexDocs},
	}

	exePathUnavailableIssue = &Issue{
		id: ExePathUnavailableId,
		mdMsg: `
# Executable path unavailable

The path of the running executable could not be determined. On Linux it is
read from /proc/self/exe.

## Things you can try:
- Make sure /proc is mounted in this environment
- Check that the process is allowed to read /proc/self/exe (SELinux, seccomp)`,
	}

	manifestUnreadableIssue = &Issue{
		id: ManifestUnreadableId,
		mdMsg: `
# APEX manifest unreadable

The executable is under an APEX directory, but its manifest could not be read.
Every mounted APEX carries apex_manifest.pb at its root.

## Things you can try:
- Check that the APEX is actually mounted:
~~~
$ ls /apex
~~~
- If a different manifest file is used, configure it:
~~~
$ apexinfo --manifest apex_manifest.json self
~~~`,
		docLinks: []HttpLink{apexDocs},
	}

	manifestMalformedIssue = &Issue{
		id: ManifestMalformedId,
		mdMsg: `
# APEX manifest malformed

The manifest was read but does not decode to a name and a version.

## Things you can try:
- Inspect the manifest:
~~~
$ apexinfo manifest /apex/<name>/apex_manifest.pb
~~~
- Rebuild the APEX; the manifest is generated at build time`,
		docLinks: []HttpLink{apexDocs},
	}

	apexIdentityMismatchIssue = &Issue{
		id: ApexIdentityMismatchId,
		mdMsg: `
# APEX identity mismatch

The manifest does not describe the directory it was found in. Either the name
it declares differs from the directory name, the name is not a valid APEX name,
or a versioned mount point (name@version) disagrees with the declared version.

## Things you can try:
- Compare the directory with the manifest:
~~~
$ apexinfo manifest /apex/<name>/apex_manifest.pb
~~~
- Check that the APEX was not copied or renamed after installation`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file could not be loaded or failed schema validation.

## Things you can try:
- Show the effective configuration:
~~~
$ apexinfo config show
~~~
- Check APEXSUPPORT_* environment variables for typos
- Valid keys are apex_root, manifest_file, log.level and log.format`,
	}

	issues = map[Id]*Issue{
		notFromApexIssue.Id():          notFromApexIssue,
		exePathUnavailableIssue.Id():   exePathUnavailableIssue,
		manifestUnreadableIssue.Id():   manifestUnreadableIssue,
		manifestMalformedIssue.Id():    manifestMalformedIssue,
		apexIdentityMismatchIssue.Id(): apexIdentityMismatchIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
