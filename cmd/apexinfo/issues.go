// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"apexsupport/internal/issue"

	"github.com/spf13/cobra"
)

type issueEntry struct {
	ID       int    `json:"id" yaml:"id" toml:"id"`
	Title    string `json:"title" yaml:"title" toml:"title"`
	Markdown string `json:"markdown,omitempty" yaml:"markdown,omitempty" toml:"markdown,omitempty"`
}

type issueList struct {
	Issues []issueEntry `json:"issues" yaml:"issues" toml:"issues"`
}

func newIssuesCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "issues [id]",
		Short: "List the troubleshooting guides or show one",
		Long: `List the troubleshooting guides or show one.

Without an argument every guide is listed with its id. With an id the guide
is rendered in full, the same text 'resolve --verbose' prints on failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				return listIssues(w, flags.format)
			}

			iss, err := lookupIssue(args[0])
			if err != nil {
				return usageFailure(err, flags.verbose)
			}
			return showIssue(w, flags.format, iss)
		},
	}
}

func lookupIssue(arg string) (*issue.Issue, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid issue id %q: %w", arg, err)
	}
	iss := issue.Get(issue.Id(n))
	if iss == nil {
		return nil, fmt.Errorf("unknown issue id %d (run 'apexinfo issues' for the list)", n)
	}
	return iss, nil
}

func listIssues(w io.Writer, format OutputFormat) error {
	all := issue.Values()
	if format != FormatText {
		list := issueList{Issues: make([]issueEntry, 0, len(all))}
		for _, iss := range all {
			list.Issues = append(list.Issues, issueEntry{ID: int(iss.Id()), Title: iss.Title()})
		}
		return encode(w, format, list)
	}

	for _, iss := range all {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Width(4).Render(strconv.Itoa(int(iss.Id()))), iss.Title())
	}
	return nil
}

func showIssue(w io.Writer, format OutputFormat, iss *issue.Issue) error {
	if format != FormatText {
		return encode(w, format, issueEntry{
			ID:       int(iss.Id()),
			Title:    iss.Title(),
			Markdown: string(iss.MarkdownMsg()),
		})
	}

	out, err := iss.Render("notty")
	if err != nil {
		return err
	}
	fmt.Fprint(w, out)
	return nil
}
