// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"apexsupport/internal/issue"
	"apexsupport/pkg/apexmanifest"

	"github.com/spf13/cobra"
)

func newManifestCommand(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <file>",
		Short: "Decode and print an APEX manifest",
		Long: `Decode and print an APEX manifest.

The format is chosen from the file extension: .pb is the protobuf manifest
found in every mounted APEX, .json and .cue are validated against the
manifest schema.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readManifestFile(app, args[0])
			if err != nil {
				return usageFailure(err, flags.verbose)
			}

			w := cmd.OutOrStdout()
			if flags.format != FormatText {
				return encode(w, flags.format, m)
			}
			renderManifest(w, m, flags.verbose)
			return nil
		},
	}
}

func readManifestFile(app *App, path string) (*apexmanifest.Manifest, error) {
	errCtx := issue.NewErrorContext().
		WithOperation("read apex manifest").
		WithResource(path)

	f, err := app.fs.Open(path)
	if err != nil {
		return nil, errCtx.
			WithSuggestion("Check that the file exists and is readable").
			WithIssue(issue.ManifestUnreadableId).
			Wrap(err).
			BuildError()
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, apexmanifest.MaxFileSize+1))
	if err != nil {
		return nil, errCtx.Wrap(err).BuildError()
	}

	m, err := apexmanifest.Decode(data, path)
	if err != nil {
		return nil, errCtx.
			WithSuggestion("Use a .pb, .json or .cue file").
			WithSuggestion("A manifest needs a non-empty name and an integer version").
			WithIssue(issue.ManifestMalformedId).
			Wrap(err).
			BuildError()
	}
	return m, nil
}

func renderManifest(w io.Writer, m *apexmanifest.Manifest, verbose bool) {
	if !verbose {
		fmt.Fprintf(w, "%s@%d\n", m.Name, m.Version)
		return
	}
	fmt.Fprintln(w, TitleStyle.Render(m.Name))
	fmt.Fprintln(w, labelStyle.Render("Version")+fmt.Sprint(m.Version))
	if m.VersionName != "" {
		fmt.Fprintln(w, labelStyle.Render("VersionName")+m.VersionName)
	}
}
