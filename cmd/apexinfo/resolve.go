// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"apexsupport/internal/issue"
	"apexsupport/pkg/apexinfo"
	"apexsupport/pkg/apexsupport"

	"github.com/spf13/cobra"
)

// resolveReport is the structured result of self and resolve.
type resolveReport struct {
	Executable string `json:"executable,omitempty" yaml:"executable,omitempty" toml:"executable,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Version    *int64 `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Code       int32  `json:"code" yaml:"code" toml:"code"`
	Status     string `json:"status" yaml:"status" toml:"status"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

func newSelfCommand(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Identify the APEX this binary was launched from",
		Long: `Identify the APEX this binary was launched from.

This performs the same resolution as AApexInfo_create: the executable path
is read from /proc/self/exe and must lie under the APEX mount root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, flags, "")
		},
	}
}

func newResolveCommand(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <exe-path>",
		Short: "Identify the APEX an executable path belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, flags, args[0])
		},
	}
}

// runResolve resolves exePath, or the running executable when exePath is
// empty, prints the report and exits with the AApexInfo_create code.
func runResolve(cmd *cobra.Command, app *App, flags *globalFlags, exePath string) error {
	cfg, err := app.loadConfig(cmd.Context(), flags)
	if err != nil {
		return usageFailure(err, flags.verbose)
	}
	logger, err := app.newLogger(cfg)
	if err != nil {
		return usageFailure(err, flags.verbose)
	}
	resolver, err := app.newResolver(cfg, logger)
	if err != nil {
		return usageFailure(err, flags.verbose)
	}

	var info *apexinfo.ApexInfo
	if exePath == "" {
		exePath, err = resolver.Executable()
	}
	if err == nil {
		info, err = resolver.ResolvePath(exePath)
	}

	code := apexsupport.CodeOf(err)
	report := resolveReport{
		Executable: exePath,
		Code:       int32(code),
		Status:     code.String(),
	}
	if info != nil {
		version := info.Version()
		report.Name = string(info.Name())
		report.Version = &version
	}
	if err != nil {
		report.Error = err.Error()
	}

	w := cmd.OutOrStdout()
	if flags.format == FormatText {
		if info != nil {
			renderResolved(w, report, flags.verbose)
		} else if flags.verbose {
			renderIssue(cmd.ErrOrStderr(), err)
		}
	} else if encErr := encode(w, flags.format, report); encErr != nil {
		return encErr
	}

	if code != apexsupport.OK {
		return &ExitError{Code: int(code), Err: err}
	}
	return nil
}

func renderResolved(w io.Writer, r resolveReport, verbose bool) {
	if !verbose {
		fmt.Fprintf(w, "%s@%d\n", r.Name, *r.Version)
		return
	}
	fmt.Fprintln(w, SuccessStyle.Render("✓ ")+TitleStyle.Render(r.Name))
	fmt.Fprintln(w, labelStyle.Render("Version")+fmt.Sprint(*r.Version))
	if r.Executable != "" {
		fmt.Fprintln(w, labelStyle.Render("Executable")+PathStyle.Render(r.Executable))
	}
	fmt.Fprintln(w, labelStyle.Render("Status")+r.Status)
}

// renderIssue prints the Markdown guidance matching a resolution failure.
func renderIssue(w io.Writer, err error) {
	id, ok := issueFor(err)
	if !ok {
		return
	}
	out, renderErr := issue.Get(id).Render("notty")
	if renderErr != nil {
		return
	}
	fmt.Fprint(w, out)
}

// issueFor maps a resolution error to its catalog entry.
func issueFor(err error) (issue.Id, bool) {
	var invalid *apexinfo.InvalidApexError
	switch {
	case errors.Is(err, apexinfo.ErrPathNotFromApex):
		return issue.NotFromApexId, true
	case errors.Is(err, apexinfo.ErrExePathUnavailable):
		return issue.ExePathUnavailableId, true
	case errors.As(err, &invalid):
		switch invalid.Reason {
		case apexinfo.ReasonManifestUnreadable:
			return issue.ManifestUnreadableId, true
		case apexinfo.ReasonManifestMalformed:
			return issue.ManifestMalformedId, true
		default:
			return issue.ApexIdentityMismatchId, true
		}
	default:
		return 0, false
	}
}
