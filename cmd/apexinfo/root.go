// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the apexinfo CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"apexsupport/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the apexinfo command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{format: FormatText}

	rootCmd := &cobra.Command{
		Use:   "apexinfo",
		Short: "Report the APEX an executable belongs to",
		Long: TitleStyle.Render("apexinfo") + SubtitleStyle.Render(" - Report the APEX an executable belongs to") + `

apexinfo resolves an executable path under the APEX mount root (/apex by
default), reads the APEX manifest and checks that the name and version it
declares match the directory the executable was launched from.

The exit status of 'self' and 'resolve' is the AApexInfo_create result:
0 ok, 1 null argument, 2 not from an APEX, 3 executable path unavailable,
4 invalid APEX.

` + SubtitleStyle.Render("Examples:") + `
  apexinfo self                                   Identify this binary
  apexinfo resolve /apex/com.android.foo/bin/foo  Identify another binary
  apexinfo manifest apex_manifest.pb              Decode a manifest file
  apexinfo config show                            Show current configuration
  apexinfo issues 2                               Explain a failure`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if valid, errs := flags.format.IsValid(); !valid {
				return usageFailure(errs[0], flags.verbose)
			}
			return nil
		},
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/apexsupport/config.cue)")
	pf.StringVar(&flags.apexRoot, "apex-root", "", "directory under which APEXes are mounted (overrides config)")
	pf.StringVar(&flags.manifestFile, "manifest", "", "manifest file name inside each APEX (overrides config)")
	pf.StringVarP((*string)(&flags.format), "format", "o", string(FormatText), "output format: text, json, yaml or toml")

	rootCmd.AddCommand(newSelfCommand(app, flags))
	rootCmd.AddCommand(newResolveCommand(app, flags))
	rootCmd.AddCommand(newManifestCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))
	rootCmd.AddCommand(newIssuesCommand(flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits with the command's status.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version is passed as an option.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(printError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// printError replaces fang's boxed error block, which rewraps the message and
// would break the suggestion list apart.
func printError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+err.Error())
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
