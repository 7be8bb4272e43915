// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"apexsupport/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `apexinfo config` command tree.
func newConfigCommand(app *App, flags *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect apexinfo configuration",
		Long: `Inspect apexinfo configuration.

Configuration is stored in:
  - Linux: ~/.config/apexsupport/config.cue
  - macOS: ~/Library/Application Support/apexsupport/config.cue
  - Windows: %APPDATA%\apexsupport\config.cue

Every key can be overridden from the environment: APEXSUPPORT_APEX_ROOT,
APEXSUPPORT_MANIFEST_FILE, APEXSUPPORT_LOG_LEVEL and APEXSUPPORT_LOG_FORMAT.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return usageFailure(err, flags.verbose)
			}

			w := cmd.OutOrStdout()
			if flags.format != FormatText {
				return encode(w, flags.format, cfg)
			}
			fmt.Fprint(w, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Config.Path(config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return usageFailure(err, flags.verbose)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to the config file location (see
'apexinfo config path'). An existing file is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Config.Path(config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return usageFailure(err, flags.verbose)
			}
			created, err := config.WriteDefaultConfig(app.fs, path)
			if err != nil {
				return usageFailure(err, flags.verbose)
			}

			w := cmd.OutOrStdout()
			if created {
				fmt.Fprintln(w, SuccessStyle.Render("✓ ")+"wrote "+PathStyle.Render(path))
			} else {
				fmt.Fprintln(w, WarningStyle.Render("• ")+"kept existing "+PathStyle.Render(path))
			}
			return nil
		},
	})

	return cfgCmd
}
