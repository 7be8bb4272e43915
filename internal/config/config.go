// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"apexsupport/internal/issue"
	"apexsupport/pkg/cueutil"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "apexsupport"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment override, e.g. APEXSUPPORT_APEX_ROOT.
	EnvPrefix = "APEXSUPPORT"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the apexsupport configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// configFile returns the config file selected by opts and whether it was
// given explicitly. An explicit file must exist; the directory file is
// optional.
func configFile(opts LoadOptions) (string, bool, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, true, nil
	}
	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", false, err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), false, nil
}

// loadWithOptions builds the effective configuration from defaults, the CUE
// file on fsys and APEXSUPPORT_* variables, in increasing precedence. It
// returns the file actually read, or "" when defaults and the environment
// were enough.
func loadWithOptions(ctx context.Context, fsys afero.Fs, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	defaults := DefaultConfig()
	v := viper.New()
	v.SetDefault("apex_root", defaults.ApexRoot)
	v.SetDefault("manifest_file", defaults.ManifestFile)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, explicit, err := configFile(opts)
	if err != nil {
		return nil, "", err
	}

	switch {
	case isRegularFile(fsys, path):
		if err := mergeCUEFile(v, fsys, path); err != nil {
			return nil, "", invalidFileError(path, err)
		}
	case explicit:
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check the --config path").
			WithSuggestion("Run 'apexinfo config init' to write a default configuration").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	default:
		path = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("decode configuration: %w", err)
	}

	// Environment overrides never pass through the CUE schema.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check the " + EnvPrefix + "_* environment variables").
			WithSuggestion("Use 'apexinfo config show' to see the effective configuration").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, path, nil
}

func invalidFileError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Keys allowed: apex_root, manifest_file, log.level, log.format").
		WithSuggestion("Compare with the output of 'apexinfo config show'").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// mergeCUEFile checks a config file against #Config and merges it over the
// defaults. Every field is optional, so validation is non-concrete and the
// value goes through a map; Config.IsValid runs after the merge.
func mergeCUEFile(v *viper.Viper, fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return err
	}

	unified, err := cueutil.Unify(configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return cueutil.FormatError(err, path)
	}
	return v.MergeConfigMap(values)
}

func isRegularFile(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// WriteDefaultConfig writes GenerateCUE(DefaultConfig()) to path on fsys,
// creating its directory. An existing file is kept; created reports whether
// anything was written.
func WriteDefaultConfig(fsys afero.Fs, path string) (created bool, err error) {
	if _, err := fsys.Stat(path); err == nil {
		return false, nil
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return false, fmt.Errorf("write config file: %w", err)
	}
	return true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// apexsupport configuration\n")
	sb.WriteString("// Every key can be overridden with " + EnvPrefix + "_<KEY>, e.g. " + EnvPrefix + "_LOG_LEVEL.\n\n")

	fmt.Fprintf(&sb, "apex_root: %q\n", cfg.ApexRoot)
	fmt.Fprintf(&sb, "manifest_file: %q\n", cfg.ManifestFile)

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	fmt.Fprintf(&sb, "\tformat: %q\n", cfg.Log.Format)
	sb.WriteString("}\n")

	return sb.String()
}
