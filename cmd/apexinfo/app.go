// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"apexsupport/internal/config"
	"apexsupport/internal/logging"
	"apexsupport/pkg/apexinfo"

	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. All Cobra command
	// handlers receive an App reference.
	App struct {
		Config     ConfigProvider
		fs         afero.Fs
		executable apexinfo.ExecutablePathProvider
		stdout     io.Writer
		stderr     io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config     ConfigProvider
		Fs         afero.Fs
		Executable apexinfo.ExecutablePathProvider
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// ConfigProvider loads configuration and locates its file.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Path(opts config.LoadOptions) (string, error)
	}

	// globalFlags holds the persistent flags shared by every subcommand.
	globalFlags struct {
		configPath   string
		apexRoot     string
		manifestFile string
		format       OutputFormat
		verbose      bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Config == nil {
		deps.Config = config.NewProviderFs(deps.Fs)
	}
	if deps.Executable == nil {
		deps.Executable = apexinfo.OwnExecutable
	}

	return &App{
		Config:     deps.Config,
		fs:         deps.Fs,
		executable: deps.Executable,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
}

// loadConfig loads configuration and applies flag overrides on top of it.
func (a *App) loadConfig(ctx context.Context, flags *globalFlags) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, err
	}

	if flags.apexRoot != "" {
		cfg.ApexRoot = config.ApexRootPath(flags.apexRoot)
	}
	if flags.manifestFile != "" {
		cfg.ManifestFile = config.ManifestFileName(flags.manifestFile)
	}
	if flags.verbose {
		cfg.Log.Level = config.LogLevelDebug
	}
	if valid, errs := cfg.IsValid(); !valid {
		return nil, errs[0]
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger selected by the configuration.
func (a *App) newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  logging.Level(cfg.Log.Level),
		Format: logging.Format(cfg.Log.Format),
		Writer: a.stderr,
	})
}

// newResolver builds a resolver from the configuration.
func (a *App) newResolver(cfg *config.Config, logger *slog.Logger) (*apexinfo.Resolver, error) {
	opts := append(cfg.ResolverOptions(),
		apexinfo.WithFs(a.fs),
		apexinfo.WithExecutablePath(a.executable),
		apexinfo.WithLogger(logger),
	)
	return apexinfo.NewResolver(opts...)
}
