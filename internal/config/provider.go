// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"github.com/spf13/afero"
)

type (
	// LoadOptions selects where configuration is read from.
	LoadOptions struct {
		// ConfigFilePath is used exclusively when set (the --config flag).
		ConfigFilePath string
		// ConfigDirPath replaces the platform config directory when set.
		ConfigDirPath string
	}

	// Provider loads the effective configuration: defaults, then the config
	// file, then APEXSUPPORT_* environment overrides.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
		// Path returns the config file Load would read for opts. The file
		// need not exist.
		Path(opts LoadOptions) (string, error)
	}

	fileProvider struct {
		fs afero.Fs
	}
)

// NewProvider returns a Provider reading config files from the OS filesystem.
func NewProvider() Provider {
	return NewProviderFs(afero.NewOsFs())
}

// NewProviderFs returns a Provider reading config files from fsys.
func NewProviderFs(fsys afero.Fs) Provider {
	return fileProvider{fs: fsys}
}

// Load implements Provider.
func (p fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, p.fs, opts)
	return cfg, err
}

// Path implements Provider.
func (fileProvider) Path(opts LoadOptions) (string, error) {
	path, _, err := configFile(opts)
	return path, err
}
