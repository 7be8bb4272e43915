// SPDX-License-Identifier: MPL-2.0

package apexinfo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"apexsupport/pkg/apexmanifest"

	"github.com/spf13/afero"
)

// DefaultRoot is the directory every APEX is mounted under.
const DefaultRoot = "/apex"

// ErrInvalidResolverOption is returned by NewResolver for an unusable option.
var ErrInvalidResolverOption = errors.New("invalid resolver option")

type (
	// Resolver maps executable paths to the APEX they belong to.
	// A Resolver holds no mutable state and is safe for concurrent use.
	Resolver struct {
		root         string
		manifestFile string
		decoder      apexmanifest.Decoder
		fs           afero.Fs
		exePath      ExecutablePathProvider
		logger       *slog.Logger
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithRoot sets the mount root. Default: DefaultRoot.
func WithRoot(root string) Option {
	return func(r *Resolver) { r.root = root }
}

// WithManifestFile sets the manifest file name looked up in each mount
// directory; its extension selects the decoder. Default:
// apexmanifest.DefaultFileName.
func WithManifestFile(name string) Option {
	return func(r *Resolver) { r.manifestFile = name }
}

// WithFs sets the filesystem manifests are read from. Default: the OS
// filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithExecutablePath sets the executable path provider used by Resolve.
// Default: OwnExecutable.
func WithExecutablePath(p ExecutablePathProvider) Option {
	return func(r *Resolver) { r.exePath = p }
}

// WithLogger sets the logger for debug tracing. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver builds a Resolver. It fails when the root is not absolute or the
// manifest file name has no decoder.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		root:         DefaultRoot,
		manifestFile: apexmanifest.DefaultFileName,
		fs:           afero.NewOsFs(),
		exePath:      OwnExecutable,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	if !filepath.IsAbs(r.root) {
		return nil, fmt.Errorf("%w: apex root %q is not absolute", ErrInvalidResolverOption, r.root)
	}
	r.root = filepath.Clean(r.root)

	if r.manifestFile == "" || filepath.Base(r.manifestFile) != r.manifestFile {
		return nil, fmt.Errorf("%w: manifest file %q must be a plain file name", ErrInvalidResolverOption, r.manifestFile)
	}
	dec, err := apexmanifest.ForFile(r.manifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResolverOption, err)
	}
	r.decoder = dec

	if r.fs == nil || r.exePath == nil {
		return nil, fmt.Errorf("%w: filesystem and executable path provider are required", ErrInvalidResolverOption)
	}

	return r, nil
}

// Root returns the mount root.
func (r *Resolver) Root() string { return r.root }

// ManifestFile returns the manifest file name.
func (r *Resolver) ManifestFile() string { return r.manifestFile }

// Executable returns the running executable's path as reported by the
// provider. A provider failure is returned as *ExePathUnavailableError.
func (r *Resolver) Executable() (string, error) {
	exe, err := r.exePath()
	if err != nil {
		return "", &ExePathUnavailableError{Cause: err}
	}
	return exe, nil
}

// Resolve resolves the running executable. When the path is unavailable no
// manifest is read.
func (r *Resolver) Resolve() (*ApexInfo, error) {
	exe, err := r.Executable()
	if err != nil {
		return nil, err
	}
	return r.ResolvePath(exe)
}

// ResolvePath resolves the APEX that exePath belongs to.
func (r *Resolver) ResolvePath(exePath string) (*ApexInfo, error) {
	mp, err := parseMountPoint(r.root, exePath)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(mp.Dir, r.manifestFile)
	data, err := r.readManifest(manifestPath)
	if err != nil {
		return nil, &InvalidApexError{Reason: ReasonManifestUnreadable, Path: manifestPath, Cause: err}
	}

	m, err := r.decoder.Decode(data, manifestPath)
	if err != nil {
		return nil, &InvalidApexError{Reason: ReasonManifestMalformed, Path: manifestPath, Cause: err}
	}

	declared := ApexName(m.Name)
	if err := declared.Validate(); err != nil {
		return nil, &InvalidApexError{Reason: ReasonInvalidName, Path: manifestPath, Cause: err}
	}
	if declared != mp.Name {
		return nil, &InvalidApexError{
			Reason: ReasonNameMismatch,
			Path:   manifestPath,
			Detail: fmt.Sprintf("manifest declares %q but the executable is under %q", declared, mp.Name),
		}
	}
	if mp.Versioned && m.Version != mp.Version {
		return nil, &InvalidApexError{
			Reason: ReasonVersionMismatch,
			Path:   manifestPath,
			Detail: fmt.Sprintf("manifest declares version %d but the mount point is %s", m.Version, filepath.Base(mp.Dir)),
		}
	}

	info := newApexInfo(declared, m.Version)
	r.logger.Debug("resolved apex", "exe", exePath, "name", info.Name(), "version", info.Version())
	return info, nil
}

// readManifest reads at most MaxFileSize+1 bytes so an oversized file is
// rejected by the decoder without being loaded whole.
func (r *Resolver) readManifest(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, apexmanifest.MaxFileSize+1))
}

var defaultResolver = sync.OnceValues(func() (*Resolver, error) {
	return NewResolver()
})

// Resolve resolves the running executable with a default Resolver.
func Resolve() (*ApexInfo, error) {
	r, err := defaultResolver()
	if err != nil {
		return nil, err
	}
	return r.Resolve()
}

// ResolvePath resolves exePath with a default Resolver.
func ResolvePath(exePath string) (*ApexInfo, error) {
	r, err := defaultResolver()
	if err != nil {
		return nil, err
	}
	return r.ResolvePath(exePath)
}
