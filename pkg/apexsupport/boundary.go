// SPDX-License-Identifier: MPL-2.0

package apexsupport

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"apexsupport/internal/logging"
	"apexsupport/pkg/apexinfo"
)

// ErrNilResolver is returned by NewBoundary when no resolver is given.
var ErrNilResolver = errors.New("boundary requires a resolver")

// Boundary binds a resolver to the logger that records failed creations.
type Boundary struct {
	resolver *apexinfo.Resolver
	logger   *slog.Logger
}

// NewBoundary returns a Boundary. A nil logger discards diagnostics.
func NewBoundary(resolver *apexinfo.Resolver, logger *slog.Logger) (*Boundary, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Boundary{resolver: resolver, logger: logger}, nil
}

// Create resolves the calling executable's APEX and stores a new handle in
// *out. On failure *out is left unchanged and one diagnostic is logged.
func (b *Boundary) Create(out **apexinfo.ApexInfo) Code {
	if out == nil {
		b.logger.Warn("create called with a nil output location", "code", NullArgument)
		return NullArgument
	}

	info, err := b.resolver.Resolve()
	if err != nil {
		code := CodeOf(err)
		b.logger.Warn("create failed", "code", code, "error", err)
		return code
	}

	*out = info
	return OK
}

// GetName returns a pointer to a NUL-terminated copy of the handle's name.
// Each call returns a new buffer. It returns nil for a nil handle.
func GetName(info *apexinfo.ApexInfo) *byte {
	if info == nil {
		return nil
	}
	return &info.CName()[0]
}

// GetVersion returns the handle's version, or -1 for a nil handle.
func GetVersion(info *apexinfo.ApexInfo) int64 {
	if info == nil {
		return -1
	}
	return info.Version()
}

// newDefaultBoundary builds the boundary behind the C API. The mount root and
// manifest file are always DefaultRoot and DefaultFileName; only logging is
// taken from the environment.
func newDefaultBoundary() *Boundary {
	logger := logging.FromEnv(os.Stderr)
	r, err := apexinfo.NewResolver(apexinfo.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	return &Boundary{resolver: r, logger: logger}
}

var defaultBoundary = sync.OnceValue(newDefaultBoundary)

// Default returns the process-wide boundary used by Create. It is built on
// first use and reads APEXSUPPORT_LOG_LEVEL and APEXSUPPORT_LOG_FORMAT once.
func Default() *Boundary {
	return defaultBoundary()
}

// Create resolves with the Default boundary.
func Create(out **apexinfo.ApexInfo) Code {
	return defaultBoundary().Create(out)
}
