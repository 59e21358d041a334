package common

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Files performs the structured I/O operations against a filesystem and
// reports every successful operation to its logger.
type Files struct {
	fs          afero.Fs
	logger      *slog.Logger
	compression Compression
}

// Option customises a Files value.
type Option func(*Files)

// WithFs replaces the OS filesystem, mostly for tests.
func WithFs(fs afero.Fs) Option {
	return func(f *Files) {
		f.fs = fs
	}
}

// WithCompression selects how SaveBin encodes artifacts. Loading detects the
// encoding on its own, so the setting does not affect LoadBin.
func WithCompression(c Compression) Option {
	return func(f *Files) {
		f.compression = c
	}
}

// New creates a Files bound to the OS filesystem. A nil logger discards records.
func New(logger *slog.Logger, opts ...Option) *Files {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	f := &Files{
		fs:          afero.NewOsFs(),
		logger:      logger,
		compression: CompressionNone,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fs exposes the filesystem the helpers operate on.
func (f *Files) Fs() afero.Fs {
	return f.fs
}
