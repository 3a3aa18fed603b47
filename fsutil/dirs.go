package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/0xalexb/textsummarizer/logging"
)

// DefaultDirPerm is the permission used for created directories.
const DefaultDirPerm fs.FileMode = 0o755

var (
	// ErrEmptyPath is returned when a path argument is empty.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrDirectoryCreate wraps failures to create a directory.
	ErrDirectoryCreate = errors.New("creating directory")
)

type dirOptions struct {
	verbose bool
	perm    fs.FileMode
}

// Option configures CreateDirectories.
type Option func(*dirOptions)

// WithVerbose toggles the per-directory info log line. Verbose is the default.
func WithVerbose(verbose bool) Option {
	return func(opts *dirOptions) {
		opts.verbose = verbose
	}
}

// WithPerm sets the permission bits for newly created directories.
func WithPerm(perm fs.FileMode) Option {
	return func(opts *dirOptions) {
		opts.perm = perm
	}
}

// CreateDirectories creates every path in order, including missing parents.
// Existing directories are left untouched. All paths are checked before the
// first directory is created; creation stops at the first failure.
func CreateDirectories(logger logging.Logger, paths []string, opts ...Option) error {
	options := dirOptions{
		verbose: true,
		perm:    DefaultDirPerm,
	}

	for _, apply := range opts {
		apply(&options)
	}

	for i, path := range paths {
		if path == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyPath, i)
		}
	}

	for _, path := range paths {
		err := os.MkdirAll(path, options.perm)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrDirectoryCreate, path, err)
		}

		if options.verbose && logger != nil {
			logger.Info("directory created successfully", slog.String("path", path))
		}
	}

	return nil
}
