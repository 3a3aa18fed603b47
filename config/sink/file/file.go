package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// ErrEmptyPath is returned when the Sink is constructed without a path.
var ErrEmptyPath = errors.New("file path must not be empty")

// dirPerm is used for parent directories created by Store.
const dirPerm = 0o755

// Sink stores configuration data in a single file.
type Sink struct {
	filepath string
}

// NewSink creates a Sink targeting fpath.
func NewSink(fpath string) (*Sink, error) {
	if fpath == "" {
		return nil, ErrEmptyPath
	}

	return &Sink{filepath: filepath.Clean(fpath)}, nil
}

// Path returns the cleaned target path.
func (s *Sink) Path() string {
	return s.filepath
}

// Store creates missing parent directories and atomically replaces the file with data.
func (s *Sink) Store(data []byte) error {
	err := os.MkdirAll(filepath.Dir(s.filepath), dirPerm)
	if err != nil {
		return fmt.Errorf("creating parent of %q: %w", s.filepath, err)
	}

	err = atomic.WriteFile(s.filepath, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("writing file %q: %w", s.filepath, err)
	}

	return nil
}
