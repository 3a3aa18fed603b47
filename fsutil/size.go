package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/docker/go-units"
)

var (
	// ErrFileNotFound is returned when a size is requested for a missing file.
	// Errors carrying it also match fs.ErrNotExist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotAFile is returned when a size is requested for a directory.
	ErrNotAFile = errors.New("path is a directory, not a file")
)

// GetSize returns the size of the file at path in kibibytes, formatted as "<N> KB".
// The value is rounded to the nearest integer, ties to even: 1536 bytes is
// "2 KB" and 2560 bytes is "2 KB".
func GetSize(path string) (string, error) {
	size, err := fileSize(path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d KB", int64(math.RoundToEven(float64(size)/units.KiB))), nil
}

// HumanSize returns the size of the file at path using binary units, e.g. "2KiB".
func HumanSize(path string) (string, error) {
	size, err := fileSize(path)
	if err != nil {
		return "", err
	}

	return units.BytesSize(float64(size)), nil
}

func fileSize(path string) (int64, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w %q: %w", ErrFileNotFound, path, err)
	}

	if err != nil {
		return 0, fmt.Errorf("stat file %q: %w", path, err)
	}

	if info.IsDir() {
		return 0, fmt.Errorf("path %q: %w", path, ErrNotAFile)
	}

	return info.Size(), nil
}
