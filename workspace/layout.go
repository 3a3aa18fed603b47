package workspace

import (
	"errors"
	"fmt"

	"github.com/0xalexb/textsummarizer/config"
)

// DefaultArtifactsRoot is used when the config file does not name one.
const DefaultArtifactsRoot = "artifacts"

// StageRootKey is the per-stage key that names a stage's directory.
const StageRootKey = "root_dir"

// ErrEmptyDirectory is returned when the directories list has an empty entry.
var ErrEmptyDirectory = errors.New("directory entry must not be empty")

// Layout is the typed view of the workspace settings in the config file.
type Layout struct {
	ArtifactsRoot string   `yaml:"artifacts_root"`
	Directories   []string `yaml:"directories"`
}

// SetDefaults implements config.Defaulter.
func (l *Layout) SetDefaults() bool {
	if l.ArtifactsRoot == "" {
		l.ArtifactsRoot = DefaultArtifactsRoot

		return true
	}

	return false
}

// Validate implements config.Validator.
func (l *Layout) Validate() error {
	for i, dir := range l.Directories {
		if dir == "" {
			return fmt.Errorf("%w: directories[%d]", ErrEmptyDirectory, i)
		}
	}

	return nil
}

// Paths returns every directory the run needs: the artifacts root, the
// configured directories, then each stage's root_dir in document order.
// Duplicates are dropped, keeping the first occurrence.
func (l *Layout) Paths(box *config.Box) []string {
	seen := make(map[string]struct{})
	paths := make([]string, 0, 1+len(l.Directories)+box.Len())

	add := func(path string) {
		if path == "" {
			return
		}

		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	add(l.ArtifactsRoot)

	for _, dir := range l.Directories {
		add(dir)
	}

	box.Range(func(key string, _ any) bool {
		rootDir, ok := box.String(key + config.PathSeparator + StageRootKey)
		if ok {
			add(rootDir)
		}

		return true
	})

	return paths
}
