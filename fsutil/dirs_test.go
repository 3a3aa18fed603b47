package fsutil_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/textsummarizer/fsutil"
	"github.com/0xalexb/textsummarizer/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		entries = append(entries, entry)
	}

	return entries
}

func TestCreateDirectories_CreatesNestedPaths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	paths := []string{
		filepath.Join(root, "artifacts"),
		filepath.Join(root, "artifacts", "data_ingestion", "raw"),
		filepath.Join(root, "logs"),
	}

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "info"}, &buf)

	require.NoError(t, fsutil.CreateDirectories(logger, paths))

	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	entries := logLines(t, &buf)
	require.Len(t, entries, len(paths))

	for i, entry := range entries {
		assert.Equal(t, "directory created successfully", entry["msg"])
		assert.Equal(t, paths[i], entry["path"], "log lines follow input order")
	}
}

func TestCreateDirectories_Idempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	target := filepath.Join(root, "artifacts", "model_trainer")
	paths := []string{target}

	require.NoError(t, fsutil.CreateDirectories(nil, paths))

	marker := filepath.Join(target, "checkpoint.bin")
	require.NoError(t, os.WriteFile(marker, []byte("weights"), 0o600))

	require.NoError(t, fsutil.CreateDirectories(nil, paths))

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "weights", string(data), "existing content must survive a second call")

	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateDirectories_ExistingDirectoryStillLogged(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)

	require.NoError(t, fsutil.CreateDirectories(logger, []string{root}))

	assert.Len(t, logLines(t, &buf), 1)
}

func TestCreateDirectories_EmptyInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)

	require.NoError(t, fsutil.CreateDirectories(logger, nil))
	require.NoError(t, fsutil.CreateDirectories(logger, []string{}))
	assert.Empty(t, buf.String())
}

func TestCreateDirectories_QuietDoesNotLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)
	target := filepath.Join(t.TempDir(), "quiet")

	require.NoError(t, fsutil.CreateDirectories(logger, []string{target}, fsutil.WithVerbose(false)))

	assert.DirExists(t, target)
	assert.Empty(t, buf.String())
}

func TestCreateDirectories_WithPerm(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "private")

	require.NoError(t, fsutil.CreateDirectories(nil, []string{target}, fsutil.WithPerm(0o700)))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestCreateDirectories_EmptyPathFailsBeforeCreating(t *testing.T) {
	t.Parallel()

	first := filepath.Join(t.TempDir(), "first")

	err := fsutil.CreateDirectories(nil, []string{first, ""})

	require.ErrorIs(t, err, fsutil.ErrEmptyPath)
	assert.Contains(t, err.Error(), "index 1")
	assert.NoDirExists(t, first)
}

func TestCreateDirectories_ParentIsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, "artifacts")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	before := filepath.Join(root, "logs")
	after := filepath.Join(root, "reports")

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)

	err := fsutil.CreateDirectories(logger, []string{before, filepath.Join(blocker, "data"), after})

	require.ErrorIs(t, err, fsutil.ErrDirectoryCreate)
	assert.Contains(t, err.Error(), blocker)
	assert.DirExists(t, before, "directories before the failure are kept")
	assert.NoDirExists(t, after, "processing stops at the first failure")
	assert.Len(t, logLines(t, &buf), 1)
}
