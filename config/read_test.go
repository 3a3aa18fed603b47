package config_test

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/textsummarizer/config"
	filefetcher "github.com/0xalexb/textsummarizer/config/fetcher/file"
	yamlparser "github.com/0xalexb/textsummarizer/config/parser/yaml"
	"github.com/0xalexb/textsummarizer/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadYAML_Success(t *testing.T) {
	t.Parallel()

	path := writeYAML(t, `
artifacts_root: artifacts
data_ingestion:
  root_dir: artifacts/data_ingestion
`)

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "info"}, &buf)

	box, err := config.ReadYAML(logger, path)
	require.NoError(t, err)

	root, ok := box.String("artifacts_root")
	require.True(t, ok)
	assert.Equal(t, "artifacts", root)

	dir, ok := box.String("data_ingestion:root_dir")
	require.True(t, ok)
	assert.Equal(t, "artifacts/data_ingestion", dir)

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "yaml file loaded successfully", entry["msg"])
	assert.Equal(t, path, entry["path"])
}

func TestReadYAML_EveryKeyHasBothAccessStyles(t *testing.T) {
	t.Parallel()

	path := writeYAML(t, "name: pegasus\nepochs: 3\nratio: 0.5\nfp16: true\ntags: [a, b]\nnested: {k: v}\n"+
		"\"localhost:8080\": up\n\"\": empty\n")

	box, err := config.ReadYAML(nil, path)
	require.NoError(t, err)

	for _, key := range box.Keys() {
		viaGet, ok := box.Get(key)
		require.True(t, ok)

		viaLookup, ok := box.Lookup(key)
		require.True(t, ok)

		assert.Equal(t, viaGet, viaLookup, key)
	}

	name, _ := box.String("name")
	epochs, _ := box.Int("epochs")
	ratio, _ := box.Float("ratio")
	fp16, _ := box.Bool("fp16")
	tags, _ := box.Strings("tags")
	nested, _ := box.Sub("nested")

	assert.Equal(t, "pegasus", name)
	assert.Equal(t, 3, epochs)
	assert.InDelta(t, 0.5, ratio, 1e-9)
	assert.True(t, fp16)
	assert.Equal(t, []string{"a", "b"}, tags)
	assert.Equal(t, []string{"k"}, nested.Keys())

	host, _ := box.String("localhost:8080")
	blank, _ := box.String("")

	assert.Equal(t, "up", host)
	assert.Equal(t, "empty", blank)
}

func TestReadYAML_EmptyContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "whitespace", content: "\n   \n"},
		{name: "comments only", content: "# nothing configured yet\n"},
		{name: "null", content: "null\n"},
		{name: "tilde", content: "~\n"},
		{name: "empty mapping", content: "{}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{}, &buf)

			box, err := config.ReadYAML(logger, writeYAML(t, tt.content))

			require.ErrorIs(t, err, config.ErrConfigEmpty)
			assert.NotErrorIs(t, err, config.ErrConfigLoad)
			assert.Contains(t, err.Error(), "yaml file is empty")
			assert.Nil(t, box)
			assert.Empty(t, buf.String(), "nothing is logged on failure")
		})
	}
}

func TestReadYAML_LoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantErrs []error
	}{
		{
			name:     "missing file",
			path:     filepath.Join(dir, "missing.yaml"),
			wantErrs: []error{config.ErrConfigLoad, fs.ErrNotExist},
		},
		{
			name:     "directory",
			path:     dir,
			wantErrs: []error{config.ErrConfigLoad, filefetcher.ErrPathIsDirectory},
		},
		{
			name:     "malformed",
			path:     writeYAML(t, "artifacts_root: [unterminated\n"),
			wantErrs: []error{config.ErrConfigLoad},
		},
		{
			name:     "top-level sequence",
			path:     writeYAML(t, "- artifacts\n- logs\n"),
			wantErrs: []error{config.ErrConfigLoad, config.ErrNotMapping},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			box, err := config.ReadYAML(logging.Nop(), tt.path)

			require.Error(t, err)
			assert.Nil(t, box)

			for _, want := range tt.wantErrs {
				require.ErrorIs(t, err, want)
			}

			assert.NotErrorIs(t, err, config.ErrConfigEmpty)
		})
	}
}

func TestReadYAML_EmptyPath(t *testing.T) {
	t.Parallel()

	box, err := config.ReadYAML(logging.Nop(), "")

	require.ErrorIs(t, err, config.ErrEmptyPath)
	assert.Nil(t, box)
}

func TestReadYAML_ReturnsFreshBoxEachCall(t *testing.T) {
	t.Parallel()

	path := writeYAML(t, "version: 1\n")

	first, err := config.ReadYAML(nil, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("version: 2\n"), 0o600))

	second, err := config.ReadYAML(nil, path)
	require.NoError(t, err)

	firstVersion, _ := first.Int("version")
	secondVersion, _ := second.Int("version")

	assert.NotSame(t, first, second)
	assert.Equal(t, 1, firstVersion)
	assert.Equal(t, 2, secondVersion)
}

type countingFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *countingFetcher) Fetch() ([]byte, error) {
	f.calls++

	return f.data, f.err
}

func TestBoxProvider(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	fetcher := &countingFetcher{data: []byte("artifacts_root: artifacts\n\"localhost:8080\": up\n")}
	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)

	box, err := config.BoxProvider("config.yaml")(yamlparser.NewParser(), fetcher, logger)
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, []string{"artifacts_root", "localhost:8080"}, box.Keys())
	assert.Contains(t, buf.String(), `"path":"config.yaml"`)
}

func TestBoxProvider_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fetcher *countingFetcher
		wantErr error
	}{
		{name: "blank", fetcher: &countingFetcher{data: []byte("  \n")}, wantErr: config.ErrConfigEmpty},
		{name: "null", fetcher: &countingFetcher{data: []byte("null\n")}, wantErr: config.ErrConfigEmpty},
		{name: "sequence", fetcher: &countingFetcher{data: []byte("- a\n")}, wantErr: config.ErrNotMapping},
		{name: "fetch failure", fetcher: &countingFetcher{err: fs.ErrPermission}, wantErr: fs.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			box, err := config.BoxProvider("config.yaml")(yamlparser.NewParser(), tt.fetcher, nil)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "config.yaml")
			assert.Nil(t, box)
		})
	}
}
