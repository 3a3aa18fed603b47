package config

import (
	"bytes"
	"fmt"
	"log/slog"

	filefetcher "github.com/0xalexb/textsummarizer/config/fetcher/file"
	yamlparser "github.com/0xalexb/textsummarizer/config/parser/yaml"
	"github.com/0xalexb/textsummarizer/logging"
)

// ReadYAML loads the YAML document at path into a new Box.
//
// Empty documents (no content, comments only, null, or {}) fail with
// ErrConfigEmpty. An empty mapping is rejected too, so a returned Box always
// has at least one key. Every other failure is wrapped with ErrConfigLoad.
// A single info line is logged on success; logger may be nil.
func ReadYAML(logger logging.Logger, path string) (*Box, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	return loadBox(logger, fetcher.Path(), yamlparser.NewParser(), fetcher)
}

// BoxProvider returns an Fx-compatible constructor that builds a Box from the
// provided Parser and DataFetcher, with the same errors and log line as
// ReadYAML. source names the data in errors and logs.
func BoxProvider(source string) func(Parser, DataFetcher, *slog.Logger) (*Box, error) {
	return func(parser Parser, fetcher DataFetcher, logger *slog.Logger) (*Box, error) {
		var log logging.Logger
		if logger != nil {
			log = logger
		}

		return loadBox(log, source, parser, fetcher)
	}
}

func loadBox(logger logging.Logger, source string, parser Parser, fetcher DataFetcher) (*Box, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, source, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrConfigEmpty, source)
	}

	box := NewBox()

	err = parser.Parse(data, box, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, source, err)
	}

	if box.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrConfigEmpty, source)
	}

	if logger != nil {
		logger.Info("yaml file loaded successfully", slog.String("path", source))
	}

	return box, nil
}
