package config

import "errors"

var (
	// ErrEmptyPath is returned when a load is attempted without a file path.
	ErrEmptyPath = errors.New("config path must not be empty")

	// ErrConfigEmpty is returned when a YAML document holds no keys.
	ErrConfigEmpty = errors.New("yaml file is empty")

	// ErrConfigLoad tags every other failure to read or parse a YAML file.
	// The underlying error stays reachable with errors.Is and errors.As.
	ErrConfigLoad = errors.New("loading yaml file")

	// ErrNotMapping is returned when the top level of a document is not a mapping.
	ErrNotMapping = errors.New("yaml document is not a mapping")

	// ErrKeyNotFound is returned by Box.Decode for a path with no value.
	ErrKeyNotFound = errors.New("key not found")
)
