// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once at construction time and cached, so repeated calls
// to Fetch return the same bytes without touching the filesystem again.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("config/config.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Underlying os errors are wrapped, so errors.Is(err, fs.ErrNotExist) keeps
// working for callers that need to tell a missing file apart.
package file
