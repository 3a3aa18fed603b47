// Package fsutil holds the filesystem helpers used while preparing a
// pipeline run: idempotent directory creation and file size reporting.
package fsutil
