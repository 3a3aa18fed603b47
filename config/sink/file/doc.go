// Package file writes configuration documents back to the filesystem.
//
// Writes go through github.com/natefinch/atomic: data lands in a temporary
// file next to the target and is then renamed over it, so a concurrent
// reader sees either the old document or the new one.
package file
