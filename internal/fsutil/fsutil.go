// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether path names an existing regular file. A missing
// file is not an error; a directory counts as missing.
func FileExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// Ext returns the lower-cased extension of path, ignoring a trailing
// compression suffix such as ".zst".
func Ext(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".zst" {
		return strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	return ext
}
