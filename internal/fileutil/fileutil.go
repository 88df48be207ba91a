// Package fileutil provides file and path utility functions.
package fileutil

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// HTMLExtension is the only extension treated as an HTML document.
// Matching is case-sensitive, so "page.HTML" is not a target.
const HTMLExtension = ".html"

// FileExists returns true if the path exists on fsys and is not a directory.
func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "docs" -> false (name)
//   - "./csslink.yaml" -> true (relative path)
//   - "/etc/csslink.yaml" -> true (absolute)
//   - "C:\config\csslink.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsHidden returns true for dot-prefixed names such as ".git" or ".cache.html".
// The special names "." and ".." are not hidden.
func IsHidden(name string) bool {
	return name != "." && name != ".." && strings.HasPrefix(name, ".")
}

// HasHTMLExtension returns true if path ends in ".html".
func HasHTMLExtension(path string) bool {
	return filepath.Ext(path) == HTMLExtension
}
