// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"os"
	"strings"
)

// ForDirectoryNotFound returns a hint for a missing root directory.
// It points at the path that was actually resolved so relative arguments
// are easy to diagnose. isFile reports that the path exists but is not a
// directory.
func ForDirectoryNotFound(resolved string, isFile bool) string {
	if isFile {
		return format("path is a file; pass the directory that contains the HTML files")
	}
	return format("check the path (resolved to " + resolved + ") or run from the documentation root")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-csslink") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFileError returns a hint for a per-file failure, or "" when there is
// nothing useful to add.
func ForFileError(err error) string {
	switch {
	case errors.Is(err, os.ErrPermission):
		return format("check file permissions, or use --dry-run to preview")
	default:
		return ""
	}
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
