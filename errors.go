package csslink

import "errors"

// Sentinel errors for library operations.
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrEmptyCSSName      = errors.New("CSS filename cannot be empty")

	// Per-file errors. These are recorded on a FileResult and never abort a run.
	ErrReadHTML    = errors.New("failed to read HTML file")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
	ErrWriteHTML   = errors.New("failed to write HTML file")
)
