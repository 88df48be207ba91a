package csslink

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// filePermissions applies only if a file vanishes between discovery and
// write; existing files keep their mode on truncate.
const filePermissions = 0o644

// Options configures a single run.
type Options struct {
	Dir    string // Root directory to scan
	CSS    string // Stylesheet name placed in href
	DryRun bool   // Classify only, write nothing
}

// Validate checks options that do not need the filesystem.
func (o Options) Validate() error {
	if o.CSS == "" {
		return ErrEmptyCSSName
	}
	return nil
}

// Injector adds the stylesheet marker to HTML files.
// It processes files one at a time and is not safe for concurrent Run calls
// over the same tree.
type Injector struct {
	fs  afero.Fs
	now func() time.Time
}

// Option configures an Injector.
type Option func(*Injector)

// WithFs sets the filesystem the injector reads and writes.
func WithFs(fs afero.Fs) Option {
	return func(in *Injector) {
		in.fs = fs
	}
}

// WithClock sets the time source used to measure Summary.Duration.
func WithClock(now func() time.Time) Option {
	return func(in *Injector) {
		in.now = now
	}
}

// NewInjector creates an injector over the OS filesystem.
func NewInjector(opts ...Option) *Injector {
	in := &Injector{
		fs:  afero.NewOsFs(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run discovers HTML files under opts.Dir and processes each of them.
//
// Only a missing root directory or invalid options produce an error. Per-file
// failures are recorded in the returned Summary.
func (in *Injector) Run(opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ok, err := afero.DirExists(in.fs, opts.Dir)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, opts.Dir)
	}

	start := in.now()
	files, err := DiscoverHTML(in.fs, opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Dir, err)
	}

	summary := &Summary{
		Dir:     opts.Dir,
		CSS:     opts.CSS,
		DryRun:  opts.DryRun,
		Found:   len(files),
		Results: make([]FileResult, 0, len(files)),
	}

	marker := Marker(opts.CSS)
	for _, path := range files {
		summary.record(in.processFile(path, marker, opts.DryRun))
	}

	summary.Duration = in.now().Sub(start)
	return summary, nil
}

// processFile reads, classifies, and optionally rewrites a single file.
func (in *Injector) processFile(path, marker string, dryRun bool) FileResult {
	result := FileResult{Path: path}

	data, err := afero.ReadFile(in.fs, path)
	if err != nil {
		result.Status = StatusError
		result.Err = fmt.Errorf("%w: %w", ErrReadHTML, err)
		return result
	}
	if !utf8.Valid(data) {
		result.Status = StatusError
		result.Err = ErrInvalidUTF8
		return result
	}

	updated, status := Inject(string(data), marker)
	if status != StatusModified {
		result.Status = status
		return result
	}

	if dryRun {
		result.Status = StatusWouldModify
		return result
	}

	// #nosec G306 -- rewriting an existing, user-selected HTML file
	if err := afero.WriteFile(in.fs, path, []byte(updated), filePermissions); err != nil {
		result.Status = StatusError
		result.Err = fmt.Errorf("%w: %w", ErrWriteHTML, err)
		return result
	}

	result.Status = StatusModified
	return result
}
