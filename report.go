package csslink

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// separator frames the per-file section of a report.
var separator = strings.Repeat("-", 60)

// ReportOptions controls report verbosity.
type ReportOptions struct {
	Quiet   bool // Only error lines and the summary block
	Verbose bool // Append elapsed time
}

// WriteReport prints a human-readable report of s to w.
func WriteReport(w io.Writer, s *Summary, opts ReportOptions) {
	if s.Found == 0 {
		fmt.Fprintf(w, "No HTML files found in %s\n", s.Dir)
		return
	}

	if !opts.Quiet {
		fmt.Fprintf(w, "Found %d HTML files\n", s.Found)
		fmt.Fprintf(w, "CSS file to link: %s\n", s.CSS)
		fmt.Fprintf(w, "Dry run mode: %t\n", s.DryRun)
		fmt.Fprintln(w, separator)
	}

	for _, r := range s.Results {
		if opts.Quiet && r.Status != StatusError {
			continue
		}
		fmt.Fprintln(w, statusLine(r))
	}

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintf(w, "  Total files found: %d\n", s.Found)
	fmt.Fprintf(w, "  Modified: %d\n", s.Modified)
	fmt.Fprintf(w, "  Skipped: %d\n", s.Skipped)
	fmt.Fprintf(w, "  Errors: %d\n", s.Errored)

	if opts.Verbose {
		fmt.Fprintf(w, "  Elapsed: %v\n", s.Duration.Round(time.Millisecond))
	}

	if s.DryRun && !opts.Quiet {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "This was a DRY RUN - no files were actually modified.")
		fmt.Fprintln(w, "Run again without --dry-run to make actual changes.")
	}
}

// statusLine formats the report line for a single file.
func statusLine(r FileResult) string {
	switch r.Status {
	case StatusAlreadyPresent:
		return fmt.Sprintf("SKIP: %s (already has CSS link)", r.Path)
	case StatusNoHeadTag:
		return fmt.Sprintf("SKIP: %s (no %s tag found)", r.Path, HeadCloseTag)
	case StatusWouldModify:
		return "WOULD MODIFY: " + r.Path
	case StatusModified:
		return "MODIFIED: " + r.Path
	default:
		return fmt.Sprintf("ERROR: %s - %v", r.Path, r.Err)
	}
}
