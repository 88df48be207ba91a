package csslink

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleSummary(dryRun bool) *Summary {
	s := &Summary{Dir: "/docs", CSS: "x.css", DryRun: dryRun, Found: 5, Duration: 1234 * time.Microsecond}
	modified := StatusModified
	if dryRun {
		modified = StatusWouldModify
	}
	s.record(FileResult{Path: "/docs/a.html", Status: modified})
	s.record(FileResult{Path: "/docs/b.html", Status: StatusAlreadyPresent})
	s.record(FileResult{Path: "/docs/c.html", Status: StatusNoHeadTag})
	s.record(FileResult{Path: "/docs/d.html", Status: StatusError, Err: errors.New("permission denied")})
	s.record(FileResult{Path: "/docs/e.html", Status: modified})
	return s
}

// ---------------------------------------------------------------------------
// TestSummary_Record - Counter bookkeeping
// ---------------------------------------------------------------------------

func TestSummary_Record(t *testing.T) {
	t.Parallel()

	s := sampleSummary(false)
	if s.Modified != 2 || s.Skipped != 2 || s.Errored != 1 {
		t.Errorf("Modified/Skipped/Errored = %d/%d/%d, want 2/2/1", s.Modified, s.Skipped, s.Errored)
	}
	if len(s.Results) != 5 {
		t.Errorf("len(Results) = %d, want 5", len(s.Results))
	}

	dry := sampleSummary(true)
	if dry.Modified != 2 {
		t.Errorf("dry Modified = %d, want 2 (would-modify counts as modified)", dry.Modified)
	}
}

// ---------------------------------------------------------------------------
// TestWriteReport - Full report layout
// ---------------------------------------------------------------------------

func TestWriteReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteReport(&buf, sampleSummary(false), ReportOptions{})

	sep := strings.Repeat("-", 60)
	want := strings.Join([]string{
		"Found 5 HTML files",
		"CSS file to link: x.css",
		"Dry run mode: false",
		sep,
		"MODIFIED: /docs/a.html",
		"SKIP: /docs/b.html (already has CSS link)",
		"SKIP: /docs/c.html (no </head> tag found)",
		"ERROR: /docs/d.html - permission denied",
		"MODIFIED: /docs/e.html",
		sep,
		"SUMMARY:",
		"  Total files found: 5",
		"  Modified: 2",
		"  Skipped: 2",
		"  Errors: 1",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("WriteReport() =\n%s\nwant\n%s", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestWriteReport_Modes - Dry run, quiet, verbose, empty
// ---------------------------------------------------------------------------

func TestWriteReport_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		summary     *Summary
		opts        ReportOptions
		contains    []string
		notContains []string
	}{
		{
			name:    "dry run",
			summary: sampleSummary(true),
			contains: []string{
				"Dry run mode: true",
				"WOULD MODIFY: /docs/a.html",
				"This was a DRY RUN - no files were actually modified.",
				"Run again without --dry-run to make actual changes.",
			},
			notContains: []string{"MODIFIED:"},
		},
		{
			name:        "quiet keeps errors and summary",
			summary:     sampleSummary(true),
			opts:        ReportOptions{Quiet: true},
			contains:    []string{"ERROR: /docs/d.html", "SUMMARY:", "  Errors: 1"},
			notContains: []string{"Found 5", "WOULD MODIFY", "SKIP:", "DRY RUN"},
		},
		{
			name:     "verbose adds elapsed",
			summary:  sampleSummary(false),
			opts:     ReportOptions{Verbose: true},
			contains: []string{"  Elapsed: 1ms"},
		},
		{
			name:        "no files",
			summary:     &Summary{Dir: "/empty", CSS: "x.css"},
			contains:    []string{"No HTML files found in /empty"},
			notContains: []string{"SUMMARY:"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			WriteReport(&buf, tt.summary, tt.opts)
			out := buf.String()

			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}
