package csslink

import "time"

// FileResult holds the outcome for one discovered file.
type FileResult struct {
	Path   string
	Status Status
	Err    error // Set only when Status is StatusError
}

// Summary holds the outcome of one run. Counters start at zero on every run.
type Summary struct {
	Dir      string
	CSS      string
	DryRun   bool
	Found    int
	Modified int // Includes would-modify in dry run
	Skipped  int
	Errored  int
	Results  []FileResult
	Duration time.Duration
}

// record appends r and bumps the matching counter.
func (s *Summary) record(r FileResult) {
	s.Results = append(s.Results, r)
	switch {
	case r.Status == StatusError:
		s.Errored++
	case r.Status.IsSkip():
		s.Skipped++
	default:
		s.Modified++
	}
}
