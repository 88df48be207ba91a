package main

import (
	"io"
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantPositional []string
		check          func(t *testing.T, f *cliFlags)
	}{
		{
			name:           "defaults",
			args:           nil,
			wantPositional: []string{},
			check: func(t *testing.T, f *cliFlags) {
				if f.cssSet || f.dryRunSet || f.dryRun || f.common.quiet || f.common.verbose {
					t.Errorf("unexpected non-default flags: %+v", f)
				}
			},
		},
		{
			name:           "directory and css",
			args:           []string{"docs", "--css", "a.css"},
			wantPositional: []string{"docs"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.cssSet || f.css != "a.css" {
					t.Errorf("css = %q (set %v), want a.css", f.css, f.cssSet)
				}
			},
		},
		{
			name:           "flags before directory",
			args:           []string{"--dry-run", "-q", "-v", "out/api"},
			wantPositional: []string{"out/api"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.dryRun || !f.dryRunSet {
					t.Error("dry-run not set")
				}
				if !f.common.quiet || !f.common.verbose {
					t.Error("quiet/verbose not set")
				}
			},
		},
		{
			name:           "config shorthand",
			args:           []string{"-c", "site"},
			wantPositional: []string{},
			check: func(t *testing.T, f *cliFlags) {
				if f.common.config != "site" {
					t.Errorf("config = %q, want site", f.common.config)
				}
			},
		},
		{
			name:           "explicit empty css",
			args:           []string{"--css="},
			wantPositional: []string{},
			check: func(t *testing.T, f *cliFlags) {
				if !f.cssSet || f.css != "" {
					t.Errorf("css = %q (set %v), want explicit empty", f.css, f.cssSet)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional, err := parseFlags(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseFlags() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(positional, tt.wantPositional) {
				t.Errorf("positional = %#v, want %#v", positional, tt.wantPositional)
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--bogus"}, io.Discard); err == nil {
		t.Fatal("parseFlags(--bogus) expected error")
	}
}
