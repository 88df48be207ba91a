package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	csslink "github.com/alnah/go-csslink"
	"github.com/alnah/go-csslink/internal/config"
	"github.com/alnah/go-csslink/internal/fileutil"
	"github.com/alnah/go-csslink/internal/hints"
)

// errUsage wraps flag parsing errors so they map to ExitUsage.
var errUsage = errors.New("invalid usage")

// runMain parses args (including the program name), runs the injector and
// returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		err = fmt.Errorf("%w: %v", errUsage, err)
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'csslink --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "csslink %s\n", Version)
		return ExitSuccess
	}

	opts, err := resolveOptions(positional, flags, env)
	if err == nil {
		err = run(opts, flags, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, opts, flags, env))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run processes opts.Dir and writes the report.
func run(opts csslink.Options, flags *cliFlags, env *Environment) error {
	inj := csslink.NewInjector(csslink.WithFs(env.Fs), csslink.WithClock(env.Now))

	summary, err := inj.Run(opts)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Processing directory: %s\n\n", opts.Dir)
	}
	csslink.WriteReport(env.Stdout, summary, csslink.ReportOptions{
		Quiet:   flags.common.quiet,
		Verbose: flags.common.verbose,
	})

	printFileHint(summary, env)
	return nil
}

// resolveOptions merges flags, config file, and defaults.
// Priority: flag > config > default.
func resolveOptions(positional []string, flags *cliFlags, env *Environment) (csslink.Options, error) {
	var opts csslink.Options

	if len(positional) > 1 {
		return opts, fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(env.Fs, flags.common.config)
		if err != nil {
			return opts, err
		}
		cfg = loaded
	}

	dir := "."
	switch {
	case len(positional) == 1:
		dir = positional[0]
	case cfg.Directory != "":
		dir = cfg.Directory
	}
	abs, err := absPath(dir, env)
	if err != nil {
		return opts, err
	}
	opts.Dir = abs

	switch {
	case flags.cssSet:
		opts.CSS = flags.css
	case cfg.CSS != "":
		opts.CSS = cfg.CSS
	default:
		opts.CSS = csslink.DefaultCSS
	}

	opts.DryRun = cfg.DryRun
	if flags.dryRunSet {
		opts.DryRun = flags.dryRun
	}

	return opts, nil
}

// absPath resolves dir against the environment's working directory.
func absPath(dir string, env *Environment) (string, error) {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	wd, err := env.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return filepath.Join(wd, dir), nil
}

// hintFor returns an actionable hint for a fatal error, or "".
func hintFor(err error, opts csslink.Options, flags *cliFlags, env *Environment) string {
	switch {
	case errors.Is(err, csslink.ErrDirectoryNotFound):
		isFile, _ := afero.Exists(env.Fs, opts.Dir)
		return hints.ForDirectoryNotFound(opts.Dir, isFile)
	case errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(flags.common.config):
		return hints.ForConfigNotFound(config.SearchPaths(flags.common.config))
	default:
		return ""
	}
}

// printFileHint prints one hint for the first per-file error that has one.
func printFileHint(summary *csslink.Summary, env *Environment) {
	for _, r := range summary.Results {
		if r.Err == nil {
			continue
		}
		if hint := hints.ForFileError(r.Err); hint != "" {
			fmt.Fprintf(env.Stderr, "%d file(s) failed%s\n", summary.Errored, hint)
			return
		}
	}
}
