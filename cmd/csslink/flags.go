package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cliFlags holds all flags for the command.
type cliFlags struct {
	common    commonFlags
	css       string
	cssSet    bool // --css given explicitly, overrides config
	dryRun    bool
	dryRunSet bool // --dry-run given explicitly, overrides config
	version   bool
	help      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and the summary")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show elapsed time")
}

// parseFlags parses command-line flags (without the program name) and
// returns the positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("csslink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVar(&f.css, "css", "", "CSS filename to link (default: javadoc-readable.css)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "show what would change without modifying files")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.cssSet = fs.Changed("css")
	f.dryRunSet = fs.Changed("dry-run")

	return f, fs.Args(), nil
}
