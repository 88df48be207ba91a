package main

import (
	"fmt"
	"io"

	csslink "github.com/alnah/go-csslink"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csslink [directory] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add a stylesheet <link> before </head> in every .html file under a directory.")
	fmt.Fprintln(w, "Files that already link the stylesheet, or have no </head>, are left unchanged.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  directory    Directory containing HTML files (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintf(w, "      --css <name>          CSS filename to link (default: %s)\n", csslink.DefaultCSS)
	fmt.Fprintln(w, "      --dry-run             Show what would change without modifying files")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and the summary")
	fmt.Fprintln(w, "  -v, --verbose             Show elapsed time")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  # Dry run to see what would be changed")
	fmt.Fprintln(w, "  csslink /path/to/docs --dry-run")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Actually modify the files")
	fmt.Fprintln(w, "  csslink /path/to/docs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Specify custom CSS filename")
	fmt.Fprintln(w, "  csslink /path/to/docs --css custom-style.css")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  completed (per-file errors are reported in the summary)")
	fmt.Fprintln(w, "  1  directory not found")
	fmt.Fprintln(w, "  2  invalid flags or config")
}
