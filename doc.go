// Package csslink adds a stylesheet <link> tag to every HTML file under a
// directory tree.
//
// # Quick Start
//
// Create an injector and run it over a documentation directory:
//
//	inj := csslink.NewInjector()
//	summary, err := inj.Run(csslink.Options{
//	    Dir: "/path/to/javadoc",
//	    CSS: "javadoc-readable.css",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	csslink.WriteReport(os.Stdout, summary, csslink.ReportOptions{})
//
// # Injection Rules
//
// The injection marker is the literal tag
//
//	<link rel="stylesheet" type="text/css" href="NAME">
//
// For each file, in order:
//
//  1. If the marker already appears anywhere in the file, it is skipped.
//  2. If the file has no "</head>", it is skipped.
//  3. Otherwise the first "</head>" becomes the marker, a newline, and "</head>".
//
// Matching is plain substring search. Nothing is parsed as HTML, so only the
// first head-closing tag is touched even in malformed documents.
//
// # Dry Run
//
// With Options.DryRun set, files are read and classified exactly as in a real
// run but nothing is written. Files that would change are reported with
// StatusWouldModify.
//
// # Errors
//
// Run returns ErrDirectoryNotFound when the root is missing or is not a
// directory. Failures on individual files (unreadable, not UTF-8, not
// writable) are recorded on the matching FileResult and counted in
// Summary.Errored; the remaining files are still processed.
//
// # Filesystem
//
// The injector works against an afero.Fs. The default is the OS filesystem;
// use WithFs to run against an in-memory or read-only filesystem.
package csslink
