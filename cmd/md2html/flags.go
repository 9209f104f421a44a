package main

import (
	"github.com/spf13/pflag"
)

// cliFlags holds parsed command line options.
type cliFlags struct {
	output       string
	stripHeading bool
	standalone   bool
	stats        bool
	hardWraps    bool
	showVersion  bool
}

// parseFlags parses command line arguments. The returned slice holds the
// positional arguments (at most one input file; "-" or nothing reads stdin).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := pflag.NewFlagSet("md2html", pflag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&flags.stripHeading, "strip-heading", false, "drop the leading H1 block before rendering")
	fs.BoolVar(&flags.standalone, "standalone", false, "wrap the fragment in a complete HTML5 document")
	fs.BoolVar(&flags.stats, "stats", false, "print reading time and tags to stderr")
	fs.BoolVar(&flags.hardWraps, "hard-wraps", false, "render single newlines as <br>")
	fs.BoolVarP(&flags.showVersion, "version", "v", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
