// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/sebschmi/fasta-cleaner/internal/cliutil"
	"github.com/sebschmi/fasta-cleaner/internal/version"
)

// Options holds all CLI flags and positional arguments.
type Options struct {
	// Positionals
	Input  string
	Output string

	// Logging
	LogLevel  string
	LogFormat string
	Quiet     bool

	// Config
	ConfigFile string

	// Performance
	Threads int

	// Output
	Report bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: normalize FASTA files

Collapses irregular line breaks, uppercases sequence characters, drops
everything outside A/C/G/T, and re-wraps each record to the line width of
the first sequence line in the file. Header lines pass through untouched.

Version: %s

Usage: %s [flags] <input> [output]

'-' (or an omitted output) selects stdin/stdout; a .gz path is handled
transparently on either side.

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: debug | info | warn | error [info]")
	fs.StringVar(&opt.LogFormat, "log-format", "", "log format: text | json [text]")
	fs.StringVar(&opt.ConfigFile, "config", "", "config file (default: ./fasta-cleaner.yaml if present)")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for per-record filtering (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.BoolVar(&opt.Report, "report", false, "print a styled run summary to stderr [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress log output [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
		return opt, errors.New("an input path is required ('-' for stdin)")
	case 1:
		opt.Input, opt.Output = posArgs[0], "-"
	case 2:
		opt.Input, opt.Output = posArgs[0], posArgs[1]
	default:
		return opt, fmt.Errorf("expected <input> [output], got %d positional arguments", len(posArgs))
	}

	// Validation
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opt, fmt.Errorf("invalid --log-level %q", opt.LogLevel)
	}
	switch opt.LogFormat {
	case "", "text", "json":
	default:
		return opt, fmt.Errorf("invalid --log-format %q", opt.LogFormat)
	}
	return opt, nil
}
