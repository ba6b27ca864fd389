// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sebschmi/fasta-cleaner/core/fastaclean"
	"github.com/sebschmi/fasta-cleaner/internal/cli"
	"github.com/sebschmi/fasta-cleaner/internal/config"
	"github.com/sebschmi/fasta-cleaner/internal/fastaio"
	"github.com/sebschmi/fasta-cleaner/internal/report"
	"github.com/sebschmi/fasta-cleaner/internal/version"
)

// RunContext parses argv, runs the cleaning pipeline over the input and
// returns a process exit code: 0 success, 2 usage/config error, 3 I/O error,
// 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("fasta-cleaner")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "fasta-cleaner version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	// Flags win over config file and environment.
	if opts.LogLevel == "" {
		opts.LogLevel = cfg.Logging.Level
	}
	if opts.LogFormat == "" {
		opts.LogFormat = cfg.Logging.Format
	}
	if opts.Threads == 0 {
		opts.Threads = cfg.Clean.Threads
	}
	opts.Report = opts.Report || cfg.Clean.Report

	log := newLogger(stderr, opts)

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	log.WithField("input", opts.Input).Info("opening input")
	data, err := fastaio.ReadAll(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	log.WithFields(logrus.Fields{"bytes": len(data), "threads": threads}).Info("cleaning")
	out, stats, err := fastaclean.CleanContext(parent, data, threads)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.WithFields(logrus.Fields{
		"records": stats.Records,
		"width":   stats.Width,
		"kept":    stats.BasesKept,
		"dropped": stats.Dropped,
	}).Debug("cleaned")

	log.WithField("output", opts.Output).Info("writing output")
	w, err := fastaio.Create(opts.Output, stdout)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if _, err := w.Write(out); err != nil {
		_ = w.Close()
		if fastaio.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := w.Close(); err != nil {
		if fastaio.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.Report {
		report.Render(stderr, opts.Input, stats)
	}
	log.Info("done")
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// newLogger builds the run-scoped logrus entry: level and format from the
// merged options, plus a run id for correlating log lines.
func newLogger(stderr io.Writer, opts cli.Options) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(stderr)
	if opts.Quiet {
		l.SetOutput(io.Discard)
	}
	if opts.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{})
	}
	lvl, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l.WithField("run_id", uuid.NewString())
}
