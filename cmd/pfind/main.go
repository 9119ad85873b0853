// main.go - pfind: concurrent filesystem search
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"strconv"
	"syscall"

	"github.com/opencoff/go-logger"
	"github.com/opencoff/go-utils"
	flag "github.com/opencoff/pflag"

	"github.com/opencoff/pfind/internal/pfind"
)

var Z = path.Base(os.Args[0])

func main() {
	var help, dedupeMount, verbose, summary bool
	var logfile string

	fs := flag.NewFlagSet(Z, flag.ExitOnError)

	fs.BoolVarP(&help, "help", "h", false, "Show help and exit [False]")
	fs.BoolVarP(&dedupeMount, "dedupe-mount", "", false, "Don't re-descend an already-visited directory (dev,ino) [False]")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Emit internal debug tracing [False]")
	fs.BoolVarP(&summary, "summary", "", false, "Print a humanized total-bytes-matched summary line [False]")
	fs.StringVarP(&logfile, "log-file", "L", "", "Write debug tracing to `F` instead of stderr [stderr]")

	fs.SetOutput(os.Stdout)

	if err := fs.Parse(os.Args[1:]); err != nil {
		Die("%s", err)
	}

	if help {
		usage(fs)
	}

	args := fs.Args()
	if len(args) < 3 {
		Die("Usage: %s [options] <root_dir> <search_term> <num_threads>", Z)
	}

	root, term := args[0], args[1]
	n, err := strconv.Atoi(args[2])
	if err != nil || n <= 0 {
		Die("invalid number of worker threads: %s", args[2])
	}
	if len(term) == 0 {
		Die("search term must not be empty")
	}

	opts := pfind.Options{DedupeMount: dedupeMount}

	if verbose {
		dest := logfile
		if len(dest) == 0 {
			dest = "STDERR"
		}
		log, err := logger.NewLogger(dest, logger.LOG_DEBUG, Z, logger.Ldate|logger.Ltime|logger.Lmicroseconds)
		if err != nil {
			Die("can't create logger: %s", err)
		}
		defer log.Close()
		opts.Logger = debugAdapter{log}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rep := pfind.NewReporter(os.Stdout, os.Stderr)
	_, errored, err := pfind.SearchTo(ctx, root, term, n, opts, rep)
	if err != nil {
		Die("%s", err)
	}

	if summary {
		fmt.Printf("Total bytes matched: %s\n", utils.HumanizeSize(rep.TotalBytes()))
	}

	if errored {
		os.Exit(1)
	}
}

// debugAdapter adapts opencoff/go-logger's Logger to the minimal
// DebugLogger surface pfind's core needs.
type debugAdapter struct {
	log logger.Logger
}

func (d debugAdapter) Debug(format string, v ...interface{}) {
	d.log.Debug(format, v...)
}

func usage(fs *flag.FlagSet) {
	fmt.Printf(usageStr, Z, Z)
	fs.PrintDefaults()
	os.Exit(0)
}

var usageStr = `%s - concurrent filesystem search.

Recursively walks <root_dir> with <num_threads> worker goroutines and
prints every regular-file path whose leaf name contains <search_term>.

Usage: %s [options] <root_dir> <search_term> <num_threads>

Options:
`
