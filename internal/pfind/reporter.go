// reporter.go - line-oriented output sink
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

package pfind

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Reporter is the output sink for a search: it writes match lines and
// diagnostics, and accumulates a match counter and an error flag. All
// writes are individually line-atomic; there is no ordering guarantee
// across concurrent callers.
type Reporter struct {
	outMu sync.Mutex
	out   io.Writer

	errMu sync.Mutex
	errw  io.Writer

	matches    uint64
	totalBytes uint64
	errored    atomic.Bool
}

// NewReporter creates a Reporter that writes match lines and
// permission diagnostics to out, and all other diagnostics to errw.
func NewReporter(out, errw io.Writer) *Reporter {
	return &Reporter{out: out, errw: errw}
}

// Match records one matching path and emits it as a single stdout
// line. size is the matched file's byte size (0 if unknown); it feeds
// the optional --summary humanized byte count and has no bearing on
// the core match/quiescence protocol.
func (r *Reporter) Match(path string, size int64) {
	atomic.AddUint64(&r.matches, 1)
	if size > 0 {
		atomic.AddUint64(&r.totalBytes, uint64(size))
	}
	r.writeOut("%s\n", path)
}

// TotalBytes returns the sum of sizes passed to Match so far.
func (r *Reporter) TotalBytes() uint64 {
	return atomic.LoadUint64(&r.totalBytes)
}

// PermissionDenied emits the "Permission denied" diagnostic for a
// directory that could not be listed. Per the program's documented
// user-visible behavior this goes to the same stream as matches, not
// to stderr, and it sets the error flag.
func (r *Reporter) PermissionDenied(path string) {
	r.errored.Store(true)
	r.writeOut("Directory %s: Permission denied.\n", path)
}

// Diagnostic emits a formatted error line to the error stream and
// sets the error flag.
func (r *Reporter) Diagnostic(format string, args ...any) {
	r.errored.Store(true)
	r.errMu.Lock()
	fmt.Fprintf(r.errw, format, args...)
	r.errw.Write([]byte{'\n'})
	r.errMu.Unlock()
}

// Errored reports whether any non-fatal error was recorded during the
// run.
func (r *Reporter) Errored() bool {
	return r.errored.Load()
}

// MatchCount returns the number of matches recorded so far.
func (r *Reporter) MatchCount() uint64 {
	return atomic.LoadUint64(&r.matches)
}

// Done prints the final summary line and returns the match count. It
// must only be called after every worker has exited, so the count it
// reports is stable.
func (r *Reporter) Done() uint64 {
	n := r.MatchCount()
	r.writeOut("Done searching, found %d files\n", n)
	return n
}

func (r *Reporter) writeOut(format string, args ...any) {
	r.outMu.Lock()
	fmt.Fprintf(r.out, format, args...)
	r.outMu.Unlock()
}
