// search.go - the encapsulated search context and driver
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
	"context"
	"os"
)

// SearchContext holds everything a running search needs, in place of
// the original program's module-level globals: the immutable search
// term, the output sink, the optional visited-directory guard and the
// optional debug logger. The queue and pool are created per search
// alongside it. Workers share it by reference.
type SearchContext struct {
	term   string
	rep    *Reporter
	guard  *mountGuard
	logger DebugLogger
}

// Search walks root looking for entries whose leaf name contains
// term, using n worker goroutines. It returns the number of matches
// found and whether any non-fatal error was recorded; err is non-nil
// only for a fatal startup condition (n < 1).
//
// ctx is honored only for an external-signal-triggered clean abort
// message; it never alters the quiescence protocol that determines
// when the search itself completes. A canceled ctx does not stop the
// search early - the search has no externally triggered cancellation,
// by design (see spec Non-goals).
func Search(ctx context.Context, root, term string, n int, opts Options) (matches uint64, errored bool, err error) {
	if n < 1 {
		return 0, false, ErrInvalidWorkerCount
	}

	rep := NewReporter(os.Stdout, os.Stderr)
	return searchWith(ctx, root, term, n, opts, rep)
}

// SearchTo is Search with explicit output streams, used by tests and
// by the CLI.
func SearchTo(ctx context.Context, root, term string, n int, opts Options, rep *Reporter) (matches uint64, errored bool, err error) {
	if n < 1 {
		return 0, false, ErrInvalidWorkerCount
	}
	return searchWith(ctx, root, term, n, opts, rep)
}

func searchWith(ctx context.Context, root, term string, n int, opts Options, rep *Reporter) (uint64, bool, error) {
	sc := &SearchContext{term: term, rep: rep, logger: opts.Logger}
	if opts.DedupeMount {
		sc.guard = newMountGuard()
	}

	q := NewQueue(n)
	pool := NewPool(q, n, sc)

	q.Push(root)
	sc.debugf("seeded root %s", root)

	pool.Start()
	sc.debugf("barrier released, %d workers running", n)

	done := make(chan struct{})
	go func() {
		pool.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// No internal cancellation: we still wait for natural
		// quiescence, but we can at least say something useful.
		sc.debugf("signal received, waiting for in-flight workers to quiesce")
		<-done
	}

	sc.debugf("pool quiesced")
	n64 := rep.Done()
	return n64, rep.Errored(), nil
}

func (sc *SearchContext) debugf(format string, args ...any) {
	if sc.logger != nil {
		sc.logger.Debug(format, args...)
	}
}
