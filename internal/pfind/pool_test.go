// pool_test.go -- test harness for pool.go

package pfind

import (
	"testing"
	"time"
)

// TestPoolBarrierReleasesTogether seeds a single bogus path, starts a
// pool of N workers through the barrier, and checks that the pool
// quiesces (Start and Wait return within the deadline) and that the
// item was processed, which records a stat error.
func TestPoolBarrierReleasesTogether(t *testing.T) {
	assert := newAsserter(t)

	const n = 5
	q := NewQueue(n)
	rep := NewReporter(discardWriter{}, discardWriter{})
	sc := &SearchContext{term: "nevermatches", rep: rep}

	q.Push("onlyitem")

	pool := NewPool(q, n, sc)

	done := make(chan struct{})
	go func() {
		pool.Start()
		pool.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pool never quiesced")
	}

	assert(rep.Errored(), "expected a stat error for the bogus path 'onlyitem'")
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
