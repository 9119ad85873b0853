// worker.go - per-worker processing loop
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

// runWorker pops paths from q until it signals termination. A
// directory is enumerated and its accessible children pushed back;
// anything else is checked against the search term and reported on
// a match. id is only used for debug tracing.
func runWorker(id int, q *Queue, sc *SearchContext) {
	for {
		p, ok := q.Pop()
		if !ok {
			sc.debugf("worker %d: queue quiesced, exiting", id)
			return
		}

		kind, fi, err := Classify(p)
		if err != nil {
			sc.rep.Diagnostic("%s", err.Error())
			continue
		}

		switch kind {
		case KindDir:
			if sc.guard != nil && sc.guard.visit(p) {
				continue
			}
			for _, child := range Enumerate(p, sc.rep) {
				q.Push(child)
			}

		default:
			if Matches(p, sc.term) {
				sc.rep.Match(p, fi.Size())
			}
		}
	}
}
