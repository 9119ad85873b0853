// config.go - search configuration
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

// Options controls optional behavior of a Search beyond the core
// root/term/workers contract.
type Options struct {
	// DedupeMount, if set, records the (dev, ino) of every directory
	// descended and refuses to re-descend one already visited. This
	// is an opt-in mitigation for symlink cycles; it is off by
	// default so default behavior matches the original program,
	// which performs no cycle detection at all.
	DedupeMount bool

	// Logger, if non-nil, receives internal tracing events (barrier
	// release, pool shutdown, quiescence). It never affects the
	// Reporter's stdout/stderr contract.
	Logger DebugLogger
}

// DebugLogger is the minimal logging surface pfind needs from
// opencoff/go-logger's logger.Logger, so tests can supply a stub
// without a real logger.
type DebugLogger interface {
	Debug(format string, v ...interface{})
}
