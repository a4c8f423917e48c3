package handler

import (
	"errors"

	"github.com/martidominguez/nanolog/core"
)

// Banner is the fixed text that precedes the first record of each
// execution. Sinks prepend it to the first line and hand both to the
// output in a single write.
const Banner = "\n---------- NEW EXECUTION -----------\n\n"

// ErrUnsupportedBackend is returned when a configured output backend
// has no implementation. Selecting such a backend fails loudly at
// construction time instead of silently swallowing every line.
var ErrUnsupportedBackend = errors.New("nanolog: unsupported output backend")

// Handler defines the interface for log output sinks
type Handler interface {
	// Handle writes one record to the sink. The logger never
	// propagates the returned error to the emitting caller; sinks
	// account for failures in their Stats.
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is an optional interface for handlers that track
// dispatch statistics.
type StatsProvider interface {
	Stats() Snapshot
}
