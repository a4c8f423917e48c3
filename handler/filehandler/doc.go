// Package filehandler appends log lines to a file resolved from a
// directory, base name, and extension.
//
// Unlike a conventional file logger it holds no persistent handle: each
// dispatch opens the file in append mode, writes one line, and closes
// it. The open/close cost is paid deliberately so that a crash or power
// loss between dispatches never loses buffered data. The target
// directory is created on demand and its absence is survivable; I/O
// failures are reported on stderr, counted in Stats, and never
// propagated to the emitting caller.
package filehandler
