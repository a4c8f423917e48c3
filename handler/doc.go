// Package handler provides the Handler interface and the statistics
// shared by the built-in output sinks.
//
// Dispatch is strictly synchronous: Handle blocks until the line has
// been written to the sink, so emission order equals call order and a
// record's sequence number is its position in the output. Each sink
// serializes its writes with a mutex, so concurrent loggers never
// interleave bytes within a line.
//
// The first record of an execution (Record.First) is preceded by the
// fixed Banner text; sinks compose banner and line into one buffer and
// issue a single write.
//
// Built-in sinks live in subpackages:
//
//   - consolehandler writes formatted lines to any io.Writer (default: stdout).
//   - filehandler appends to a file, reopening it on every dispatch so a
//     crash never loses buffered lines.
//   - memoryhandler keeps the most recent lines in a bounded ring buffer.
//   - uarthandler writes lines to a serial port via periph.io.
//   - zaphandler bridges records into a zap.Logger for host-side builds.
//
// Handle returns an error for accounting, but logging is best-effort:
// the logger swallows it and the application is never failed by its own
// log statements. Sinks that implement StatsProvider expose processed
// and failed counts so lost lines remain observable.
package handler
