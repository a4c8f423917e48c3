// Package consolehandler writes log lines to a terminal or any other
// io.Writer.
//
// The handler is synchronous: Handle returns once the line has been
// handed to the writer. A single handler-owned buffer is reused under
// the write mutex, so the steady-state path performs no allocations
// when the formatter implements formatter.BufferFormatter (both
// built-in formatters do).
package consolehandler
