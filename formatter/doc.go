// Package formatter defines how log records are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-provided buffer.
// Handlers check for BufferFormatter at construction time and prefer
// it, which lets them prepend the execution banner and hand the sink a
// single contiguous write.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// all three interfaces. They use a pooled bytes.Buffer internally and
// rely on Go's Append-style functions (time.AppendFormat,
// strconv.AppendUint) to avoid per-call allocations.
//
// Every composed line is bounded: lines longer than MaxLine bytes are
// truncated in place, rune-safe, and still end in a newline. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
package formatter
