package formatter

import (
	"bytes"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/martidominguez/nanolog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// UseColor wraps each line in the ANSI escape for its level,
	// resetting at line end.
	UseColor bool
	// Timestamp enables a wall-clock timestamp in each line.
	Timestamp bool
	// TimestampFormat specifies the time layout (empty for the
	// formatter's default).
	TimestampFormat string
	// MaxLine bounds the composed line in bytes (default
	// core.MaxLineLen). Oversized lines are truncated, never rejected.
	MaxLine int
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// clampLine bounds the bytes appended to buf since start to max bytes,
// keeping the text valid UTF-8 and terminated by a newline. Bytes
// before start (an already-prepended banner, for example) do not count
// against the bound.
func clampLine(buf *bytes.Buffer, start, max int) {
	if max <= 0 || buf.Len()-start <= max {
		return
	}
	b := buf.Bytes()
	cut := start + max - 1
	for cut > start && !utf8.RuneStart(b[cut]) {
		cut--
	}
	buf.Truncate(cut)
	buf.WriteByte('\n')
}
