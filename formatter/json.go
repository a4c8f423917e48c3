package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/martidominguez/nanolog/core"
)

// JSONFormatter formats log records as JSON, one object per line. It is
// an alternate output mode for hosts that ingest structured logs; the
// line bound applies the same way as for text.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	if cfg.MaxLine <= 0 {
		cfg.MaxLine = core.MaxLineLen
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	f.formatJSONToBuffer(rec, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(rec *core.Record, buf *bytes.Buffer) {
	start := buf.Len()
	buf.WriteByte('{')

	buf.WriteString(`"seq":`)
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), rec.Seq, 10))

	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level.String())
	buf.WriteByte('"')

	buf.WriteString(`,"tag":"`)
	appendJSONString(buf, rec.Tag)
	buf.WriteByte('"')

	if f.Timestamp {
		buf.WriteString(`,"time":"`)
		buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte('"')
	}

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, rec.Message)
	buf.WriteString("\"}\n")

	// The record bounds keep composed objects far below MaxLine; this
	// only fires on misconfigured bounds, and a cut object beats an
	// unbounded one on a constrained target.
	clampLine(buf, start, f.MaxLine)
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
