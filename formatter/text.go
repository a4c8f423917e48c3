package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/martidominguez/nanolog/core"
)

// TextTimestampFormat is the wall-clock layout used in text lines,
// second resolution, local time.
const TextTimestampFormat = "2006-01-02 15:04:05"

// ANSI escape per level. Unmapped levels render with the terminal default.
var levelColors = [...]string{
	core.ErrorLevel:   "\x1b[31m", // red
	core.WarningLevel: "\x1b[33m", // yellow
	core.InfoLevel:    "\x1b[32m", // green
	core.DebugLevel:   "\x1b[34m", // blue
}

const colorReset = "\x1b[0m"

func levelColor(l core.Level) string {
	if l > core.NoLevel && int(l) < len(levelColors) {
		return levelColors[l]
	}
	return colorReset
}

// TextFormatter composes human-readable lines of the form
//
//	[seq] L : [TAG] [timestamp] message
//
// where L is the single-letter level marker, the timestamp is present
// only when enabled, and the whole line is bounded by MaxLine.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = TextTimestampFormat
	}
	if cfg.MaxLine <= 0 {
		cfg.MaxLine = core.MaxLineLen
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(rec, buf)
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	start := buf.Len()

	if f.UseColor {
		buf.WriteString(levelColor(rec.Level))
	}

	buf.WriteByte('[')
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), rec.Seq, 10))
	buf.WriteString("] ")
	buf.WriteString(rec.Level.Letter())
	buf.WriteString(" : [")
	buf.WriteString(rec.Tag)
	buf.WriteByte(']')

	if f.Timestamp {
		buf.WriteString(" [")
		buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(']')
	}

	buf.WriteByte(' ')
	buf.WriteString(rec.Message)

	if f.UseColor {
		buf.WriteString(colorReset)
	}
	buf.WriteByte('\n')

	clampLine(buf, start, f.MaxLine)
}
