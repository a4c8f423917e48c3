package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/formatter"
	"github.com/martidominguez/nanolog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// ConsoleHandler writes formatted lines to an io.Writer. Writes are
// serialized by a mutex; the banner for the first record of an
// execution and its line go out as one write.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	closed          chan struct{}
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}

	// Cache BufferFormatter for the single-write fast path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h
}

// Handle formats the record and writes it to the writer.
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	h.mu.Lock()
	h.buf.Reset()
	if rec.First() {
		h.buf.WriteString(handler.Banner)
	}

	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatRecord(rec, &h.buf)
	} else {
		data, err := h.formatter.Format(rec)
		if err != nil {
			h.mu.Unlock()
			h.stats.IncrementFailed()
			return err
		}
		h.buf.Write(data)
	}

	_, err := h.writer.Write(h.buf.Bytes())
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler.
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
