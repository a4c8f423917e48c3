package memoryhandler

import (
	"bytes"
	"sync"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/formatter"
	"github.com/martidominguez/nanolog/handler"
)

// DefaultCapacity is the number of lines retained when none is configured.
const DefaultCapacity = 256

// MemoryConfig holds configuration for memory handler
type MemoryConfig struct {
	// Capacity is the maximum number of retained lines (default: DefaultCapacity)
	Capacity int
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// MemoryHandler keeps the most recent formatted lines in a bounded ring
// buffer. When the ring is full the oldest line is evicted. Useful on
// targets without a console, and in tests.
type MemoryHandler struct {
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex
	buf             bytes.Buffer
	lines           []string
	next            int
	full            bool
	closed          chan struct{}
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(cfg MemoryConfig) *MemoryHandler {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &MemoryHandler{
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		lines:     make([]string, cfg.Capacity),
		closed:    make(chan struct{}),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h
}

// Handle formats the record and stores it in the ring.
func (h *MemoryHandler) Handle(rec *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if rec.First() {
		h.buf.WriteString(handler.Banner)
	}

	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatRecord(rec, &h.buf)
	} else {
		data, err := h.formatter.Format(rec)
		if err != nil {
			h.stats.IncrementFailed()
			return err
		}
		h.buf.Write(data)
	}

	h.lines[h.next] = h.buf.String()
	h.next++
	if h.next == len(h.lines) {
		h.next = 0
		h.full = true
	}

	h.stats.IncrementProcessed()
	return nil
}

// Lines returns the retained lines, oldest first.
func (h *MemoryHandler) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.full {
		out := make([]string, h.next)
		copy(out, h.lines[:h.next])
		return out
	}

	out := make([]string, 0, len(h.lines))
	out = append(out, h.lines[h.next:]...)
	out = append(out, h.lines[:h.next]...)
	return out
}

// Len returns the number of retained lines.
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.full {
		return len(h.lines)
	}
	return h.next
}

// Stats returns a snapshot of the current statistics
func (h *MemoryHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. Retained lines stay readable.
func (h *MemoryHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
