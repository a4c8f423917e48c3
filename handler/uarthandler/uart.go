package uarthandler

import (
	"bytes"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/formatter"
	"github.com/martidominguez/nanolog/handler"
)

// DefaultBaud is the line rate used when none is configured.
const DefaultBaud = 115200

// UARTConfig holds configuration for UART handler
type UARTConfig struct {
	// Port is the uartreg port name; empty selects the first
	// available port.
	Port string
	// Baud is the line rate in bits per second (default: DefaultBaud)
	Baud int
	// Formatter to use (default: TextFormatter without color; plain
	// terminals on the other end of a serial line rarely speak ANSI)
	Formatter formatter.Formatter
}

// UARTHandler writes formatted lines to a serial port. The port is
// opened once at construction and held until Close; each line goes out
// as a single transmit.
type UARTHandler struct {
	port            uart.PortCloser
	conn            conn.Conn
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex
	buf             bytes.Buffer
}

// applyUARTDefaults fills in zero-value fields with defaults.
func applyUARTDefaults(cfg *UARTConfig) {
	if cfg.Baud <= 0 {
		cfg.Baud = DefaultBaud
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// NewUARTHandler opens the configured serial port and returns a handler
// writing to it. Unlike the other sinks, construction can fail: a
// missing or busy port must surface at configuration time, not be
// discovered one lost line at a time.
func NewUARTHandler(cfg UARTConfig) (*UARTHandler, error) {
	applyUARTDefaults(&cfg)

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("nanolog: initializing host drivers: %w", err)
	}

	port, err := uartreg.Open(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("nanolog: opening uart port %q: %w", cfg.Port, err)
	}

	c, err := port.Connect(physic.Frequency(cfg.Baud)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("nanolog: connecting uart port %q at %d baud: %w", cfg.Port, cfg.Baud, err)
	}

	h := &UARTHandler{
		port:      port,
		conn:      c,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h, nil
}

// Handle formats the record and transmits it over the port.
func (h *UARTHandler) Handle(rec *core.Record) error {
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

	if err := h.conn.Tx(h.buf.Bytes(), nil); err != nil {
		h.stats.IncrementFailed()
		return err
	}

	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *UARTHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close releases the serial port.
func (h *UARTHandler) Close() error {
	return h.port.Close()
}
