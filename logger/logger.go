package logger

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/formatter"
	"github.com/martidominguez/nanolog/handler"
	"github.com/martidominguez/nanolog/handler/consolehandler"
	"github.com/martidominguez/nanolog/handler/filehandler"
	"github.com/martidominguez/nanolog/handler/memoryhandler"
	"github.com/martidominguez/nanolog/handler/uarthandler"
)

// Logger is the emission entry point. It owns the execution counter
// and the configuration; both are fixed after construction, so a
// Logger is safe for concurrent use without locking on the read path.
type Logger struct {
	cfg      Config
	handler  handler.Handler
	seq      atomic.Uint64
	filtered atomic.Uint64
}

// New creates a Logger dispatching to the backend selected in cfg.
// Backend selection happens exactly once, here; an unimplemented or
// unknown backend surfaces as handler.ErrUnsupportedBackend instead of
// silently swallowing every line later.
func New(cfg Config) (*Logger, error) {
	applyDefaults(&cfg)

	h, err := newBackendHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &Logger{cfg: cfg, handler: h}, nil
}

// NewWithHandler creates a Logger dispatching to a caller-supplied
// sink, bypassing backend selection.
func NewWithHandler(cfg Config, h handler.Handler) *Logger {
	applyDefaults(&cfg)
	return &Logger{cfg: cfg, handler: h}
}

// newBackendHandler builds the sink for the configured backend.
func newBackendHandler(cfg Config) (handler.Handler, error) {
	f := newFormatter(cfg)

	switch cfg.Backend {
	case Console:
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    cfg.Writer,
			Formatter: f,
		}), nil
	case File:
		return filehandler.NewFileHandler(filehandler.FileConfig{
			Dir:       cfg.FileDir,
			Name:      cfg.FileName,
			Ext:       cfg.FileExt,
			Formatter: f,
		}), nil
	case Memory:
		return memoryhandler.NewMemoryHandler(memoryhandler.MemoryConfig{
			Capacity:  cfg.MemorySize,
			Formatter: f,
		}), nil
	case UART:
		return uarthandler.NewUARTHandler(uarthandler.UARTConfig{
			Port:      cfg.UARTPort,
			Baud:      cfg.UARTBaud,
			Formatter: f,
		})
	case Network:
		return nil, fmt.Errorf("%w: %s", handler.ErrUnsupportedBackend, cfg.Backend)
	default:
		return nil, fmt.Errorf("%w: backend(%d)", handler.ErrUnsupportedBackend, int(cfg.Backend))
	}
}

// newFormatter builds the formatter matching the configured output mode.
func newFormatter(cfg Config) formatter.Formatter {
	fcfg := formatter.Config{
		UseColor:  cfg.UseColor,
		Timestamp: cfg.Timestamp,
	}
	if cfg.JSON {
		return formatter.NewJSONFormatter(fcfg)
	}
	return formatter.NewTextFormatter(fcfg)
}

// enabled is the level gate: master switch, minimum level, and the
// per-level flag, all ANDed.
func (l *Logger) enabled(level core.Level) bool {
	if !l.cfg.Enabled || l.handler == nil {
		return false
	}
	if level < core.ErrorLevel || level > l.cfg.MinLevel {
		return false
	}
	switch level {
	case core.ErrorLevel:
		return l.cfg.EnableError
	case core.WarningLevel:
		return l.cfg.EnableWarning
	case core.InfoLevel:
		return l.cfg.EnableInfo
	case core.DebugLevel:
		return l.cfg.EnableDebug
	default:
		return false
	}
}

// emit renders and dispatches one record. The caller has already
// passed the level gate.
func (l *Logger) emit(level core.Level, tag, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)

	rec := core.GetRecord()
	rec.Seq = l.seq.Add(1)
	rec.Time = time.Now()
	rec.Level = level
	rec.Tag = core.Truncate(tag, core.MaxTagLen)
	rec.Message = core.Truncate(msg, l.cfg.MaxMessage)

	// Best-effort: the sink accounts for failures, the caller never
	// sees them.
	_ = l.handler.Handle(rec)
	core.PutRecord(rec)
}

// Errorf logs a formatted error message under the given tag
func (l *Logger) Errorf(tag, format string, args ...interface{}) {
	if !l.enabled(core.ErrorLevel) {
		l.filtered.Add(1)
		return
	}
	l.emit(core.ErrorLevel, tag, format, args)
}

// Warningf logs a formatted warning message under the given tag
func (l *Logger) Warningf(tag, format string, args ...interface{}) {
	if !l.enabled(core.WarningLevel) {
		l.filtered.Add(1)
		return
	}
	l.emit(core.WarningLevel, tag, format, args)
}

// Infof logs a formatted info message under the given tag
func (l *Logger) Infof(tag, format string, args ...interface{}) {
	if !l.enabled(core.InfoLevel) {
		l.filtered.Add(1)
		return
	}
	l.emit(core.InfoLevel, tag, format, args)
}

// Debugf logs a formatted debug message under the given tag
func (l *Logger) Debugf(tag, format string, args ...interface{}) {
	if !l.enabled(core.DebugLevel) {
		l.filtered.Add(1)
		return
	}
	l.emit(core.DebugLevel, tag, format, args)
}

// Sequence returns the number of records emitted so far. It only
// advances for records that passed the level gate.
func (l *Logger) Sequence() uint64 {
	return l.seq.Load()
}

// Filtered returns the number of calls rejected by the level gate.
// Together with the sink's failure count this makes a missing line
// attributable: filtered here, failed at the sink.
func (l *Logger) Filtered() uint64 {
	return l.filtered.Load()
}

// Handler returns the sink this logger dispatches to.
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
