package filehandler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/formatter"
	"github.com/martidominguez/nanolog/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Dir is the directory the log file lives in (default: "LogOutput")
	Dir string
	// Name is the base name of the log file (default: "log")
	Name string
	// Ext is the file extension without the dot (default: "txt")
	Ext string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// FileHandler appends formatted lines to a file. Every dispatch opens
// the file, writes, and closes it again; no handle is held across
// calls, so a crash at any point loses nothing that was buffered.
type FileHandler struct {
	dir             string
	path            string
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects buf and the open-write-close cycle
	buf             bytes.Buffer
	closed          chan struct{}
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Dir == "" {
		cfg.Dir = "LogOutput"
	}
	if cfg.Name == "" {
		cfg.Name = "log"
	}
	if cfg.Ext == "" {
		cfg.Ext = "txt"
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// NewFileHandler creates a new file handler. The directory and file are
// not touched until the first dispatch.
func NewFileHandler(cfg FileConfig) *FileHandler {
	applyFileDefaults(&cfg)

	h := &FileHandler{
		dir:       cfg.Dir,
		path:      filepath.Join(cfg.Dir, cfg.Name+"."+cfg.Ext),
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}

	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	return h
}

// Path returns the resolved log file path.
func (h *FileHandler) Path() string {
	return h.path
}

// Handle formats the record and appends it to the log file.
func (h *FileHandler) Handle(rec *core.Record) error {
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

	// The directory may disappear between dispatches; recreate it every
	// time. Failure is a warning, the open below decides the outcome.
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "nanolog: cannot create log directory %s: %v\n", h.dir, err)
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nanolog: cannot open log file %s: %v\n", h.path, err)
		h.stats.IncrementFailed()
		return err
	}

	_, werr := f.Write(h.buf.Bytes())
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		fmt.Fprintf(os.Stderr, "nanolog: cannot write log file %s: %v\n", h.path, werr)
		h.stats.IncrementFailed()
		return werr
	}

	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. There is no held file handle to release.
func (h *FileHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
