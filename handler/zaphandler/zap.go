package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/handler"
)

// ZapHandler routes records into a zap.Logger. It carries the tag and
// sequence number as structured fields and leaves encoding and output
// entirely to zap, so host-side builds can merge device logs into an
// existing zap pipeline.
type ZapHandler struct {
	zl    *zap.Logger
	stats *handler.Stats
}

// NewZapHandler creates a handler forwarding to the given zap.Logger.
func NewZapHandler(zl *zap.Logger) *ZapHandler {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &ZapHandler{
		zl:    zl,
		stats: handler.NewStats(),
	}
}

// Handle forwards the record to zap.
func (h *ZapHandler) Handle(rec *core.Record) error {
	h.zl.Log(toZapLevel(rec.Level), rec.Message,
		zap.Uint64("seq", rec.Seq),
		zap.String("tag", rec.Tag),
	)
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ZapHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the underlying zap logger.
func (h *ZapHandler) Close() error {
	return h.zl.Sync()
}

// toZapLevel maps a core.Level onto the zap level scale.
func toZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.DebugLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
