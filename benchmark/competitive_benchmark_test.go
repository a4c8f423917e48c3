package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/martidominguez/nanolog/formatter"
	"github.com/martidominguez/nanolog/handler/consolehandler"
	"github.com/martidominguez/nanolog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newNanologLogger returns a nanolog logger that writes JSON to io.Discard.
func newNanologLogger() *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	cfg := logger.DefaultConfig()
	cfg.Timestamp = false
	return logger.NewWithHandler(cfg, h)
}

// newZapLogger returns a zap.Logger that writes JSON to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger that writes JSON to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger that writes JSON to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes JSON to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Simple formatted message
// ---------------------------------------------------------------------------

func BenchmarkNanologMessage(b *testing.B) {
	l := newNanologLogger()
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Infof("BENCH", "request handled in %d ms", 42)
	}
}

func BenchmarkZapMessage(b *testing.B) {
	l := newZapLogger()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Sugar().Infof("request handled in %d ms", 42)
	}
}

func BenchmarkSlogMessage(b *testing.B) {
	l := newSlogLogger()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("request handled", "ms", 42)
	}
}

func BenchmarkLogrusMessage(b *testing.B) {
	l := newLogrusLogger()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Infof("request handled in %d ms", 42)
	}
}

func BenchmarkZerologMessage(b *testing.B) {
	l := newZerologLogger()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info().Msgf("request handled in %d ms", 42)
	}
}

// ---------------------------------------------------------------------------
// Filtered-out message (the cost of a disabled level)
// ---------------------------------------------------------------------------

func BenchmarkNanologDisabled(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: io.Discard})
	cfg := logger.DefaultConfig()
	cfg.MinLevel = logger.ErrorLevel
	l := logger.NewWithHandler(cfg, h)
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debugf("BENCH", "dropped %d", i)
	}
}

func BenchmarkZapDisabled(b *testing.B) {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
	l := zap.New(core)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("dropped")
	}
}

func BenchmarkZerologDisabled(b *testing.B) {
	l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug().Msgf("dropped %d", i)
	}
}
