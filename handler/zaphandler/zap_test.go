package zaphandler

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/martidominguez/nanolog/core"
)

func TestZapHandlerForwards(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(obs))

	rec := &core.Record{
		Seq:     3,
		Time:    time.Now(),
		Level:   core.WarningLevel,
		Tag:     "NET",
		Message: "retrying",
	}
	if err := h.Handle(rec); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", e.Level)
	}
	if e.Message != "retrying" {
		t.Errorf("message = %q", e.Message)
	}

	fields := e.ContextMap()
	if fields["tag"] != "NET" {
		t.Errorf("tag field = %v", fields["tag"])
	}
	if fields["seq"] != uint64(3) {
		t.Errorf("seq field = %v", fields["seq"])
	}
}

func TestZapHandlerLevelMapping(t *testing.T) {
	tests := []struct {
		in   core.Level
		want zapcore.Level
	}{
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.WarningLevel, zapcore.WarnLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.NoLevel, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := toZapLevel(tt.in); got != tt.want {
			t.Errorf("toZapLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestZapHandlerNilLogger(t *testing.T) {
	h := NewZapHandler(nil)
	if err := h.Handle(&core.Record{Seq: 1, Level: core.InfoLevel}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if snap := h.Stats(); snap.Processed != 1 {
		t.Errorf("stats = %+v", snap)
	}
}
