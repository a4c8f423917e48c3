package memoryhandler

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/handler"
)

func newRecord(seq uint64, msg string) *core.Record {
	return &core.Record{
		Seq:     seq,
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Tag:     "MEM",
		Message: msg,
	}
}

func TestMemoryHandlerRetainsLines(t *testing.T) {
	h := NewMemoryHandler(MemoryConfig{Capacity: 8})
	defer h.Close()

	h.Handle(newRecord(1, "first"))
	h.Handle(newRecord(2, "second"))

	lines := h.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != handler.Banner+"[1] I : [MEM] first\n" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "[2] I : [MEM] second\n" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestMemoryHandlerEvictsOldest(t *testing.T) {
	h := NewMemoryHandler(MemoryConfig{Capacity: 3})
	defer h.Close()

	for i := 1; i <= 5; i++ {
		h.Handle(newRecord(uint64(i), fmt.Sprintf("msg %d", i)))
	}

	lines := h.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []string{"msg 3", "msg 4", "msg 5"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("lines[%d] = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestMemoryHandlerDefaultCapacity(t *testing.T) {
	h := NewMemoryHandler(MemoryConfig{})
	defer h.Close()

	for i := 1; i <= DefaultCapacity+10; i++ {
		h.Handle(newRecord(uint64(i), "x"))
	}
	if h.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", h.Len(), DefaultCapacity)
	}
	if snap := h.Stats(); snap.Processed != uint64(DefaultCapacity+10) {
		t.Errorf("processed = %d", snap.Processed)
	}
}
