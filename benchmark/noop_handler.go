package benchmark

import (
	"github.com/martidominguez/nanolog/core"
	"github.com/martidominguez/nanolog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
