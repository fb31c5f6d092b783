// Package benchmark compares quicklog with other Go loggers under equal
// conditions: every logger writes to io.Discard or a handler that drops
// the entry.
package benchmark

import (
	"time"

	"github.com/philipp01105/quicklog/core"
)

// noopHandler drops every entry. It takes both the pooled and the
// pool-free path so the benchmarks measure the logger alone.
type noopHandler struct{}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) HandleLog(_ time.Time, _ core.Level, _, msg string, _, _ []core.Field, _ core.CallerInfo) error {
	_ = len(msg)
	return nil
}

func (h *noopHandler) CanRecycleEntry() bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}
