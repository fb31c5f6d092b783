package handler

import (
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/quicklog/core"
)

// MultiHandler sends log entries to multiple handlers. It is immutable;
// the registry builds a new one whenever its handler set changes.
type MultiHandler struct {
	handlers     []Handler
	fastHandlers []FastHandler // nil where the child doesn't implement it
	allFast      bool
	recycleEntry bool
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		fastHandlers: make([]FastHandler, len(handlers)),
		allFast:      true,
		recycleEntry: true,
	}
	for i, h := range handlers {
		if fh, ok := h.(FastHandler); ok {
			m.fastHandlers[i] = fh
		} else {
			m.allFast = false
		}
		if !CanRecycle(h) {
			m.recycleEntry = false
		}
	}
	return m
}

// Len returns the number of child handlers
func (h *MultiHandler) Len() int {
	return len(h.handlers)
}

// HandleLog processes log data directly without requiring a pooled Entry.
// When all children implement FastHandler, no Entry is built at all.
func (h *MultiHandler) HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	var err error
	if h.allFast {
		for _, fh := range h.fastHandlers {
			err = multierr.Append(err, fh.HandleLog(t, level, name, msg, loggerFields, callFields, caller))
		}
		return err
	}

	entry := NewEntry(t, level, name, msg, loggerFields, callFields, caller)
	for i, child := range h.handlers {
		if fh := h.fastHandlers[i]; fh != nil {
			err = multierr.Append(err, fh.HandleLog(t, level, name, msg, loggerFields, callFields, caller))
		} else {
			err = multierr.Append(err, child.Handle(entry))
		}
	}
	if h.recycleEntry {
		core.PutEntry(entry)
	}
	return err
}

// Handle processes a log entry by sending it to all handlers
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(entry))
	}
	return err
}

// CanRecycleEntry returns true when every child processes entries synchronously
func (h *MultiHandler) CanRecycleEntry() bool {
	return h.recycleEntry
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
