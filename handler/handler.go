package handler

import (
	"time"

	"github.com/philipp01105/quicklog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// FastHandler is an optional interface that handlers can implement
// to process log data directly without requiring an Entry from the pool.
type FastHandler interface {
	HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error
}

// Recycler is implemented by handlers that are done with an entry when
// Handle returns, so the caller may put it back in the pool.
type Recycler interface {
	CanRecycleEntry() bool
}

// CanRecycle reports whether h releases entries synchronously
func CanRecycle(h Handler) bool {
	rc, ok := h.(Recycler)
	return ok && rc.CanRecycleEntry()
}

// NewEntry builds a pooled entry from the FastHandler arguments. Handlers
// without a pool-free path use it to fall back to Handle.
func NewEntry(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) *core.Entry {
	entry := core.GetEntry()
	entry.Time = t
	entry.Level = level
	entry.Logger = name
	entry.Message = msg
	entry.Caller = caller
	if len(loggerFields) > 0 {
		entry.Fields = append(entry.Fields, loggerFields...)
	}
	if len(callFields) > 0 {
		entry.Fields = append(entry.Fields, callFields...)
	}
	return entry
}
