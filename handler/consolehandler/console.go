package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/formatter"
	"github.com/philipp01105/quicklog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// ConsoleHandler writes each entry as one formatted write to an io.Writer.
// Writes are serialized, so lines from concurrent loggers never interleave.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter

	mu     sync.Mutex // guards buf and writer
	buf    bytes.Buffer
	entry  core.Entry
	closed bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
		h.entry.Fields = make([]core.Field, 0, 16)
	}
	return h
}

// Writer returns the destination of the handler
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// HandleLog formats log data into the handler-owned entry and buffer
// without touching the entry pool.
func (h *ConsoleHandler) HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	if h.bufferFormatter == nil {
		entry := handler.NewEntry(t, level, name, msg, loggerFields, callFields, caller)
		err := h.Handle(entry)
		core.PutEntry(entry)
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}

	h.entry.Time = t
	h.entry.Level = level
	h.entry.Logger = name
	h.entry.Message = msg
	h.entry.Caller = caller
	h.entry.Fields = append(append(h.entry.Fields[:0], loggerFields...), callFields...)

	h.buf.Reset()
	h.bufferFormatter.FormatEntry(&h.entry, &h.buf)
	_, err := h.writer.Write(h.buf.Bytes())
	return err
}

// Handle formats and writes a log entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}

	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// CanRecycleEntry returns true because entries are written before Handle returns.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close stops the handler; later entries are discarded. The writer itself
// is not closed since it is usually a standard stream.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
